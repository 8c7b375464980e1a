package routes

import (
	"github.com/gin-gonic/gin"

	"urban_access/internal/controllers"
)

func AuthRoutes(api *gin.RouterGroup, ctl *controllers.AuthController) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctl.Login)
		auth.POST("/cadastro", ctl.Register)
	}
}
