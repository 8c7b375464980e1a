package routes

import (
	"github.com/gin-gonic/gin"

	"urban_access/internal/controllers"
	"urban_access/internal/middleware"
)

func UserRoutes(api *gin.RouterGroup, ctl *controllers.UserController, auth gin.HandlerFunc) {
	users := api.Group("/usuarios")
	users.Use(auth)
	{
		users.GET("/perfil", middleware.WithPrincipal(ctl.GetProfile))
		users.PUT("/perfil", middleware.WithPrincipal(ctl.UpdateProfile))
		users.PUT("/senha", middleware.WithPrincipal(ctl.ChangePassword))
	}
}
