package routes

import (
	"github.com/gin-gonic/gin"

	"urban_access/internal/controllers"
)

func CategoryRoutes(api *gin.RouterGroup, ctl *controllers.CategoryController) {
	categories := api.Group("/categorias")
	{
		categories.GET("", ctl.List)
		categories.GET("/:id", ctl.Get)
	}
}
