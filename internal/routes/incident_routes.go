package routes

import (
	"github.com/gin-gonic/gin"

	"urban_access/internal/controllers"
	"urban_access/internal/middleware"
)

func IncidentRoutes(api *gin.RouterGroup, ctl *controllers.IncidentController, auth gin.HandlerFunc) {
	incidents := api.Group("/ocorrencias")
	incidents.Use(auth)
	{
		incidents.GET("", middleware.WithPrincipal(ctl.List))
		incidents.POST("", middleware.WithPrincipal(ctl.Create))
		incidents.GET("/minhas", middleware.WithPrincipal(ctl.Mine))
		incidents.GET("/proximas", middleware.WithPrincipal(ctl.Nearby))
		incidents.GET("/mapa", middleware.WithPrincipal(ctl.Map))
		incidents.GET("/:id", middleware.WithPrincipal(ctl.Get))
		incidents.POST("/:id/validar", middleware.WithPrincipal(ctl.Validate))
		incidents.POST("/:id/upload-imagem", middleware.WithPrincipal(ctl.UploadImage))
	}
}
