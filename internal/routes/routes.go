package routes

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"urban_access/internal/controllers"
	"urban_access/internal/middleware"
)

// Dependencies are the handlers and middleware inputs the router is assembled from.
type Dependencies struct {
	Auth       *controllers.AuthController
	Categories *controllers.CategoryController
	Incidents  *controllers.IncidentController
	Users      *controllers.UserController
	Health     *controllers.HealthController

	Tokens      middleware.TokenVerifier
	HTTPMetrics *middleware.HTTPMetrics
	Gatherer    prometheus.Gatherer
	AccessLog   io.Writer
	Logger      *logrus.Logger
}

func SetupRouter(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(d.AccessLog), d.HTTPMetrics.Instrument())

	SystemRoutes(r, d)

	api := r.Group("/api")
	protected := middleware.RequireAuth(d.Tokens, d.Logger)

	AuthRoutes(api, d.Auth)
	CategoryRoutes(api, d.Categories)
	IncidentRoutes(api, d.Incidents, protected)
	UserRoutes(api, d.Users, protected)

	return r
}
