package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HealthController struct {
	db     Pinger
	logger *logrus.Logger
}

func NewHealthController(db Pinger, logger *logrus.Logger) *HealthController {
	return &HealthController{db: db, logger: logger}
}

// Health godoc
// @Summary Liveness and database reachability
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (ctl *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := ctl.db.PingContext(ctx); err != nil {
		ctl.logger.WithError(err).Warn("Health check: database unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
