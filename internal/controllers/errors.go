package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"urban_access/internal/apperr"
)

// writeError maps a service error onto a status code. Conflicts are answered
// with 400 because the mobile client only distinguishes 400 from 401.
func writeError(c *gin.Context, log *logrus.Entry, err error) {
	status := http.StatusInternalServerError
	switch apperr.TypeOf(err) {
	case apperr.TypeValidation, apperr.TypeConflict:
		status = http.StatusBadRequest
	case apperr.TypeUnauthorized:
		status = http.StatusUnauthorized
	case apperr.TypeNotFound:
		status = http.StatusNotFound
	default:
		log.WithError(err).Error("Request failed")
	}
	c.JSON(status, gin.H{"error": apperr.MessageOf(err)})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return 0, false
	}
	return uint(id), true
}
