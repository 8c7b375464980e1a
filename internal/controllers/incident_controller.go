package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"urban_access/internal/middleware"
	"urban_access/internal/models"
	"urban_access/internal/services"
	"urban_access/internal/validation"
)

type IncidentController struct {
	incidents IncidentService
	logger    *logrus.Logger
}

func NewIncidentController(incidents IncidentService, logger *logrus.Logger) *IncidentController {
	return &IncidentController{incidents: incidents, logger: logger}
}

// List godoc
// @Summary List all incidents
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} ErrorResponse
// @Router /ocorrencias [get]
func (ctl *IncidentController) List(c *gin.Context, _ middleware.Principal) {
	incidents, err := ctl.incidents.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "ListIncidents"), err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponses(incidents))
}

// Get godoc
// @Summary Get an incident with its validations
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Ocorrência não encontrada"
// @Router /ocorrencias/{id} [get]
func (ctl *IncidentController) Get(c *gin.Context, _ middleware.Principal) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	incident, err := ctl.incidents.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "GetIncident"), err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// Mine godoc
// @Summary Incidents reported by the caller
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} ErrorResponse
// @Router /ocorrencias/minhas [get]
func (ctl *IncidentController) Mine(c *gin.Context, p middleware.Principal) {
	incidents, err := ctl.incidents.FindByReporter(c.Request.Context(), p.UserID)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "MyIncidents"), err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponses(incidents))
}

// Nearby godoc
// @Summary Incidents near a point
// @Description Box search of ±raioKm×0.01 degrees around the point, newest first.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param raioKm query number false "Radius in km" default(5)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /ocorrencias/proximas [get]
func (ctl *IncidentController) Nearby(c *gin.Context, _ middleware.Principal) {
	lat, lon, radius, ok := bindNearby(c)
	if !ok {
		return
	}
	incidents, err := ctl.incidents.FindNear(c.Request.Context(), lat, lon, radius)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "NearbyIncidents"), err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponses(incidents))
}

// Map godoc
// @Summary Nearby incidents as GeoJSON
// @Description Same selection as /ocorrencias/proximas, encoded as a FeatureCollection of points.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param raioKm query number false "Radius in km" default(5)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /ocorrencias/mapa [get]
func (ctl *IncidentController) Map(c *gin.Context, _ middleware.Principal) {
	lat, lon, radius, ok := bindNearby(c)
	if !ok {
		return
	}
	incidents, err := ctl.incidents.FindNear(c.Request.Context(), lat, lon, radius)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "IncidentMap"), err)
		return
	}
	c.JSON(http.StatusOK, toFeatureCollection(incidents, services.SearchBounds(lat, lon, radius)))
}

// Create godoc
// @Summary Report an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body createIncidentRequest true "New incident"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Missing description/address or unknown category"
// @Failure 401 {object} ErrorResponse
// @Router /ocorrencias [post]
func (ctl *IncidentController) Create(c *gin.Context, p middleware.Principal) {
	var body createIncidentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		msg := validation.Message(err)
		if validation.IsMissingField(err) {
			msg = "Descrição e endereço são obrigatórios"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	incident, err := ctl.incidents.Submit(c.Request.Context(), services.SubmitInput{
		ReporterID:     p.UserID,
		CategoryID:     body.CategoriaID,
		Description:    body.Descricao,
		Address:        body.Endereco,
		Latitude:       body.Latitude,
		Longitude:      body.Longitude,
		ImageURL:       body.ImagemURL,
		Urgent:         body.Urgente,
		PublicLocation: body.PontoPublico,
	})
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "CreateIncident"), err)
		return
	}

	c.Header("Location", "/api/ocorrencias/"+strconv.FormatUint(uint64(incident.ID), 10))
	c.JSON(http.StatusCreated, toIncidentResponse(incident))
}

// Validate godoc
// @Summary Validate an incident
// @Description Records the caller's validation and marks the incident validada. The body is optional.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param validation body validateRequest false "Optional comment"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Ocorrência não encontrada"
// @Router /ocorrencias/{id}/validar [post]
func (ctl *IncidentController) Validate(c *gin.Context, p middleware.Principal) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body validateRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	found, err := ctl.incidents.Validate(c.Request.Context(), id, p.UserID, body.Comentario)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "ValidateIncident"), err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ocorrência não encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ocorrência validada com sucesso"})
}

// UploadImage godoc
// @Summary Set the incident photo URL
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param image body uploadImageRequest true "Image URL"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "URL da imagem é obrigatória"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ocorrencias/{id}/upload-imagem [post]
func (ctl *IncidentController) UploadImage(c *gin.Context, _ middleware.Principal) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body uploadImageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL da imagem é obrigatória"})
		return
	}

	url, err := ctl.incidents.UpdateImageReference(c.Request.Context(), id, body.ImagemURL)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "UploadImage"), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imagemUrl": url})
}

func bindNearby(c *gin.Context) (lat, lon, radius float64, ok bool) {
	var q nearbyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coordenadas inválidas"})
		return 0, 0, 0, false
	}
	radius = services.DefaultRadiusKm
	if q.RaioKm != nil {
		radius = *q.RaioKm
	}
	return *q.Latitude, *q.Longitude, radius, true
}

func toFeatureCollection(incidents []models.Incident, bounds *geom.Bounds) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{
		BBox:     bounds,
		Features: make([]*geojson.Feature, 0, len(incidents)),
	}
	for _, inc := range incidents {
		props := map[string]interface{}{
			"descricao": inc.Description,
			"endereco":  inc.Address,
			"status":    string(inc.Status),
			"urgente":   inc.Urgent,
		}
		if inc.Category != nil {
			props["categoria"] = inc.Category.Name
			if inc.Category.Icon != nil {
				props["icone"] = *inc.Category.Icon
			}
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         strconv.FormatUint(uint64(inc.ID), 10),
			Geometry:   geom.NewPointFlat(geom.XY, []float64{inc.Longitude, inc.Latitude}),
			Properties: props,
		})
	}
	return fc
}
