package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryController struct {
	categories CategoryService
	logger     *logrus.Logger
}

func NewCategoryController(categories CategoryService, logger *logrus.Logger) *CategoryController {
	return &CategoryController{categories: categories, logger: logger}
}

// List godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /categorias [get]
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.categories.List(c.Request.Context())
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "ListCategories"), err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponses(categories))
}

// Get godoc
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 404 {object} ErrorResponse "Categoria não encontrada"
// @Router /categorias/{id} [get]
func (ctl *CategoryController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := ctl.categories.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "GetCategory"), err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(*category))
}
