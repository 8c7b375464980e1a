package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"urban_access/internal/middleware"
	"urban_access/internal/services"
	"urban_access/internal/validation"
)

type UserController struct {
	profiles ProfileService
	logger   *logrus.Logger
}

func NewUserController(profiles ProfileService, logger *logrus.Logger) *UserController {
	return &UserController{profiles: profiles, logger: logger}
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Usuário não encontrado"
// @Router /usuarios/perfil [get]
func (ctl *UserController) GetProfile(c *gin.Context, p middleware.Principal) {
	user, err := ctl.profiles.GetProfile(c.Request.Context(), p.UserID)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "GetProfile"), err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile godoc
// @Summary Update name and phone
// @Description Omitted fields keep their current value. Email and CPF cannot change.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body updateProfileRequest true "Fields to change"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /usuarios/perfil [put]
func (ctl *UserController) UpdateProfile(c *gin.Context, p middleware.Principal) {
	var body updateProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	user, err := ctl.profiles.UpdateProfile(c.Request.Context(), p.UserID, services.ProfileUpdate{
		Name:  body.Nome,
		Phone: body.Telefone,
	})
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "UpdateProfile"), err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// ChangePassword godoc
// @Summary Change password
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwords body changePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Missing fields or wrong current password"
// @Failure 401 {object} ErrorResponse
// @Router /usuarios/senha [put]
func (ctl *UserController) ChangePassword(c *gin.Context, p middleware.Principal) {
	var body changePasswordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		msg := validation.Message(err)
		if validation.IsMissingField(err) {
			msg = "Senha atual e nova senha são obrigatórias"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ok, err := ctl.profiles.ChangePassword(c.Request.Context(), p.UserID, body.SenhaAtual, body.NovaSenha)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "ChangePassword"), err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Senha atual incorreta"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Senha atualizada com sucesso"})
}
