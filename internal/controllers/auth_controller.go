package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"urban_access/internal/services"
	"urban_access/internal/validation"
)

type AuthController struct {
	identity IdentityService
	logger   *logrus.Logger
}

func NewAuthController(identity IdentityService, logger *logrus.Logger) *AuthController {
	return &AuthController{identity: identity, logger: logger}
}

// Login godoc
// @Summary Log in
// @Description Exchanges email and password for a bearer token. Email matching is case-insensitive.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Email and password"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse "Missing email or password"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email e senha são obrigatórios"})
		return
	}

	res, err := ctl.identity.Authenticate(c.Request.Context(), body.Email, body.Senha)
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "Login"), err)
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(res))
}

// Register godoc
// @Summary Register
// @Description Creates an account and logs it in. Email and CPF must be unused.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body registerRequest true "New account"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid field, or email/CPF already registered"
// @Router /auth/cadastro [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		msg := validation.Message(err)
		if validation.IsMissingField(err) {
			msg = "Todos os campos são obrigatórios"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	res, err := ctl.identity.Register(c.Request.Context(), services.RegisterInput{
		Name:       body.Nome,
		Email:      body.Email,
		NationalID: body.CPF,
		Phone:      body.Telefone,
		Password:   body.Senha,
	})
	if err != nil {
		writeError(c, ctl.logger.WithField("handler", "Register"), err)
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(res))
}
