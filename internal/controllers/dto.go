package controllers

import "time"

type loginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

type registerRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	CPF      string `json:"cpf" binding:"required,cpf"`
	Telefone string `json:"telefone" binding:"required,telefone"`
	Senha    string `json:"senha" binding:"required,min=6"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	ID       uint   `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
	Token    string `json:"token"`
}

type UserResponse struct {
	ID           uint      `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	CPF          string    `json:"cpf"`
	Telefone     string    `json:"telefone"`
	DataCadastro time.Time `json:"dataCadastro"`
}

type updateProfileRequest struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone" binding:"omitempty,telefone"`
}

type changePasswordRequest struct {
	SenhaAtual string `json:"senhaAtual" binding:"required"`
	NovaSenha  string `json:"novaSenha" binding:"required,min=6"`
}

type CategoryResponse struct {
	ID        uint    `json:"id"`
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao"`
	Icone     *string `json:"icone"`
}

type createIncidentRequest struct {
	CategoriaID  uint    `json:"categoriaId"`
	Descricao    string  `json:"descricao" binding:"required"`
	Endereco     string  `json:"endereco" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" binding:"min=-180,max=180"`
	ImagemURL    *string `json:"imagemUrl"`
	Urgente      bool    `json:"urgente"`
	PontoPublico bool    `json:"pontoPublico"`
}

type validateRequest struct {
	Comentario *string `json:"comentario"`
}

type uploadImageRequest struct {
	ImagemURL string `json:"imagemUrl" binding:"required"`
}

type nearbyQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"required,min=-180,max=180"`
	RaioKm    *float64 `form:"raioKm" binding:"omitempty,gt=0"`
}

// IncidentResponse is an incident with whichever relations were loaded.
type IncidentResponse struct {
	ID           uint                 `json:"id"`
	UsuarioID    uint                 `json:"usuarioId"`
	CategoriaID  uint                 `json:"categoriaId"`
	Descricao    string               `json:"descricao"`
	Endereco     string               `json:"endereco"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	ImagemURL    *string              `json:"imagemUrl"`
	DataCriacao  time.Time            `json:"dataCriacao"`
	Status       string               `json:"status"`
	Urgente      bool                 `json:"urgente"`
	PontoPublico bool                 `json:"pontoPublico"`
	Usuario      *PublicUserResponse  `json:"usuario,omitempty"`
	Categoria    *CategoryResponse    `json:"categoria,omitempty"`
	Validacoes   []ValidationResponse `json:"validacoes,omitempty"`
}

// PublicUserResponse is the reporter or validator embedded in an incident.
type PublicUserResponse struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

type ValidationResponse struct {
	ID            uint                `json:"id"`
	OcorrenciaID  uint                `json:"ocorrenciaId"`
	UsuarioID     uint                `json:"usuarioId"`
	Comentario    *string             `json:"comentario"`
	DataValidacao time.Time           `json:"dataValidacao"`
	Usuario       *PublicUserResponse `json:"usuario,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
