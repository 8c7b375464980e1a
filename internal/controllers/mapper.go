package controllers

import (
	"urban_access/internal/models"
	"urban_access/internal/services"
)

func toAuthResponse(res *services.AuthResult) AuthResponse {
	return AuthResponse{
		ID:       res.User.ID,
		Nome:     res.User.Name,
		Email:    res.User.Email,
		CPF:      res.User.NationalID,
		Telefone: res.User.Phone,
		Token:    res.Token,
	}
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Nome:         u.Name,
		Email:        u.Email,
		CPF:          u.NationalID,
		Telefone:     u.Phone,
		DataCadastro: u.RegisteredAt,
	}
}

func toPublicUser(u *models.User) *PublicUserResponse {
	if u == nil {
		return nil
	}
	return &PublicUserResponse{ID: u.ID, Nome: u.Name}
}

func toCategoryResponse(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Nome:      c.Name,
		Descricao: c.Description,
		Icone:     c.Icon,
	}
}

func toCategoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

func toIncidentResponse(inc *models.Incident) IncidentResponse {
	resp := IncidentResponse{
		ID:           inc.ID,
		UsuarioID:    inc.ReporterID,
		CategoriaID:  inc.CategoryID,
		Descricao:    inc.Description,
		Endereco:     inc.Address,
		Latitude:     inc.Latitude,
		Longitude:    inc.Longitude,
		ImagemURL:    inc.ImageURL,
		DataCriacao:  inc.CreatedAt,
		Status:       string(inc.Status),
		Urgente:      inc.Urgent,
		PontoPublico: inc.PublicLocation,
		Usuario:      toPublicUser(inc.Reporter),
	}
	if inc.Category != nil {
		c := toCategoryResponse(*inc.Category)
		resp.Categoria = &c
	}
	for _, v := range inc.Validations {
		resp.Validacoes = append(resp.Validacoes, ValidationResponse{
			ID:            v.ID,
			OcorrenciaID:  v.IncidentID,
			UsuarioID:     v.ValidatorID,
			Comentario:    v.Comment,
			DataValidacao: v.ValidatedAt,
			Usuario:       toPublicUser(v.Validator),
		})
	}
	return resp
}

func toIncidentResponses(incidents []models.Incident) []IncidentResponse {
	out := make([]IncidentResponse, 0, len(incidents))
	for i := range incidents {
		out = append(out, toIncidentResponse(&incidents[i]))
	}
	return out
}
