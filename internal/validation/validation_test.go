package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"529.982.247-25", true},
		{"52998224725", true},
		{"111.444.777-35", true},
		{"529.982.247-24", false},
		{"111.111.111-11", false},
		{"123.456.789-00", false},
		{"1234", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.cpf, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCPF(tt.cpf))
		})
	}
}

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Phone    string `json:"telefone" validate:"required,telefone"`
	Password string `json:"senha" validate:"required,min=6"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestRulesAndMessages(t *testing.T) {
	v := newValidator(t)
	valid := signup{Email: "a@b.com", CPF: "529.982.247-25", Phone: "(11) 91234-5678", Password: "segredo"}
	require.NoError(t, v.Struct(valid))

	tests := []struct {
		name    string
		mutate  func(*signup)
		message string
		missing bool
	}{
		{"bad email", func(s *signup) { s.Email = "nope" }, MsgInvalidEmail, false},
		{"bad cpf", func(s *signup) { s.CPF = "529.982.247-24" }, MsgInvalidCPF, false},
		{"bad phone", func(s *signup) { s.Phone = "11912345678" }, MsgInvalidPhone, false},
		{"short password", func(s *signup) { s.Password = "12345" }, MsgPasswordTooWeak, false},
		{"missing phone", func(s *signup) { s.Phone = "" }, MsgInvalidRequest, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := v.Struct(s)
			require.Error(t, err)
			assert.Equal(t, tt.message, Message(err))
			assert.Equal(t, tt.missing, IsMissingField(err))
		})
	}
}

func TestFieldNamesUseJSONTags(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(signup{Email: "a@b.com", CPF: "529.982.247-25", Phone: "bad", Password: "segredo"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "telefone", verrs[0].Field())
}

type point struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

func TestMessage_OutOfRangeCoordinates(t *testing.T) {
	v := newValidator(t)

	for _, p := range []point{{Latitude: 91}, {Longitude: -181}} {
		err := v.Struct(p)
		require.Error(t, err)
		assert.Equal(t, MsgInvalidCoords, Message(err))
		assert.False(t, IsMissingField(err))
	}
}
