package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex    = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// Messages shown to the mobile client for each failed rule.
const (
	MsgInvalidEmail    = "Email inválido"
	MsgInvalidCPF      = "CPF inválido"
	MsgInvalidPhone    = "Telefone inválido (formato: (11) 91234-5678)"
	MsgPasswordTooWeak = "A senha deve ter pelo menos 6 caracteres"
	MsgInvalidCoords   = "Coordenadas inválidas"
	MsgInvalidRequest  = "Requisição inválida"
)

// Register adds the cpf and telefone rules and reports field names by their json tag.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("cpf", validateCPF); err != nil {
		return err
	}
	return v.RegisterValidation("telefone", validatePhone)
}

// RegisterWithGin installs the custom rules on gin's default binding validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

// IsMissingField reports whether err is a validator error caused by a required field.
func IsMissingField(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return true
		}
	}
	return false
}

// Message turns a binding error into the message for the first failed rule.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return MsgInvalidRequest
	}
	switch verrs[0].Field() {
	case "latitude", "longitude":
		return MsgInvalidCoords
	}
	switch verrs[0].Tag() {
	case "email":
		return MsgInvalidEmail
	case "cpf":
		return MsgInvalidCPF
	case "telefone":
		return MsgInvalidPhone
	case "min":
		return MsgPasswordTooWeak
	default:
		return MsgInvalidRequest
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateCPF(fl validator.FieldLevel) bool {
	return ValidCPF(fl.Field().String())
}

// ValidCPF checks length and both check digits; punctuation is ignored.
func ValidCPF(value string) bool {
	digits := nonDigitRegex.ReplaceAllString(value, "")
	if len(digits) != 11 {
		return false
	}
	if strings.Count(digits, digits[:1]) == 11 {
		return false
	}
	return checkDigit(digits[:9], 10) == digits[9] && checkDigit(digits[:10], 11) == digits[10]
}

func checkDigit(prefix string, weight int) byte {
	sum := 0
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	rem := (sum * 10) % 11
	if rem == 10 {
		rem = 0
	}
	return byte('0' + rem)
}
