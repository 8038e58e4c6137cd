package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registra las reglas propias del panel en el
// validador compartido. Las reglas son solo de presencia y formato básico:
// el sistema no valida nada más allá de eso.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("email_basico", isBasicEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("fecha_iso", isISODate); err != nil {
		return err
	}
	return nil
}

func isBasicEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

// isISODate acepta la forma yyyy-MM-dd usada como clave de celda del
// calendario de cronogramas.
func isISODate(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	return re.MatchString(fl.Field().String())
}
