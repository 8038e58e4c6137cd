package errors

import "fmt"

var (
	// Sesión y tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de firma del token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("el token ha expirado")

	// Generales
	ErrNotFound   = fmt.Errorf("registro no encontrado")
	ErrBadRequest = fmt.Errorf("solicitud inválida")

	// Acciones masivas
	ErrEmptySelection       = fmt.Errorf("debe seleccionar al menos un registro")
	ErrConfirmationRequired = fmt.Errorf("se requiere confirmación para esta acción")
)

// HttpError lleva el código HTTP, el mensaje para el usuario y el error
// interno para los logs.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
