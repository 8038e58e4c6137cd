package dto

import "github.com/aarondl/null/v8"

// DocumentoUploadDTO es un adjunto leído en el diálogo de guardado; el
// contenido llega como data URL en base64.
type DocumentoUploadDTO struct {
	Nombre    string `json:"nombre" validate:"required"`
	Tipo      string `json:"tipo"`
	Tamano    int64  `json:"tamaño"`
	Contenido string `json:"contenido" validate:"required"`
}

type CreateEntidadDTO struct {
	Nombre     string               `json:"nombre" validate:"required"`
	NIT        string               `json:"nit" validate:"required"`
	Tipo       string               `json:"tipo"`
	Estado     string               `json:"estado"`
	Email      string               `json:"email" validate:"required,email_basico"`
	Documentos []DocumentoUploadDTO `json:"documentos,omitempty" validate:"omitempty,dive"`
}

type UpdateEntidadDTO struct {
	Nombre null.String `json:"nombre,omitempty"`
	NIT    null.String `json:"nit,omitempty"`
	Tipo   null.String `json:"tipo,omitempty"`
	Estado null.String `json:"estado,omitempty"`
	Email  null.String `json:"email,omitempty" validate:"omitempty"`
	// Documentos nuevos se agregan a los existentes, nunca los reemplazan.
	Documentos []DocumentoUploadDTO `json:"documentos,omitempty" validate:"omitempty,dive"`
}
