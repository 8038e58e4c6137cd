package dto

import "github.com/aarondl/null/v8"

type CreateProveedorDTO struct {
	Numero       string `json:"numero" validate:"required"`
	NIT          string `json:"nit"`
	Estado       string `json:"estado"`
	Nombre       string `json:"nombre" validate:"required"`
	TipoServicio string `json:"tipoServicio"`
}

type UpdateProveedorDTO struct {
	Numero       null.String `json:"numero,omitempty"`
	NIT          null.String `json:"nit,omitempty"`
	Estado       null.String `json:"estado,omitempty"`
	Nombre       null.String `json:"nombre,omitempty"`
	TipoServicio null.String `json:"tipoServicio,omitempty"`
}
