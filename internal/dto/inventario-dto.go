package dto

import "github.com/aarondl/null/v8"

type CreateInventarioDTO struct {
	Codigo    string `json:"codigo" validate:"required"`
	Nombre    string `json:"nombre" validate:"required"`
	Categoria string `json:"categoria"`
	Cantidad  int    `json:"cantidad" validate:"gte=0"`
	Ubicacion string `json:"ubicacion"`
	Estado    string `json:"estado"`
}

type UpdateInventarioDTO struct {
	Codigo    null.String `json:"codigo,omitempty"`
	Nombre    null.String `json:"nombre,omitempty"`
	Categoria null.String `json:"categoria,omitempty"`
	Cantidad  null.Int    `json:"cantidad,omitempty"`
	Ubicacion null.String `json:"ubicacion,omitempty"`
	Estado    null.String `json:"estado,omitempty"`
}
