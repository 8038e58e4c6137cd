package dto

import "github.com/aarondl/null/v8"

type CreateSedeDTO struct {
	Sede      string `json:"sede" validate:"required"`
	EntidadID uint64 `json:"entidadId"`
	Regional  string `json:"regional"`
	Ciudad    string `json:"ciudad"`
	Pais      string `json:"pais"`
	Direccion string `json:"direccion" validate:"required"`
	Telefono  string `json:"telefono"`
	AreaM2    string `json:"areaM2"`
	Estado    string `json:"estado"`
}

type UpdateSedeDTO struct {
	Sede      null.String `json:"sede,omitempty"`
	EntidadID null.Uint64 `json:"entidadId,omitempty"`
	Regional  null.String `json:"regional,omitempty"`
	Ciudad    null.String `json:"ciudad,omitempty"`
	Pais      null.String `json:"pais,omitempty"`
	Direccion null.String `json:"direccion,omitempty"`
	Telefono  null.String `json:"telefono,omitempty"`
	AreaM2    null.String `json:"areaM2,omitempty"`
	Estado    null.String `json:"estado,omitempty"`
}
