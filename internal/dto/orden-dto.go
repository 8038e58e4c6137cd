package dto

import "github.com/aarondl/null/v8"

type UpdateOrdenDTO struct {
	Equipo             null.String `json:"equipo,omitempty"`
	Estado             null.String `json:"estado,omitempty"`
	Tipo               null.String `json:"tipo,omitempty"`
	Responsable        null.String `json:"responsable,omitempty"`
	Prioridad          null.String `json:"prioridad,omitempty"`
	Descripcion        null.String `json:"descripcion,omitempty"`
	TrabajosRealizados null.String `json:"trabajosRealizados,omitempty"`
}
