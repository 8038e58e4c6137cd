package dto

import "github.com/aarondl/null/v8"

type CreateSolicitudDTO struct {
	Numero      string `json:"numero" validate:"required"`
	Prioridad   string `json:"prioridad"`
	Estado      string `json:"estado"`
	Descripcion string `json:"descripcion"`
	Area        string `json:"area"`
	Ciudad      string `json:"ciudad"`
	EquipoID    string `json:"equipoId"`
}

type UpdateSolicitudDTO struct {
	Numero      null.String `json:"numero,omitempty"`
	Prioridad   null.String `json:"prioridad,omitempty"`
	Estado      null.String `json:"estado,omitempty"`
	Descripcion null.String `json:"descripcion,omitempty"`
	Area        null.String `json:"area,omitempty"`
	Ciudad      null.String `json:"ciudad,omitempty"`
	EquipoID    null.String `json:"equipoId,omitempty"`
}

// GenerateOrderFromSolicitudDTO lleva los datos mínimos para emitir una orden
// de servicio a partir de una solicitud abierta.
type GenerateOrderFromSolicitudDTO struct {
	Responsable string `json:"responsable"`
	Tipo        string `json:"tipo"`
	Prioridad   string `json:"prioridad"`
}
