package dto

import "github.com/aarondl/null/v8"

type EquipoRefDTO struct {
	ID     string `json:"id" validate:"required"`
	Nombre string `json:"nombre"`
	Alias  string `json:"alias"`
	Marca  string `json:"marca"`
	Serial string `json:"serial"`
}

type CreateCronogramaDTO struct {
	Nombre        string         `json:"nombre" validate:"required"`
	Entidad       string         `json:"entidad"`
	Sede          string         `json:"sede"`
	TipoServicio  string         `json:"tipoServicio"`
	Tipo          string         `json:"tipo"`
	TipoEjecucion string         `json:"tipoEjecucion"`
	Responsable   string         `json:"responsable"`
	Fecha         string         `json:"fecha" validate:"required,fecha_iso"`
	Descripcion   string         `json:"descripcion"`
	Equipos       []EquipoRefDTO `json:"equipos" validate:"omitempty,dive"`
}

type UpdateCronogramaDTO struct {
	Nombre        null.String `json:"nombre,omitempty"`
	Entidad       null.String `json:"entidad,omitempty"`
	Sede          null.String `json:"sede,omitempty"`
	TipoServicio  null.String `json:"tipoServicio,omitempty"`
	Tipo          null.String `json:"tipo,omitempty"`
	TipoEjecucion null.String `json:"tipoEjecucion,omitempty"`
	Responsable   null.String `json:"responsable,omitempty"`
	Descripcion   null.String `json:"descripcion,omitempty"`
	// Equipos no nulo reemplaza la lista completa del cronograma.
	Equipos []EquipoRefDTO `json:"equipos,omitempty" validate:"omitempty,dive"`
}

// GenerateOrdersDTO configura la generación de órdenes desde un cronograma:
// una orden única para todos los equipos o una orden por equipo.
type GenerateOrdersDTO struct {
	TipoGeneracion    string `json:"tipoGeneracion"`
	Responsable       string `json:"responsable"`
	GenerarUnicaOrden bool   `json:"generarUnicaOrden"`
}
