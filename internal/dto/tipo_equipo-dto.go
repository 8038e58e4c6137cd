package dto

import "github.com/aarondl/null/v8"

type CreateTipoEquipoDTO struct {
	Clase                           string `json:"clase"`
	Nombre                          string `json:"nombre" validate:"required"`
	Alias                           string `json:"alias"`
	Marca                           string `json:"marca"`
	Modelo                          string `json:"modelo"`
	Tipo                            string `json:"tipo"`
	CantidadEquipos                 int    `json:"cantidadEquipos"`
	EquiposActivos                  int    `json:"equiposActivos"`
	FrecuenciaMantenimientoMeses    string `json:"frecuenciaMantenimientoMeses"`
	FrecuenciaCalibracionMeses      string `json:"frecuenciaCalibracionMeses"`
	FrecuenciaCambioAccesoriosMeses string `json:"frecuenciaCambioAccesoriosMeses"`
	FrecuenciaCalificacionesMeses   string `json:"frecuenciaCalificacionesMeses"`
	FrecuenciaValidacion            string `json:"frecuenciaValidacion"`
	FrecuenciaVerificacion          string `json:"frecuenciaVerificacion"`
	FrecuenciaControlCalidad        string `json:"frecuenciaControlCalidad"`
	ProcesoProduccion               bool   `json:"procesoProduccion"`
	LlevaGas                        bool   `json:"llevaGas"`
	LlevaAceite                     bool   `json:"llevaAceite"`
	Invima                          string `json:"invima"`
	Ecri                            string `json:"ecri"`
	RegistroSanitario               string `json:"registroSanitario"`
	VencimientoRegistro             string `json:"vencimientoRegistro"`
	VidaUtilAnual                   string `json:"vidaUtilAnual"`
	Fabricante                      string `json:"fabricante"`
	ValorSalvamento                 string `json:"valorSalvamento"`
	TasaRetorno                     string `json:"tasaRetorno"`
	ClasificacionBiomedica          string `json:"clasificacionBiomedica"`
	CodigoReferencia                string `json:"codigoReferencia"`
	SeguridadElectricaClase         string `json:"seguridadElectricaClase"`
	SeguridadElectricaTipo          string `json:"seguridadElectricaTipo"`
}

type UpdateTipoEquipoDTO struct {
	Clase                           null.String `json:"clase,omitempty"`
	Nombre                          null.String `json:"nombre,omitempty"`
	Alias                           null.String `json:"alias,omitempty"`
	Marca                           null.String `json:"marca,omitempty"`
	Modelo                          null.String `json:"modelo,omitempty"`
	Tipo                            null.String `json:"tipo,omitempty"`
	CantidadEquipos                 null.Int    `json:"cantidadEquipos,omitempty"`
	EquiposActivos                  null.Int    `json:"equiposActivos,omitempty"`
	FrecuenciaMantenimientoMeses    null.String `json:"frecuenciaMantenimientoMeses,omitempty"`
	FrecuenciaCalibracionMeses      null.String `json:"frecuenciaCalibracionMeses,omitempty"`
	FrecuenciaCambioAccesoriosMeses null.String `json:"frecuenciaCambioAccesoriosMeses,omitempty"`
	FrecuenciaCalificacionesMeses   null.String `json:"frecuenciaCalificacionesMeses,omitempty"`
	FrecuenciaValidacion            null.String `json:"frecuenciaValidacion,omitempty"`
	FrecuenciaVerificacion          null.String `json:"frecuenciaVerificacion,omitempty"`
	FrecuenciaControlCalidad        null.String `json:"frecuenciaControlCalidad,omitempty"`
	ProcesoProduccion               null.Bool   `json:"procesoProduccion,omitempty"`
	LlevaGas                        null.Bool   `json:"llevaGas,omitempty"`
	LlevaAceite                     null.Bool   `json:"llevaAceite,omitempty"`
	Invima                          null.String `json:"invima,omitempty"`
	Ecri                            null.String `json:"ecri,omitempty"`
	RegistroSanitario               null.String `json:"registroSanitario,omitempty"`
	VencimientoRegistro             null.String `json:"vencimientoRegistro,omitempty"`
	VidaUtilAnual                   null.String `json:"vidaUtilAnual,omitempty"`
	Fabricante                      null.String `json:"fabricante,omitempty"`
	ValorSalvamento                 null.String `json:"valorSalvamento,omitempty"`
	TasaRetorno                     null.String `json:"tasaRetorno,omitempty"`
	ClasificacionBiomedica          null.String `json:"clasificacionBiomedica,omitempty"`
	CodigoReferencia                null.String `json:"codigoReferencia,omitempty"`
	SeguridadElectricaClase         null.String `json:"seguridadElectricaClase,omitempty"`
	SeguridadElectricaTipo          null.String `json:"seguridadElectricaTipo,omitempty"`
}

type ArchivoUploadDTO struct {
	Nombre string `json:"name" validate:"required"`
	Tipo   string `json:"type"`
	Data   string `json:"data" validate:"required"`
}

type ParametroDTO struct {
	Nombre string `json:"nombre" validate:"required"`
	Valor  string `json:"valor"`
}

type AccesorioDTO struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

type InstructivoDTO struct {
	Nombre    string `json:"nombre" validate:"required"`
	Contenido string `json:"contenido"`
}
