package constants

// Estados por colección. Cada colección usa sus propios marcadores, con la
// misma capitalización que el panel original.
const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"

	ProveedorActivo = "ACTIVO"

	CronogramaAbierto  = "ABIERTO"
	CronogramaGenerado = "GENERADO"

	OrdenPendiente = "Pendiente"
	OrdenTerminada = "Terminada"

	SolicitudAbierta = "Abierta"
)

// Tipos de entidad.
const (
	TipoInterno = "Interno"
	TipoExterno = "Externo"
)

// TiposServicio es el catálogo fijo de tipos de servicio de un cronograma.
var TiposServicio = []string{
	"Calibración",
	"Calificación",
	"Capacitación",
	"Control de Calidad",
	"Correctivo",
	"Evaluación de Desempeño",
	"Instalación",
	"Inventario",
	"Predictivo",
	"Preventivo",
}
