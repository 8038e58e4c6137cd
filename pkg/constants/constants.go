package constants

// Claves de almacenamiento. El sufijo de versión forma parte literal de la
// clave, no hay negociación de esquema (heredado del panel original).
const (
	KeyEntidades         = "gm_entidades_v1"
	KeySedes             = "gm_sedes_v1"
	KeyProveedores       = "gm_proveedores_v1"
	KeyTiposEquipos      = "gm_tipos_equipos_v1"
	KeyTiposEquiposFiles = "gm_tipos_equipos_files_v1"
	KeyCronogramas       = "gm_cronogramas_v1"
	KeyOrdenes           = "gm_ordenes_v1"
	KeySolicitudes       = "gm_solicitudes_v1"
	KeyInventarios       = "gm_inventarios_v1"
)

// Tópicos del bus de eventos, uno por colección compartida entre vistas.
const (
	TopicEntidades    = "gm:entidades:updated"
	TopicSedes        = "gm:sedes:updated"
	TopicProveedores  = "gm:proveedores:updated"
	TopicTiposEquipos = "gm:tipos_equipos:updated"
	TopicCronogramas  = "gm:cronogramas:updated"
	TopicOrdenes      = "gm:ordenes:updated"
	TopicSolicitudes  = "gm:solicitudes:updated"
	TopicInventarios  = "gm:inventarios:updated"
)
