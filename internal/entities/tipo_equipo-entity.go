package entities

// TipoEquipo es la ficha técnica de un tipo de equipo. La mayoría de los
// campos son opcionales; solo el nombre es obligatorio al crear.
type TipoEquipo struct {
	ID                              uint64 `json:"id"`
	Clase                           string `json:"clase,omitempty"`
	Nombre                          string `json:"nombre"`
	Alias                           string `json:"alias,omitempty"`
	Marca                           string `json:"marca,omitempty"`
	Modelo                          string `json:"modelo,omitempty"`
	Tipo                            string `json:"tipo,omitempty"`
	Estado                          string `json:"estado,omitempty"`
	CantidadEquipos                 int    `json:"cantidadEquipos,omitempty"`
	EquiposActivos                  int    `json:"equiposActivos,omitempty"`
	FrecuenciaMantenimientoMeses    string `json:"frecuenciaMantenimientoMeses,omitempty"`
	FrecuenciaCalibracionMeses      string `json:"frecuenciaCalibracionMeses,omitempty"`
	FrecuenciaCambioAccesoriosMeses string `json:"frecuenciaCambioAccesoriosMeses,omitempty"`
	FrecuenciaCalificacionesMeses   string `json:"frecuenciaCalificacionesMeses,omitempty"`
	FrecuenciaValidacion            string `json:"frecuenciaValidacion,omitempty"`
	FrecuenciaVerificacion          string `json:"frecuenciaVerificacion,omitempty"`
	FrecuenciaControlCalidad        string `json:"frecuenciaControlCalidad,omitempty"`
	ProcesoProduccion               bool   `json:"procesoProduccion,omitempty"`
	LlevaGas                        bool   `json:"llevaGas,omitempty"`
	LlevaAceite                     bool   `json:"llevaAceite,omitempty"`
	Invima                          string `json:"invima,omitempty"`
	Ecri                            string `json:"ecri,omitempty"`
	RegistroSanitario               string `json:"registroSanitario,omitempty"`
	VencimientoRegistro             string `json:"vencimientoRegistro,omitempty"`
	VidaUtilAnual                   string `json:"vidaUtilAnual,omitempty"`
	Fabricante                      string `json:"fabricante,omitempty"`
	ValorSalvamento                 string `json:"valorSalvamento,omitempty"`
	TasaRetorno                     string `json:"tasaRetorno,omitempty"`
	ClasificacionBiomedica          string `json:"clasificacionBiomedica,omitempty"`
	CodigoReferencia                string `json:"codigoReferencia,omitempty"`
	SeguridadElectricaClase         string `json:"seguridadElectricaClase,omitempty"`
	SeguridadElectricaTipo          string `json:"seguridadElectricaTipo,omitempty"`
}

func (t TipoEquipo) RecordID() uint64 { return t.ID }

func (t TipoEquipo) WithID(id uint64) TipoEquipo { t.ID = id; return t }

func (t TipoEquipo) WithEstado(estado string) TipoEquipo { t.Estado = estado; return t }

func (t TipoEquipo) SearchText() []string {
	return []string{t.Nombre, t.Marca, t.Modelo}
}

// Archivo es una imagen o documento adjunto a un tipo de equipo; el
// contenido viaja como data URL y el id es sintético, basado en la marca de
// tiempo de subida.
type Archivo struct {
	ID     string `json:"id"`
	Nombre string `json:"name"`
	Tipo   string `json:"type"`
	Data   string `json:"data"`
}

type Parametro struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Valor  string `json:"valor"`
}

type Accesorio struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Instructivo struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Contenido string `json:"contenido"`
}

// TipoEquipoArchivos agrupa las sublistas adjuntas de un tipo de equipo.
// Se persisten aparte de la ficha, en su propia clave, indexadas por el id
// del tipo.
type TipoEquipoArchivos struct {
	Images       []Archivo     `json:"images"`
	Docs         []Archivo     `json:"docs"`
	Parametros   []Parametro   `json:"parametros"`
	Accesorios   []Accesorio   `json:"accesorios"`
	Instructivos []Instructivo `json:"instructivos"`
}
