package entities

// EquipoRef es la copia por valor de un equipo del catálogo dentro de un
// cronograma u orden.
type EquipoRef struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Alias  string `json:"alias,omitempty"`
	Marca  string `json:"marca,omitempty"`
	Serial string `json:"serial,omitempty"`
}

// Cronograma es una programación de servicio anclada a una fecha del
// calendario (yyyy-MM-dd). La entidad y la sede se guardan como texto tal
// cual se eligieron en el formulario.
type Cronograma struct {
	ID            uint64      `json:"id"`
	Nombre        string      `json:"nombre"`
	Entidad       string      `json:"entidad"`
	Sede          string      `json:"sede"`
	TipoServicio  string      `json:"tipoServicio"`
	Tipo          string      `json:"tipo"`
	TipoEjecucion string      `json:"tipoEjecucion"`
	Responsable   string      `json:"responsable"`
	Fecha         string      `json:"fecha"`
	Descripcion   string      `json:"descripcion"`
	Estado        string      `json:"estado,omitempty"`
	Equipos       []EquipoRef `json:"equipos"`
}

func (c Cronograma) RecordID() uint64 { return c.ID }

func (c Cronograma) WithID(id uint64) Cronograma { c.ID = id; return c }

func (c Cronograma) WithEstado(estado string) Cronograma { c.Estado = estado; return c }

func (c Cronograma) SearchText() []string {
	return []string{c.Nombre, c.Entidad, c.Sede}
}
