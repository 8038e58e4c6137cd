package entities

// Solicitud referencia un equipo del catálogo estático; el nombre del equipo
// se copia por valor al crearla.
type Solicitud struct {
	ID           uint64 `json:"id"`
	Numero       string `json:"numero"`
	Prioridad    string `json:"prioridad"`
	Estado       string `json:"estado"`
	Ordenes      string `json:"ordenes"`
	Descripcion  string `json:"descripcion"`
	Area         string `json:"area"`
	Ciudad       string `json:"ciudad"`
	Fecha        string `json:"fecha"`
	EquipoID     string `json:"equipoId,omitempty"`
	EquipoNombre string `json:"equipoNombre,omitempty"`
}

func (s Solicitud) RecordID() uint64 { return s.ID }

func (s Solicitud) WithID(id uint64) Solicitud { s.ID = id; return s }

func (s Solicitud) WithEstado(estado string) Solicitud { s.Estado = estado; return s }

func (s Solicitud) SearchText() []string {
	return []string{s.Numero, s.Descripcion, s.Area, s.Ciudad}
}
