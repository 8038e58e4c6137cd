package entities

// OrdenServicio se genera desde un cronograma o desde una solicitud. Los
// campos cronograma* son copias tomadas en el momento de la generación;
// cambios posteriores al cronograma no se propagan.
type OrdenServicio struct {
	ID                 uint64      `json:"id"`
	Numero             string      `json:"numero"`
	CronogramaID       uint64      `json:"cronogramaId,omitempty"`
	Equipo             string      `json:"equipo"`
	Estado             string      `json:"estado"`
	Tipo               string      `json:"tipo"`
	Responsable        string      `json:"responsable"`
	Prioridad          string      `json:"prioridad"`
	Descripcion        string      `json:"descripcion,omitempty"`
	TrabajosRealizados string      `json:"trabajosRealizados,omitempty"`
	FechaGeneracion    string      `json:"fechaGeneracion,omitempty"`
	CronogramaNombre   string      `json:"cronogramaNombre,omitempty"`
	CronogramaEntidad  string      `json:"cronogramaEntidad,omitempty"`
	CronogramaSede     string      `json:"cronogramaSede,omitempty"`
	CronogramaEquipos  []EquipoRef `json:"cronogramaEquipos,omitempty"`
}

func (o OrdenServicio) RecordID() uint64 { return o.ID }

func (o OrdenServicio) WithID(id uint64) OrdenServicio { o.ID = id; return o }

func (o OrdenServicio) WithEstado(estado string) OrdenServicio { o.Estado = estado; return o }

func (o OrdenServicio) SearchText() []string {
	return []string{o.Numero, o.Equipo, o.Responsable}
}
