package entities

// Sede pertenece a una entidad. El nombre de la entidad se copia por valor
// al crear la sede; renombrar la entidad después no lo actualiza.
type Sede struct {
	ID            uint64 `json:"id"`
	Sede          string `json:"sede"`
	EntidadID     uint64 `json:"entidadId,omitempty"`
	EntidadNombre string `json:"entidadNombre"`
	Regional      string `json:"regional"`
	Ciudad        string `json:"ciudad"`
	Pais          string `json:"pais"`
	Direccion     string `json:"direccion"`
	Telefono      string `json:"telefono"`
	AreaM2        string `json:"areaM2"`
	Estado        string `json:"estado"`
}

func (s Sede) RecordID() uint64 { return s.ID }

func (s Sede) WithID(id uint64) Sede { s.ID = id; return s }

func (s Sede) WithEstado(estado string) Sede { s.Estado = estado; return s }

func (s Sede) SearchText() []string {
	return []string{s.Sede, s.EntidadNombre}
}
