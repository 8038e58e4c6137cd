package entities

type Proveedor struct {
	ID           uint64 `json:"id"`
	Numero       string `json:"numero"`
	NIT          string `json:"nit"`
	Estado       string `json:"estado"`
	Nombre       string `json:"nombre"`
	TipoServicio string `json:"tipoServicio,omitempty"`
}

func (p Proveedor) RecordID() uint64 { return p.ID }

func (p Proveedor) WithID(id uint64) Proveedor { p.ID = id; return p }

func (p Proveedor) WithEstado(estado string) Proveedor { p.Estado = estado; return p }

func (p Proveedor) SearchText() []string {
	return []string{p.Numero, p.NIT, p.Nombre, p.TipoServicio}
}
