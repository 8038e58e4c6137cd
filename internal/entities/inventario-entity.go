package entities

// InventarioItem es un repuesto del inventario.
type InventarioItem struct {
	ID        uint64 `json:"id"`
	Codigo    string `json:"codigo"`
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
	Cantidad  int    `json:"cantidad"`
	Ubicacion string `json:"ubicacion"`
	Estado    string `json:"estado"`
}

func (i InventarioItem) RecordID() uint64 { return i.ID }

func (i InventarioItem) WithID(id uint64) InventarioItem { i.ID = id; return i }

func (i InventarioItem) WithEstado(estado string) InventarioItem { i.Estado = estado; return i }

func (i InventarioItem) SearchText() []string {
	return []string{i.Codigo, i.Nombre, i.Categoria}
}
