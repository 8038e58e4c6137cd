package entities

// Documento es un archivo adjunto a una entidad. El contenido viaja en
// base64 (data URL) y el id es sintético, basado en la marca de tiempo de
// subida.
type Documento struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	Tamano    int64  `json:"tamaño"`
	Contenido string `json:"contenido"`
	Fecha     string `json:"fecha"`
}

type Entidad struct {
	ID         uint64      `json:"id"`
	Nombre     string      `json:"nombre"`
	NIT        string      `json:"nit"`
	Tipo       string      `json:"tipo"`
	Estado     string      `json:"estado"`
	Email      string      `json:"email"`
	Documentos []Documento `json:"documentos,omitempty"`
}

func (e Entidad) RecordID() uint64 { return e.ID }

func (e Entidad) WithID(id uint64) Entidad { e.ID = id; return e }

func (e Entidad) WithEstado(estado string) Entidad { e.Estado = estado; return e }

func (e Entidad) SearchText() []string {
	return []string{e.Nombre, e.NIT, e.Email}
}
