package entities

// Equipo es una entrada del catálogo estático de equipos activos. El
// catálogo no es una colección editable: se consume como referencia desde
// solicitudes y cronogramas.
type Equipo struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	Serie     string `json:"serie"`
	Placa     string `json:"placa"`
	Codigo    string `json:"codigo"`
	Ubicacion string `json:"ubicacion"`
	Estado    string `json:"estado"`
}
