package types

// Filter representa los parámetros de consulta de un listado: búsqueda de
// texto libre sobre los campos designados de cada colección y paginación.
type Filter struct {
	Search         string `json:"search,omitempty"`
	Estado         string `json:"estado,omitempty"`
	Limit          int    `json:"limit"`
	Offset         int    `json:"offset"`
	Page           int    `json:"page"`
	WithPagination bool   `json:"with_pagination"`
}

type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}
