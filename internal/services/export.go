package services

import (
	"strconv"
	"strings"
)

// ExportTable es la forma común de exportación de cualquier pantalla:
// encabezados más filas ya formateadas como texto. El mismo cuadro sirve
// para CSV y para XLSX.
type ExportTable struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// CSV serializa el cuadro con cada celda entre comillas dobles, duplicando
// las comillas internas, igual que hacía la exportación del panel original.
func (t ExportTable) CSV() string {
	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	writeRow(t.Headers)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return b.String()
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
