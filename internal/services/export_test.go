package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportTableCSVEncomillaTodo(t *testing.T) {
	table := ExportTable{
		Headers: []string{"ID", "Nombre"},
		Rows: [][]string{
			{"1", "Clínica Central"},
			{"2", "Sede, Norte"},
		},
	}

	want := "\"ID\",\"Nombre\"\n" +
		"\"1\",\"Clínica Central\"\n" +
		"\"2\",\"Sede, Norte\"\n"
	assert.Equal(t, want, table.CSV())
}

func TestExportTableCSVDuplicaComillasInternas(t *testing.T) {
	table := ExportTable{
		Headers: []string{"Nombre"},
		Rows:    [][]string{{`Equipo "X"`}},
	}

	assert.Equal(t, "\"Nombre\"\n\"Equipo \"\"X\"\"\"\n", table.CSV())
}

func TestExportTableCSVSinFilas(t *testing.T) {
	table := ExportTable{Headers: []string{"A", "B"}}
	assert.Equal(t, "\"A\",\"B\"\n", table.CSV())
}
