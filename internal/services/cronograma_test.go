package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/eventbus"
	"maintenance-system/pkg/kvstore"
)

func newCronogramaFixture(t *testing.T) (*CronogramaService, *store.Collection[entities.OrdenServicio]) {
	t.Helper()
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	bus := eventbus.New(zap.NewNop())

	cronogramas := store.NewCollection[entities.Cronograma](kv, bus, zap.NewNop(), constants.KeyCronogramas, constants.TopicCronogramas, nil)
	ordenes := store.NewCollection[entities.OrdenServicio](kv, bus, zap.NewNop(), constants.KeyOrdenes, constants.TopicOrdenes, nil)
	return NewCronogramaService(cronogramas, ordenes, zap.NewNop()), ordenes
}

func crearCronogramaConEquipos(t *testing.T, svc *CronogramaService, equipos ...dto.EquipoRefDTO) *entities.Cronograma {
	t.Helper()
	cronograma, err := svc.CreateCronograma(context.Background(), dto.CreateCronogramaDTO{
		Nombre:       "Mantenimiento trimestral",
		Entidad:      "Clínica Central",
		Sede:         "Sede Norte",
		TipoServicio: "Preventivo",
		Responsable:  "J. Pérez",
		Fecha:        "2026-09-15",
		Equipos:      equipos,
	})
	require.NoError(t, err)
	require.Equal(t, constants.CronogramaAbierto, cronograma.Estado)
	return cronograma
}

func TestGenerateOrdenesUnaPorEquipo(t *testing.T) {
	svc, ordenes := newCronogramaFixture(t)
	cronograma := crearCronogramaConEquipos(t, svc,
		dto.EquipoRefDTO{ID: "249177", Nombre: "Centrífuga"},
		dto.EquipoRefDTO{ID: "249178", Nombre: "Balanza"},
	)

	generadas, err := svc.GenerateOrdenes(context.Background(), cronograma.ID, dto.GenerateOrdersDTO{})
	require.NoError(t, err)
	require.Len(t, generadas, 2)

	for i, orden := range generadas {
		assert.Equal(t, fmt.Sprintf("ORD-%06d", orden.ID), orden.Numero)
		assert.Equal(t, constants.OrdenPendiente, orden.Estado)
		assert.Equal(t, "Alta", orden.Prioridad)
		assert.Equal(t, "2026-09-15", orden.FechaGeneracion)
		assert.Equal(t, cronograma.ID, orden.CronogramaID)
		assert.Equal(t, "Mantenimiento trimestral", orden.CronogramaNombre)
		assert.Equal(t, "Clínica Central", orden.CronogramaEntidad)
		assert.Equal(t, "Sede Norte", orden.CronogramaSede)
		require.Len(t, orden.CronogramaEquipos, 1)
		assert.Equal(t, cronograma.Equipos[i].Nombre, orden.Equipo)
	}
	assert.Equal(t, 2, ordenes.Len())

	actualizado, err := svc.FindCronograma(context.Background(), cronograma.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.CronogramaGenerado, actualizado.Estado)
}

func TestGenerateOrdenesUnicaOrden(t *testing.T) {
	svc, ordenes := newCronogramaFixture(t)
	cronograma := crearCronogramaConEquipos(t, svc,
		dto.EquipoRefDTO{ID: "249177", Nombre: "Centrífuga"},
		dto.EquipoRefDTO{ID: "249178", Nombre: "Balanza"},
	)

	generadas, err := svc.GenerateOrdenes(context.Background(), cronograma.ID, dto.GenerateOrdersDTO{
		GenerarUnicaOrden: true,
		Responsable:       "M. Gómez",
	})
	require.NoError(t, err)
	require.Len(t, generadas, 1)

	orden := generadas[0]
	assert.Equal(t, "Centrífuga, Balanza", orden.Equipo)
	assert.Equal(t, "M. Gómez", orden.Responsable)
	assert.Len(t, orden.CronogramaEquipos, 2)
	assert.Equal(t, 1, ordenes.Len())
}

func TestGenerateOrdenesSinEquipos(t *testing.T) {
	svc, _ := newCronogramaFixture(t)
	cronograma := crearCronogramaConEquipos(t, svc)

	_, err := svc.GenerateOrdenes(context.Background(), cronograma.ID, dto.GenerateOrdersDTO{})
	assert.Error(t, err)
}

func TestGenerateOrdenesCronogramaInexistente(t *testing.T) {
	svc, _ := newCronogramaFixture(t)

	_, err := svc.GenerateOrdenes(context.Background(), 404, dto.GenerateOrdersDTO{})
	assert.Error(t, err)
}

func TestDeleteCronogramaNoTocaOrdenes(t *testing.T) {
	svc, ordenes := newCronogramaFixture(t)
	cronograma := crearCronogramaConEquipos(t, svc, dto.EquipoRefDTO{ID: "249177", Nombre: "Centrífuga"})

	_, err := svc.GenerateOrdenes(context.Background(), cronograma.ID, dto.GenerateOrdersDTO{})
	require.NoError(t, err)

	removed, err := svc.DeleteCronogramas(context.Background(), map[uint64]struct{}{cronograma.ID: {}})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	// Las órdenes conservan sus copias aunque el cronograma ya no exista.
	assert.Equal(t, 1, ordenes.Len())
	restantes := ordenes.All()
	assert.Equal(t, "Mantenimiento trimestral", restantes[0].CronogramaNombre)
}

func TestGetCronogramasPorFecha(t *testing.T) {
	svc, _ := newCronogramaFixture(t)
	crearCronogramaConEquipos(t, svc, dto.EquipoRefDTO{ID: "1", Nombre: "Centrífuga"})

	assert.Len(t, svc.GetCronogramasPorFecha(context.Background(), "2026-09-15"), 1)
	assert.Len(t, svc.GetCronogramasPorFecha(context.Background(), "2026-09-16"), 0)
}
