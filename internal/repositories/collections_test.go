package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/eventbus"
	"maintenance-system/pkg/kvstore"
)

func newDeps(t *testing.T) (kvstore.Store, *eventbus.Bus, *zap.Logger) {
	t.Helper()
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return kv, eventbus.New(zap.NewNop()), zap.NewNop()
}

func TestColeccionesConSemillaArrancanPobladas(t *testing.T) {
	kv, bus, logger := newDeps(t)

	assert.NotZero(t, NewEntidadCollection(kv, bus, logger).Len())
	assert.NotZero(t, NewProveedorCollection(kv, bus, logger).Len())
	assert.NotZero(t, NewTipoEquipoCollection(kv, bus, logger).Len())
	assert.NotZero(t, NewSolicitudCollection(kv, bus, logger).Len())
	assert.NotZero(t, NewInventarioCollection(kv, bus, logger).Len())
}

// Las colecciones sin semilla arrancan vacías y asignan ids desde 1.
func TestColeccionesSinSemillaArrancanVacias(t *testing.T) {
	kv, bus, logger := newDeps(t)

	sedes := NewSedeCollection(kv, bus, logger)
	cronogramas := NewCronogramaCollection(kv, bus, logger)
	ordenes := NewOrdenCollection(kv, bus, logger)

	assert.Zero(t, sedes.Len())
	assert.Zero(t, cronogramas.Len())
	assert.Zero(t, ordenes.Len())

	sede := sedes.Add(entities.Sede{Sede: "Sede Norte"})
	assert.Equal(t, uint64(1), sede.ID)

	orden := ordenes.Add(entities.OrdenServicio{Numero: "ORD-000001"})
	assert.Equal(t, uint64(1), orden.ID)
}
