package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
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

func newSedeFixture(t *testing.T) (*SedeService, *store.Collection[entities.Entidad]) {
	t.Helper()
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	bus := eventbus.New(zap.NewNop())

	entidades := store.NewCollection(kv, bus, zap.NewNop(), constants.KeyEntidades, constants.TopicEntidades, []entities.Entidad{
		{ID: 5, Nombre: "Clínica Central", NIT: "900100200", Tipo: constants.TipoInterno, Estado: constants.EstadoActivo},
	})
	sedes := store.NewCollection[entities.Sede](kv, bus, zap.NewNop(), constants.KeySedes, constants.TopicSedes, nil)
	return NewSedeService(sedes, entidades, zap.NewNop()), entidades
}

func TestCreateSedeCopiaNombreDeEntidad(t *testing.T) {
	svc, _ := newSedeFixture(t)

	sede, err := svc.CreateSede(context.Background(), dto.CreateSedeDTO{
		Sede:      "Sede Norte",
		EntidadID: 5,
		Direccion: "Calle 10 #4-21",
	})
	require.NoError(t, err)
	assert.Equal(t, "Clínica Central", sede.EntidadNombre)
	assert.Equal(t, constants.EstadoActivo, sede.Estado)
}

func TestCreateSedeEntidadInexistenteQuedaVacia(t *testing.T) {
	svc, _ := newSedeFixture(t)

	sede, err := svc.CreateSede(context.Background(), dto.CreateSedeDTO{
		Sede:      "Sede Huérfana",
		EntidadID: 999,
		Direccion: "Carrera 1",
	})
	require.NoError(t, err)
	assert.Equal(t, "", sede.EntidadNombre)
}

func TestRenombrarEntidadNoRefrescaSedes(t *testing.T) {
	svc, entidades := newSedeFixture(t)

	sede, err := svc.CreateSede(context.Background(), dto.CreateSedeDTO{
		Sede:      "Sede Norte",
		EntidadID: 5,
		Direccion: "Calle 10",
	})
	require.NoError(t, err)

	entidades.Update(5, func(e entities.Entidad) entities.Entidad {
		e.Nombre = "Clínica Renombrada"
		return e
	})

	// La copia es por valor al guardar; el renombre posterior no se propaga.
	actual, err := svc.FindSede(context.Background(), sede.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clínica Central", actual.EntidadNombre)
}

func TestUpdateSedeReasignaEntidadYRecopiaNombre(t *testing.T) {
	svc, entidades := newSedeFixture(t)
	entidades.Add(entities.Entidad{Nombre: "Hospital Sur", NIT: "800", Estado: constants.EstadoActivo})

	sede, err := svc.CreateSede(context.Background(), dto.CreateSedeDTO{
		Sede:      "Sede Norte",
		EntidadID: 5,
		Direccion: "Calle 10",
	})
	require.NoError(t, err)

	otra := entidades.View("Hospital Sur", nil)
	require.Len(t, otra, 1)

	updated, err := svc.UpdateSede(context.Background(), sede.ID, dto.UpdateSedeDTO{
		EntidadID: null.Uint64From(otra[0].ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hospital Sur", updated.EntidadNombre)
}

func TestDeleteYReactivateSedes(t *testing.T) {
	svc, _ := newSedeFixture(t)

	sede, err := svc.CreateSede(context.Background(), dto.CreateSedeDTO{
		Sede:      "Sede Norte",
		EntidadID: 5,
		Direccion: "Calle 10",
	})
	require.NoError(t, err)

	_, err = svc.DeleteSedes(context.Background(), nil)
	assert.Error(t, err)

	changed, err := svc.DeleteSedes(context.Background(), map[uint64]struct{}{sede.ID: {}})
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	activas, _ := svc.GetSedesActivas(context.Background(), "")
	inactivas, _ := svc.GetSedesInactivas(context.Background(), "")
	assert.Len(t, activas, 0)
	assert.Len(t, inactivas, 1)

	changed, err = svc.ReactivateSedes(context.Background(), map[uint64]struct{}{sede.ID: {}})
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	activas, _ = svc.GetSedesActivas(context.Background(), "")
	assert.Len(t, activas, 1)
}
