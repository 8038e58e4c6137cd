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
	"maintenance-system/seeders"
)

func newSolicitudFixture(t *testing.T) (*SolicitudService, *store.Collection[entities.OrdenServicio]) {
	t.Helper()
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	bus := eventbus.New(zap.NewNop())

	solicitudes := store.NewCollection[entities.Solicitud](kv, bus, zap.NewNop(), constants.KeySolicitudes, constants.TopicSolicitudes, nil)
	ordenes := store.NewCollection[entities.OrdenServicio](kv, bus, zap.NewNop(), constants.KeyOrdenes, constants.TopicOrdenes, nil)
	return NewSolicitudService(solicitudes, ordenes, zap.NewNop()), ordenes
}

func TestCreateSolicitudCopiaNombreDeEquipo(t *testing.T) {
	svc, _ := newSolicitudFixture(t)
	catalogo := seeders.EquiposCatalogo()

	solicitud, err := svc.CreateSolicitud(context.Background(), dto.CreateSolicitudDTO{
		Numero:   "REQ-100",
		EquipoID: catalogo[0].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, catalogo[0].Nombre, solicitud.EquipoNombre)
	assert.Equal(t, constants.SolicitudAbierta, solicitud.Estado)
	assert.Equal(t, "0", solicitud.Ordenes)
}

func TestCreateSolicitudEquipoDesconocido(t *testing.T) {
	svc, _ := newSolicitudFixture(t)

	solicitud, err := svc.CreateSolicitud(context.Background(), dto.CreateSolicitudDTO{
		Numero:   "REQ-101",
		EquipoID: "no-existe",
	})
	require.NoError(t, err)
	assert.Equal(t, "", solicitud.EquipoNombre)
}

func TestGenerateOrdenDesdeSolicitud(t *testing.T) {
	svc, ordenes := newSolicitudFixture(t)
	catalogo := seeders.EquiposCatalogo()

	solicitud, err := svc.CreateSolicitud(context.Background(), dto.CreateSolicitudDTO{
		Numero:      "REQ-100",
		Prioridad:   "Alta",
		Descripcion: "No enciende",
		EquipoID:    catalogo[0].ID,
	})
	require.NoError(t, err)

	orden, err := svc.GenerateOrden(context.Background(), solicitud.ID, dto.GenerateOrderFromSolicitudDTO{
		Responsable: "J. Pérez",
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("ORD-%04d", orden.ID), orden.Numero)
	assert.Equal(t, catalogo[0].Nombre, orden.Equipo)
	assert.Equal(t, "No enciende", orden.Descripcion)
	assert.Equal(t, "Alta", orden.Prioridad)
	assert.Equal(t, constants.OrdenPendiente, orden.Estado)
	assert.Equal(t, 1, ordenes.Len())

	// El contador de órdenes de la solicitud se incrementa.
	actual, err := svc.FindSolicitud(context.Background(), solicitud.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", actual.Ordenes)

	_, err = svc.GenerateOrden(context.Background(), solicitud.ID, dto.GenerateOrderFromSolicitudDTO{})
	require.NoError(t, err)
	actual, _ = svc.FindSolicitud(context.Background(), solicitud.ID)
	assert.Equal(t, "2", actual.Ordenes)
}

func TestGenerateOrdenSolicitudInexistente(t *testing.T) {
	svc, _ := newSolicitudFixture(t)

	_, err := svc.GenerateOrden(context.Background(), 404, dto.GenerateOrderFromSolicitudDTO{})
	assert.Error(t, err)
}

func TestDeleteSolicitudes(t *testing.T) {
	svc, _ := newSolicitudFixture(t)

	solicitud, err := svc.CreateSolicitud(context.Background(), dto.CreateSolicitudDTO{Numero: "REQ-100"})
	require.NoError(t, err)

	removed, err := svc.DeleteSolicitudes(context.Background(), map[uint64]struct{}{solicitud.ID: {}})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	list, total := svc.GetSolicitudes(context.Background(), "", "")
	assert.Len(t, list, 0)
	assert.Equal(t, uint64(0), total)
}

func TestGetSolicitudesPorEstado(t *testing.T) {
	svc, _ := newSolicitudFixture(t)

	abierta, err := svc.CreateSolicitud(context.Background(), dto.CreateSolicitudDTO{Numero: "REQ-100"})
	require.NoError(t, err)
	_, err = svc.CreateSolicitud(context.Background(), dto.CreateSolicitudDTO{Numero: "REQ-101", Estado: "Cerrada"})
	require.NoError(t, err)

	list, total := svc.GetSolicitudes(context.Background(), "", constants.SolicitudAbierta)
	assert.Equal(t, uint64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, abierta.ID, list[0].ID)

	todas, _ := svc.GetSolicitudes(context.Background(), "", "")
	assert.Len(t, todas, 2)
}

func TestIncrementCounter(t *testing.T) {
	assert.Equal(t, "1", incrementCounter("0"))
	assert.Equal(t, "3", incrementCounter("2"))
	assert.Equal(t, "1", incrementCounter(""))
	assert.Equal(t, "1", incrementCounter("basura"))
}
