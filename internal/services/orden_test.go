package services

import (
	"context"
	"strings"
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

func newOrdenFixture(t *testing.T, seed []entities.OrdenServicio) *OrdenService {
	t.Helper()
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	bus := eventbus.New(zap.NewNop())
	ordenes := store.NewCollection(kv, bus, zap.NewNop(), constants.KeyOrdenes, constants.TopicOrdenes, seed)
	return NewOrdenService(ordenes, zap.NewNop())
}

func TestOrdenesVistasPorEstado(t *testing.T) {
	svc := newOrdenFixture(t, []entities.OrdenServicio{
		{ID: 1, Numero: "ORD-000001", Equipo: "Centrífuga", Estado: constants.OrdenPendiente},
		{ID: 2, Numero: "ORD-000002", Equipo: "Balanza", Estado: constants.OrdenTerminada},
	})

	pendientes, _ := svc.GetOrdenesPendientes(context.Background(), "")
	terminadas, _ := svc.GetOrdenesTerminadas(context.Background(), "")
	require.Len(t, pendientes, 1)
	require.Len(t, terminadas, 1)
	assert.Equal(t, uint64(1), pendientes[0].ID)
	assert.Equal(t, uint64(2), terminadas[0].ID)
}

func TestTerminarOrdenLaMueveDeVista(t *testing.T) {
	svc := newOrdenFixture(t, []entities.OrdenServicio{
		{ID: 1, Numero: "ORD-000001", Estado: constants.OrdenPendiente},
	})

	_, err := svc.UpdateOrden(context.Background(), 1, dto.UpdateOrdenDTO{
		Estado:             null.StringFrom(constants.OrdenTerminada),
		TrabajosRealizados: null.StringFrom("Cambio de rodamientos"),
	})
	require.NoError(t, err)

	pendientes, _ := svc.GetOrdenesPendientes(context.Background(), "")
	terminadas, _ := svc.GetOrdenesTerminadas(context.Background(), "")
	assert.Len(t, pendientes, 0)
	require.Len(t, terminadas, 1)
	assert.Equal(t, "Cambio de rodamientos", terminadas[0].TrabajosRealizados)
}

func TestBuildPrintHTML(t *testing.T) {
	svc := newOrdenFixture(t, []entities.OrdenServicio{
		{ID: 1, Numero: "ORD-000001", Equipo: "Centrífuga", Estado: constants.OrdenPendiente, Responsable: "J. Pérez"},
		{ID: 2, Numero: "ORD-000002", Equipo: "Balanza", Estado: constants.OrdenPendiente},
	})

	html, err := svc.BuildPrintHTML(context.Background(), map[uint64]struct{}{1: {}, 2: {}})
	require.NoError(t, err)

	// Una página por orden y disparo de impresión al cargar.
	assert.Contains(t, html, "window.print()")
	assert.Contains(t, html, "ORD-000001")
	assert.Contains(t, html, "ORD-000002")
	assert.Equal(t, 2, strings.Count(html, "class=\"orden\""))
}

func TestBuildPrintHTMLEscapaValores(t *testing.T) {
	svc := newOrdenFixture(t, []entities.OrdenServicio{
		{ID: 1, Numero: "ORD-000001", Equipo: "<script>alert(1)</script>", Estado: constants.OrdenPendiente},
	})

	html, err := svc.BuildPrintHTML(context.Background(), map[uint64]struct{}{1: {}})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestBuildPrintHTMLSeleccionVacia(t *testing.T) {
	svc := newOrdenFixture(t, nil)

	_, err := svc.BuildPrintHTML(context.Background(), nil)
	assert.Error(t, err)
}

func TestDeleteOrdenes(t *testing.T) {
	svc := newOrdenFixture(t, []entities.OrdenServicio{
		{ID: 1, Numero: "ORD-000001", Estado: constants.OrdenPendiente},
	})

	removed, err := svc.DeleteOrdenes(context.Background(), map[uint64]struct{}{1: {}})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = svc.FindOrden(context.Background(), 1)
	assert.Error(t, err)
}
