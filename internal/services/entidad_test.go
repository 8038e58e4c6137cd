package services

import (
	"context"
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

func newEntidadFixture(t *testing.T) *EntidadService {
	t.Helper()
	kv, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	bus := eventbus.New(zap.NewNop())
	entidades := store.NewCollection[entities.Entidad](kv, bus, zap.NewNop(), constants.KeyEntidades, constants.TopicEntidades, nil)
	return NewEntidadService(entidades, zap.NewNop())
}

func TestCreateEntidadConDocumentos(t *testing.T) {
	svc := newEntidadFixture(t)

	entidad, err := svc.CreateEntidad(context.Background(), dto.CreateEntidadDTO{
		Nombre: "Clínica Central",
		NIT:    "900100200",
		Email:  "contacto@clinica.com",
		Documentos: []dto.DocumentoUploadDTO{
			{Nombre: "rut.pdf", Tipo: "application/pdf", Tamano: 1024, Contenido: "data:application/pdf;base64,AAAA"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, constants.EstadoActivo, entidad.Estado)
	assert.Equal(t, constants.TipoInterno, entidad.Tipo)
	require.Len(t, entidad.Documentos, 1)
	assert.NotEmpty(t, entidad.Documentos[0].ID)
	assert.Equal(t, "rut.pdf", entidad.Documentos[0].Nombre)
}

func TestUpdateEntidadAgregaDocumentosSinReemplazar(t *testing.T) {
	svc := newEntidadFixture(t)

	entidad, err := svc.CreateEntidad(context.Background(), dto.CreateEntidadDTO{
		Nombre: "Clínica Central",
		NIT:    "900100200",
		Email:  "contacto@clinica.com",
		Documentos: []dto.DocumentoUploadDTO{
			{Nombre: "rut.pdf", Contenido: "data:application/pdf;base64,AAAA"},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEntidad(context.Background(), entidad.ID, dto.UpdateEntidadDTO{
		Documentos: []dto.DocumentoUploadDTO{
			{Nombre: "camara.pdf", Contenido: "data:application/pdf;base64,BBBB"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Documentos, 2)
}

func TestDeleteDocumento(t *testing.T) {
	svc := newEntidadFixture(t)

	entidad, err := svc.CreateEntidad(context.Background(), dto.CreateEntidadDTO{
		Nombre: "Clínica Central",
		NIT:    "900100200",
		Email:  "contacto@clinica.com",
		Documentos: []dto.DocumentoUploadDTO{
			{Nombre: "rut.pdf", Contenido: "data:application/pdf;base64,AAAA"},
		},
	})
	require.NoError(t, err)

	updated, err := svc.DeleteDocumento(context.Background(), entidad.ID, entidad.Documentos[0].ID)
	require.NoError(t, err)
	assert.Len(t, updated.Documentos, 0)

	_, err = svc.DeleteDocumento(context.Background(), entidad.ID, "no-existe")
	assert.Error(t, err)
}

func TestDeleteEntidadesEsBajaLogica(t *testing.T) {
	svc := newEntidadFixture(t)

	entidad, err := svc.CreateEntidad(context.Background(), dto.CreateEntidadDTO{
		Nombre: "Clínica Central",
		NIT:    "900100200",
		Email:  "contacto@clinica.com",
	})
	require.NoError(t, err)

	_, err = svc.DeleteEntidades(context.Background(), map[uint64]struct{}{})
	assert.Error(t, err)

	changed, err := svc.DeleteEntidades(context.Background(), map[uint64]struct{}{entidad.ID: {}})
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	activas, _ := svc.GetEntidadesActivas(context.Background(), "")
	inactivas, _ := svc.GetEntidadesInactivas(context.Background(), "")
	assert.Len(t, activas, 0)
	require.Len(t, inactivas, 1)

	// El registro sigue íntegro, solo cambió el estado.
	assert.Equal(t, "900100200", inactivas[0].NIT)
}

func TestBusquedaDeEntidades(t *testing.T) {
	svc := newEntidadFixture(t)

	_, err := svc.CreateEntidad(context.Background(), dto.CreateEntidadDTO{
		Nombre: "Clínica Central", NIT: "900100200", Email: "contacto@clinica.com",
	})
	require.NoError(t, err)
	_, err = svc.CreateEntidad(context.Background(), dto.CreateEntidadDTO{
		Nombre: "Hospital Sur", NIT: "800300400", Email: "info@hsur.com",
	})
	require.NoError(t, err)

	list, total := svc.GetEntidadesActivas(context.Background(), "clínica")
	assert.Equal(t, uint64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Clínica Central", list[0].Nombre)

	// También por NIT y por correo.
	list, _ = svc.GetEntidadesActivas(context.Background(), "800300")
	assert.Len(t, list, 1)
	list, _ = svc.GetEntidadesActivas(context.Background(), "info@hsur")
	assert.Len(t, list, 1)
}
