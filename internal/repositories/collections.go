package repositories

import (
	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/eventbus"
	"maintenance-system/pkg/kvstore"
	"maintenance-system/seeders"

	"go.uber.org/zap"
)

// Declaraciones por colección: clave de almacenamiento, tópico y semilla.
// Toda la mecánica (carga, persistencia, ids, vistas, notificación) vive en
// store.Collection; aquí solo se ata cada tipo de registro a su clave.

func NewEntidadCollection(kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger) *store.Collection[entities.Entidad] {
	return store.NewCollection(kv, bus, logger, constants.KeyEntidades, constants.TopicEntidades, seeders.Entidades())
}

func NewSedeCollection(kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger) *store.Collection[entities.Sede] {
	return store.NewCollection[entities.Sede](kv, bus, logger, constants.KeySedes, constants.TopicSedes, nil)
}

func NewProveedorCollection(kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger) *store.Collection[entities.Proveedor] {
	return store.NewCollection(kv, bus, logger, constants.KeyProveedores, constants.TopicProveedores, seeders.Proveedores())
}

func NewTipoEquipoCollection(kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger) *store.Collection[entities.TipoEquipo] {
	return store.NewCollection(kv, bus, logger, constants.KeyTiposEquipos, constants.TopicTiposEquipos, seeders.TiposEquipos())
}

func NewCronogramaCollection(kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger) *store.Collection[entities.Cronograma] {
	return store.NewCollection[entities.Cronograma](kv, bus, logger, constants.KeyCronogramas, constants.TopicCronogramas, nil)
}

func NewOrdenCollection(kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger) *store.Collection[entities.OrdenServicio] {
	return store.NewCollection[entities.OrdenServicio](kv, bus, logger, constants.KeyOrdenes, constants.TopicOrdenes, nil)
}

func NewSolicitudCollection(kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger) *store.Collection[entities.Solicitud] {
	return store.NewCollection(kv, bus, logger, constants.KeySolicitudes, constants.TopicSolicitudes, seeders.Solicitudes())
}

func NewInventarioCollection(kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger) *store.Collection[entities.InventarioItem] {
	return store.NewCollection(kv, bus, logger, constants.KeyInventarios, constants.TopicInventarios, seeders.Inventarios())
}
