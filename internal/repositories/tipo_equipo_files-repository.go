package repositories

import (
	"strconv"
	"sync"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/eventbus"
	"maintenance-system/pkg/kvstore"

	"go.uber.org/zap"
)

// TipoEquipoFilesRepository guarda las sublistas adjuntas de los tipos de
// equipo (imágenes, documentos, parámetros, accesorios, instructivos) en su
// propia clave, como un mapa indexado por id de tipo. No es una colección
// con ids secuenciales: los ids de los elementos son sintéticos, basados en
// la marca de tiempo.
type TipoEquipoFilesRepository struct {
	kv     kvstore.Store
	bus    *eventbus.Bus
	logger *zap.Logger

	mu     sync.Mutex
	loaded bool
	byTipo map[uint64]entities.TipoEquipoArchivos
}

func NewTipoEquipoFilesRepository(kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger) *TipoEquipoFilesRepository {
	return &TipoEquipoFilesRepository{
		kv:     kv,
		bus:    bus,
		logger: logger,
		byTipo: make(map[uint64]entities.TipoEquipoArchivos),
	}
}

func (r *TipoEquipoFilesRepository) ensureLoaded() {
	if r.loaded {
		return
	}
	r.loaded = true

	stored := make(map[uint64]entities.TipoEquipoArchivos)
	if err := r.kv.Load(constants.KeyTiposEquiposFiles, &stored); err != nil {
		if err != kvstore.ErrNotFound {
			r.logger.Warn("archivos de tipos de equipo ilegibles, se parte de vacío", zap.Error(err))
		}
		return
	}
	r.byTipo = stored
}

func (r *TipoEquipoFilesRepository) persist() {
	if err := r.kv.Save(constants.KeyTiposEquiposFiles, r.byTipo); err != nil {
		r.logger.Warn("no se pudieron persistir los archivos de tipos de equipo", zap.Error(err))
	}
}

// Get devuelve las sublistas del tipo; un tipo sin adjuntos devuelve el
// valor cero, nunca un error.
func (r *TipoEquipoFilesRepository) Get(tipoID uint64) entities.TipoEquipoArchivos {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()
	return r.byTipo[tipoID]
}

// Mutate aplica el cambio sobre las sublistas del tipo, persiste y notifica.
func (r *TipoEquipoFilesRepository) Mutate(tipoID uint64, change func(entities.TipoEquipoArchivos) entities.TipoEquipoArchivos) entities.TipoEquipoArchivos {
	r.mu.Lock()
	r.ensureLoaded()
	updated := change(r.byTipo[tipoID])
	r.byTipo[tipoID] = updated
	r.persist()
	r.mu.Unlock()

	r.bus.Publish(constants.TopicTiposEquipos)
	return updated
}

// Remove descarta todas las sublistas de un tipo (al eliminar el tipo).
func (r *TipoEquipoFilesRepository) Remove(tipoID uint64) {
	r.mu.Lock()
	r.ensureLoaded()
	delete(r.byTipo, tipoID)
	r.persist()
	r.mu.Unlock()

	r.bus.Publish(constants.TopicTiposEquipos)
}

// SyntheticID genera un id de elemento basado en la marca de tiempo, como
// los Date.now() del panel original.
func SyntheticID(unixMilli int64) string {
	return strconv.FormatInt(unixMilli, 10)
}
