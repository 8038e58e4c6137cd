package store

import (
	"strings"
	"sync"

	"maintenance-system/pkg/eventbus"
	"maintenance-system/pkg/kvstore"

	"go.uber.org/zap"
)

// Record es el contrato mínimo de un registro de colección. Los métodos
// With* devuelven una copia modificada; los registros se tratan siempre por
// valor.
type Record[T any] interface {
	RecordID() uint64
	WithID(id uint64) T
	WithEstado(estado string) T
	SearchText() []string
}

// Collection es el almacén genérico de una colección: un arreglo en memoria
// cargado desde el adaptador clave-valor, persistido tras cada mutación y
// con publicación del tópico para que las vistas hermanas recarguen. El
// panel original repetía este patrón página por página; aquí vive una sola
// vez, parametrizado por tipo de registro, clave y semilla.
type Collection[T Record[T]] struct {
	key    string
	topic  string
	seed   []T
	kv     kvstore.Store
	bus    *eventbus.Bus
	logger *zap.Logger

	mu     sync.Mutex
	loaded bool
	items  []T
}

func NewCollection[T Record[T]](kv kvstore.Store, bus *eventbus.Bus, logger *zap.Logger, key, topic string, seed []T) *Collection[T] {
	return &Collection[T]{
		key:    key,
		topic:  topic,
		seed:   seed,
		kv:     kv,
		bus:    bus,
		logger: logger,
	}
}

// ensureLoaded carga la colección una sola vez. Datos ausentes o corruptos
// degradan en silencio a la semilla; no existe estado de error.
func (c *Collection[T]) ensureLoaded() {
	if c.loaded {
		return
	}
	c.loaded = true

	var stored []T
	if err := c.kv.Load(c.key, &stored); err != nil {
		if err != kvstore.ErrNotFound {
			c.logger.Warn("almacenamiento ilegible, se usa la semilla",
				zap.String("key", c.key),
				zap.Error(err),
			)
		}
		c.items = append([]T(nil), c.seed...)
		return
	}
	c.items = stored
}

// persist guarda la colección; los fallos de escritura se registran y se
// ignoran (sin reintento, sin aviso al usuario).
func (c *Collection[T]) persist() {
	if err := c.kv.Save(c.key, c.items); err != nil {
		c.logger.Warn("no se pudo persistir la colección",
			zap.String("key", c.key),
			zap.Error(err),
		)
	}
}

func (c *Collection[T]) publish() {
	if c.bus != nil {
		c.bus.Publish(c.topic)
	}
}

// Reload descarta la copia en memoria y vuelve a leer del almacenamiento.
// Es la reacción de una vista al tópico de su colección: recarga completa,
// nunca parche incremental.
func (c *Collection[T]) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.ensureLoaded()
}

// SubscribeReload suscribe la colección a su propio tópico y devuelve la
// función de baja. Cada vista montada debe emparejar la suscripción con su
// baja.
func (c *Collection[T]) SubscribeReload() (unsubscribe func()) {
	return c.bus.Subscribe(c.topic, func(string) { c.Reload() })
}

// Topic devuelve el tópico de la colección en el bus.
func (c *Collection[T]) Topic() string { return c.topic }

// All devuelve una copia del arreglo completo, en el orden almacenado.
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Find(id uint64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded()
	for _, it := range c.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// nextID calcula max(ids ∪ {0}) + 1. No es seguro ante escritores
// concurrentes de varios procesos; el sistema asume un solo escritor a la
// vez, igual que el panel original asumía una sola pestaña.
func (c *Collection[T]) nextID() uint64 {
	var max uint64
	for _, it := range c.items {
		if it.RecordID() > max {
			max = it.RecordID()
		}
	}
	return max + 1
}

// Add asigna el siguiente id secuencial y agrega el registro al final.
// (El panel original insertaba al inicio en algunas páginas y al final en
// otras; aquí se unifica al final.)
func (c *Collection[T]) Add(item T) T {
	return c.AddWith(func(id uint64) T { return item.WithID(id) })
}

// AddWith construye el registro a partir del id asignado, para los casos en
// que un campo deriva del id (p. ej. el número de orden).
func (c *Collection[T]) AddWith(build func(id uint64) T) T {
	c.mu.Lock()
	c.ensureLoaded()
	created := build(c.nextID())
	c.items = append(c.items, created)
	c.persist()
	c.mu.Unlock()

	c.publish()
	return created
}

// Update aplica merge sobre el registro con ese id. Si no existe, la
// colección queda igual y no se señala error.
func (c *Collection[T]) Update(id uint64, merge func(T) T) (T, bool) {
	var (
		updated T
		found   bool
	)

	c.mu.Lock()
	c.ensureLoaded()
	for i, it := range c.items {
		if it.RecordID() == id {
			updated = merge(it)
			c.items[i] = updated
			found = true
			break
		}
	}
	if found {
		c.persist()
	}
	c.mu.Unlock()

	if found {
		c.publish()
	}
	return updated, found
}

// SoftDelete marca los registros seleccionados con el estado inactivo en
// lugar de quitarlos del arreglo. Devuelve cuántos cambiaron.
func (c *Collection[T]) SoftDelete(ids map[uint64]struct{}, inactivo string) int {
	changed := 0

	c.mu.Lock()
	c.ensureLoaded()
	for i, it := range c.items {
		if _, ok := ids[it.RecordID()]; ok {
			c.items[i] = it.WithEstado(inactivo)
			changed++
		}
	}
	if changed > 0 {
		c.persist()
	}
	c.mu.Unlock()

	if changed > 0 {
		c.publish()
	}
	return changed
}

// HardDelete elimina los registros seleccionados del arreglo. La
// confirmación previa es responsabilidad del llamador, no del almacén.
func (c *Collection[T]) HardDelete(ids map[uint64]struct{}) int {
	removed := 0

	c.mu.Lock()
	c.ensureLoaded()
	kept := c.items[:0]
	for _, it := range c.items {
		if _, ok := ids[it.RecordID()]; ok {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.items = kept
	if removed > 0 {
		c.persist()
	}
	c.mu.Unlock()

	if removed > 0 {
		c.publish()
	}
	return removed
}

// View es la vista derivada: filtra por predicado y por búsqueda de texto
// libre. Nunca muta la colección almacenada.
func (c *Collection[T]) View(search string, pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded()

	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if pred != nil && !pred(it) {
			continue
		}
		if !matches(it, search) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Len devuelve el tamaño del arreglo almacenado (sin filtrar).
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded()
	return len(c.items)
}

// matches hace contención de subcadena sin distinguir mayúsculas sobre los
// campos de búsqueda designados del registro.
func matches[T Record[T]](item T, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range item.SearchText() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
