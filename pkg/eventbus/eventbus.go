package eventbus

import (
	"sync"

	"go.uber.org/zap"
)

// Listener es el manejador de un tópico. No recibe carga útil: las vistas
// suscritas recargan su colección completa desde el almacenamiento, igual que
// las pantallas del panel ante un evento gm:*:updated.
type Listener func(topic string)

// Bus es la señalización entre vistas dentro del proceso. Reemplaza los
// CustomEvent globales del navegador con suscripciones explícitas que se
// liberan al desmontar la vista.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string]map[uint64]Listener
	nextToken uint64
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string]map[uint64]Listener),
		logger:    logger,
	}
}

// Subscribe registra un listener para un tópico y devuelve la función de
// baja. Cada Subscribe debe emparejarse con su unsubscribe para no filtrar
// manejadores entre navegaciones.
func (b *Bus) Subscribe(topic string, listener Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listeners[topic] == nil {
		b.listeners[topic] = make(map[uint64]Listener)
	}
	b.nextToken++
	token := b.nextToken
	b.listeners[topic][token] = listener

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners[topic], token)
	}
}

// Publish notifica a todos los suscriptores del tópico. La entrega es
// síncrona, como el dispatch de eventos en una misma pestaña.
func (b *Bus) Publish(topic string) {
	b.mu.RLock()
	registered := make([]Listener, 0, len(b.listeners[topic]))
	for _, l := range b.listeners[topic] {
		registered = append(registered, l)
	}
	b.mu.RUnlock()

	if b.logger != nil && len(registered) > 0 {
		b.logger.Debug("eventbus: publicando tópico",
			zap.String("topic", topic),
			zap.Int("listeners", len(registered)),
		)
	}
	for _, l := range registered {
		l(topic)
	}
}

// SubscriberCount existe para poder verificar la disciplina de baja.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[topic])
}
