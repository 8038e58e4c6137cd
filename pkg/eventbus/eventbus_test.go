package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBusEntregaSincrona(t *testing.T) {
	bus := New(zap.NewNop())

	var recibidos []string
	bus.Subscribe("gm:entidades:updated", func(topic string) {
		recibidos = append(recibidos, topic)
	})

	bus.Publish("gm:entidades:updated")
	assert.Equal(t, []string{"gm:entidades:updated"}, recibidos)
}

func TestBusNoCruzaTopicos(t *testing.T) {
	bus := New(zap.NewNop())

	llamado := false
	bus.Subscribe("gm:sedes:updated", func(string) { llamado = true })

	bus.Publish("gm:entidades:updated")
	assert.False(t, llamado)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := New(zap.NewNop())

	llamadas := 0
	unsubscribe := bus.Subscribe("t", func(string) { llamadas++ })

	bus.Publish("t")
	unsubscribe()
	bus.Publish("t")

	assert.Equal(t, 1, llamadas)
	assert.Equal(t, 0, bus.SubscriberCount("t"))
}

func TestBusVariosSuscriptores(t *testing.T) {
	bus := New(zap.NewNop())

	llamadas := 0
	bus.Subscribe("t", func(string) { llamadas++ })
	bus.Subscribe("t", func(string) { llamadas++ })
	assert.Equal(t, 2, bus.SubscriberCount("t"))

	bus.Publish("t")
	assert.Equal(t, 2, llamadas)
}

func TestBusPublicarSinSuscriptores(t *testing.T) {
	bus := New(zap.NewNop())
	assert.NotPanics(t, func() { bus.Publish("vacio") })
}
