package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitInRegistrationOrder(t *testing.T) {
	var s Signal[int]
	var got []string
	s.Connect(func(v int) { got = append(got, "a") })
	s.Connect(func(v int) { got = append(got, "b") })
	s.Emit(1)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDisconnectIsIdempotent(t *testing.T) {
	var s Signal[string]
	calls := 0
	c := s.Connect(func(string) { calls++ })
	c.Disconnect()
	c.Disconnect()
	s.Emit("x")
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, s.Len())
	assert.False(t, c.Connected())

	var nilConn *Connection
	nilConn.Disconnect()
}

func TestDisconnectDuringEmit(t *testing.T) {
	var s Signal[int]
	var second *Connection
	calls := 0
	s.Connect(func(int) { second.Disconnect() })
	second = s.Connect(func(int) { calls++ })
	s.Emit(0)
	s.Emit(0)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, s.Len())
}

func TestDisconnectAll(t *testing.T) {
	var s Signal[int]
	c := s.Connect(func(int) {})
	s.DisconnectAll()
	assert.False(t, c.Connected())
	c.Disconnect()
	assert.Equal(t, 0, s.Len())
}
