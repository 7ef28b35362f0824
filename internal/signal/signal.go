// Package signal provides synchronous observer lists with cancellable connections.
//
// Dispatch is single-threaded: Emit calls every connected handler in registration order
// on the caller's goroutine. Handlers may disconnect themselves or others while an
// Emit is in progress; a handler disconnected mid-emit is not called afterwards.
package signal

// Signal is a list of handlers for values of type T. The zero value is ready to use.
type Signal[T any] struct {
	conns []*Connection
}

// Connection is the handle returned by Connect. Disconnect is idempotent.
type Connection struct {
	fn        any
	connected bool
	owner     interface{ remove(*Connection) }
}

// Connect registers fn and returns its cancellation handle.
func (s *Signal[T]) Connect(fn func(T)) *Connection {
	c := &Connection{fn: fn, connected: true, owner: s}
	s.conns = append(s.conns, c)
	return c
}

// Emit calls each connected handler with v.
func (s *Signal[T]) Emit(v T) {
	if len(s.conns) == 0 {
		return
	}
	snapshot := make([]*Connection, len(s.conns))
	copy(snapshot, s.conns)
	for _, c := range snapshot {
		if !c.connected {
			continue
		}
		c.fn.(func(T))(v)
	}
}

// Len returns the number of live connections.
func (s *Signal[T]) Len() int {
	return len(s.conns)
}

// DisconnectAll drops every handler.
func (s *Signal[T]) DisconnectAll() {
	for _, c := range s.conns {
		c.connected = false
		c.owner = nil
	}
	s.conns = nil
}

func (s *Signal[T]) remove(c *Connection) {
	for i, other := range s.conns {
		if other == c {
			s.conns = append(s.conns[:i:i], s.conns[i+1:]...)
			return
		}
	}
}

// Connected reports whether the handler is still registered.
func (c *Connection) Connected() bool {
	return c != nil && c.connected
}

// Disconnect removes the handler. Calling it again, or on a nil connection, does nothing.
func (c *Connection) Disconnect() {
	if c == nil || !c.connected {
		return
	}
	c.connected = false
	if c.owner != nil {
		c.owner.remove(c)
		c.owner = nil
	}
}
