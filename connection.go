package bindery

import "github.com/binderylabs/bindery/genidx"

// ConnectionHandle is a weak reference to a single connection of a signal.
// It is a small value and can be copied freely; all copies refer to the same
// connection and go inactive together once it is disconnected.
//
// The zero value refers to no connection and belongs to no signal.
type ConnectionHandle struct {
	impl *signalImpl
	id   genidx.Index
	ok   bool
}

// Disconnect removes the connection this handle refers to. The handle itself
// is reset afterwards, so IsActive is false and BelongsTo reports false for
// every signal, even if other copies of the handle still float around.
//
// Disconnecting an inactive handle does nothing. Disconnecting twice is a
// no-op.
func (h *ConnectionHandle) Disconnect() {
	if impl := h.checkedImpl(); impl != nil {
		impl.disconnect(*h)
	}
	h.impl = nil
	h.id = genidx.Index{}
	h.ok = false
}

// IsActive reports whether this handle still refers to a live connection.
func (h ConnectionHandle) IsActive() bool {
	return h.checkedImpl() != nil
}

// Block sets the blocked state of the connection and returns the previous
// state. A blocked connection's slot is skipped by emits until unblocked.
// Returns ErrOutOfRange if the connection is no longer active.
func (h ConnectionHandle) Block(blocked bool) (bool, error) {
	if impl := h.checkedImpl(); impl != nil {
		return impl.blockConnection(h.id, blocked)
	}
	return false, ErrOutOfRange
}

// IsBlocked reports whether the connection is currently blocked.
// Returns ErrOutOfRange if the connection is no longer active.
func (h ConnectionHandle) IsBlocked() (bool, error) {
	if impl := h.checkedImpl(); impl != nil {
		return impl.isConnectionBlocked(h.id)
	}
	return false, ErrOutOfRange
}

// BelongsTo reports whether this handle refers to a connection within the
// given signal.
func (h ConnectionHandle) BelongsTo(s SignalAware) bool {
	return h.impl != nil && s != nil && h.impl == s.signalImplPtr()
}

// Equals reports whether two handles refer to the same connection. Two
// handles that refer to nothing at all are considered equal.
func (h ConnectionHandle) Equals(other ConnectionHandle) bool {
	if h.impl != nil && other.impl != nil {
		return h.impl == other.impl && h.ok == other.ok && h.id == other.id
	}
	return h.impl == nil && other.impl == nil && !h.ok && !other.ok
}

// checkedImpl returns the signal impl iff the handle still refers to a live
// connection within it.
func (h ConnectionHandle) checkedImpl() *signalImpl {
	if h.impl != nil && h.ok && h.impl.isConnectionActive(h.id) {
		return h.impl
	}
	return nil
}

// ScopedConnection owns a single ConnectionHandle and disconnects it when the
// scope ends (via defer Close) or when another handle is assigned over it.
//
// The zero value owns nothing. ScopedConnections are meant to be held in one
// place, not copied.
type ScopedConnection struct {
	handle ConnectionHandle
}

// NewScopedConnection takes ownership of h.
func NewScopedConnection(h ConnectionHandle) *ScopedConnection {
	return &ScopedConnection{handle: h}
}

// Assign disconnects the currently owned handle, then takes ownership of h.
func (c *ScopedConnection) Assign(h ConnectionHandle) {
	c.handle.Disconnect()
	c.handle = h
}

// Handle returns the owned handle.
func (c *ScopedConnection) Handle() *ConnectionHandle {
	return &c.handle
}

// Close disconnects the owned handle. Use with defer to bound the connection
// to the enclosing scope.
func (c *ScopedConnection) Close() {
	c.handle.Disconnect()
}

// ConnectionBlocker blocks a connection for the duration of a scope and
// restores the previous blocked state on Release. Blockers nest: releasing a
// blocker built over an already blocked connection leaves it blocked.
type ConnectionBlocker struct {
	handle     ConnectionHandle
	wasBlocked bool
}

// NewConnectionBlocker blocks the connection h refers to and remembers its
// previous blocked state. Returns ErrOutOfRange if h is not active.
func NewConnectionBlocker(h ConnectionHandle) (*ConnectionBlocker, error) {
	wasBlocked, err := h.Block(true)
	if err != nil {
		return nil, err
	}
	return &ConnectionBlocker{handle: h, wasBlocked: wasBlocked}, nil
}

// Release returns the connection to the blocked state it had when the blocker
// was created. If the connection died in the meantime there is nothing left
// to restore.
func (b *ConnectionBlocker) Release() {
	_, _ = b.handle.Block(b.wasBlocked)
}
