// Package bindery provides signals, observable properties and property
// bindings.
//
// A signal broadcasts values to any number of connected slots. A property
// wraps a value and announces mutations through signals. A binding publishes
// the result of an expression graph over properties into an output property,
// either immediately on every change or batched through a BindingEvaluator.
//
// Signals, properties, nodes and bindings all belong to a single goroutine.
// The one cross-goroutine component is the ConnectionEvaluator, which carries
// deferred slot invocations between goroutines.
package bindery

import "github.com/binderylabs/bindery/genidx"

// SignalAware is satisfied by every signal arity variant. It lets
// ConnectionHandle.BelongsTo accept any of them.
type SignalAware interface {
	signalImplPtr() *signalImpl
}

// connection is one row in a signal's table. Exactly one of slot and
// slotReflective is set.
type connection struct {
	slot           func(args []any)
	slotReflective func(h ConnectionHandle, args []any)

	// evaluator is set for deferred connections, so a disconnect can drop
	// invocations that are still queued.
	evaluator *ConnectionEvaluator

	blocked bool

	// toDisconnect marks a connection whose disconnect was requested while
	// the signal was emitting. The row is erased once the outermost emit
	// finishes.
	toDisconnect bool
}

// signalImpl carries the state shared between a signal and its outstanding
// connection handles. The typed signal variants are thin wrappers around it
// that box the emitted arguments, so the emission protocol lives here once
// instead of once per arity.
type signalImpl struct {
	connections genidx.Array[connection]

	emissionDepth          int
	disconnectedDuringEmit bool
}

func (s *signalImpl) connect(slot func(args []any)) genidx.Index {
	return s.connections.Insert(connection{slot: slot})
}

func (s *signalImpl) connectReflective(slot func(h ConnectionHandle, args []any)) genidx.Index {
	return s.connections.Insert(connection{slotReflective: slot})
}

func (s *signalImpl) connectDeferred(evaluator *ConnectionEvaluator, slot func(args []any)) genidx.Index {
	deferred := func(h ConnectionHandle, args []any) {
		evaluator.enqueue(h, func() { slot(args) })
	}
	return s.connections.Insert(connection{slotReflective: deferred, evaluator: evaluator})
}

// disconnect removes the connection the handle refers to. While the signal is
// emitting the row is only marked, the erase happens when the outermost emit
// unwinds. Disconnecting an already dead handle does nothing.
func (s *signalImpl) disconnect(h ConnectionHandle) {
	if !h.ok {
		return
	}
	con := s.connections.Get(h.id)
	if con == nil {
		return
	}

	if s.emissionDepth > 0 {
		con.toDisconnect = true
		s.disconnectedDuringEmit = true
		return
	}

	if con.evaluator != nil {
		con.evaluator.dequeue(h)
	}
	s.connections.Erase(h.id)
}

func (s *signalImpl) disconnectAll() {
	numEntries := s.connections.EntriesSize()
	for i := uint32(0); i < numEntries; i++ {
		if id, ok := s.connections.IndexAtEntry(i); ok {
			s.disconnect(ConnectionHandle{impl: s, id: id, ok: true})
		}
	}
}

func (s *signalImpl) blockConnection(id genidx.Index, blocked bool) (bool, error) {
	con := s.connections.Get(id)
	if con == nil {
		return false, ErrOutOfRange
	}
	wasBlocked := con.blocked
	con.blocked = blocked
	return wasBlocked, nil
}

func (s *signalImpl) isConnectionBlocked(id genidx.Index) (bool, error) {
	con := s.connections.Get(id)
	if con == nil {
		return false, ErrOutOfRange
	}
	return con.blocked, nil
}

func (s *signalImpl) isConnectionActive(id genidx.Index) bool {
	return s.connections.Get(id) != nil
}

// emit invokes every connected, unblocked slot in table position order, which
// differs from connection order once vacated positions have been reused.
//
// The entry count is snapshotted up front, so slots appended while the emit
// runs are not invoked by it; a connect that reuses a vacated position the
// loop has not reached yet is invoked. Disconnects requested by slots (including
// self-disconnects) are deferred; the sweep below runs once the outermost
// emit unwinds, and runs from a defer so a panicking slot cannot leave
// marked rows behind.
func (s *signalImpl) emit(args []any) {
	s.emissionDepth++
	defer func() {
		s.emissionDepth--
		if s.emissionDepth == 0 && s.disconnectedDuringEmit {
			s.disconnectedDuringEmit = false
			s.sweepDisconnected()
		}
	}()

	numEntries := s.connections.EntriesSize()
	for i := uint32(0); i < numEntries; i++ {
		id, ok := s.connections.IndexAtEntry(i)
		if !ok {
			continue
		}
		con := s.connections.Get(id)
		if con == nil || con.blocked || con.toDisconnect {
			continue
		}

		// The callable is copied onto the stack before the call, the row it
		// came from may be marked for disconnect (or the table reallocated by
		// a connect) while the slot runs.
		if reflective := con.slotReflective; reflective != nil {
			reflective(ConnectionHandle{impl: s, id: id, ok: true}, args)
		} else if slot := con.slot; slot != nil {
			slot(args)
		}
	}
}

func (s *signalImpl) sweepDisconnected() {
	numEntries := s.connections.EntriesSize()
	for i := uint32(0); i < numEntries; i++ {
		id, ok := s.connections.IndexAtEntry(i)
		if !ok {
			continue
		}
		if con := s.connections.Get(id); con != nil && con.toDisconnect {
			s.disconnect(ConnectionHandle{impl: s, id: id, ok: true})
		}
	}
}
