package bindery

// PropertyUpdater drives the value of a property from the outside, making the
// property read-only for everyone else. The property registers an update
// function on attachment; every value the updater pushes through it reaches
// the property's privileged update path, which keeps the equality
// short-circuit and the change signals.
type PropertyUpdater[T any] interface {
	// Get returns the updater's current value. The property adopts it on
	// attachment.
	Get() T

	// SetUpdateFunction installs the path the updater pushes new values
	// through. It is called with nil when the updater is detached.
	SetUpdateFunction(fn func(T))
}

// Property wraps a value and announces every mutation through signals:
// ValueAboutToChange fires before a new value is stored, ValueChanged after.
// Writes of an equal value are dropped silently.
//
// A property with an updater attached (see SetUpdater, NewBoundProperty) is
// read-only: SetValue returns ErrReadOnlyProperty and only the updater's
// pushes mutate the value.
type Property[T any] struct {
	value T
	eq    func(a, b T) bool

	valueChanged       *Signal1[T]
	valueAboutToChange *Signal2[T, T]
	destroyed          *Signal0
	moved              *Signal1[*Property[T]]

	updater PropertyUpdater[T]
}

// NewProperty creates a property holding value, comparing values with ==.
func NewProperty[T comparable](value T) *Property[T] {
	return NewPropertyWithEquality(value, func(a, b T) bool { return a == b })
}

// NewPropertyWithEquality creates a property with a custom equality
// predicate. The predicate decides which writes are dropped, so it can
// implement one-way semantics, e.g. a property that only ever increases.
func NewPropertyWithEquality[T any](value T, eq func(a, b T) bool) *Property[T] {
	return &Property[T]{
		value:              value,
		eq:                 eq,
		valueChanged:       NewSignal1[T](),
		valueAboutToChange: NewSignal2[T, T](),
		destroyed:          NewSignal0(),
		moved:              NewSignal1[*Property[T]](),
	}
}

// NewPropertyWithUpdater creates a read-only property driven by updater,
// adopting the updater's current value.
func NewPropertyWithUpdater[T comparable](updater PropertyUpdater[T]) *Property[T] {
	p := NewProperty(updater.Get())
	p.SetUpdater(updater)
	return p
}

// NewPropertyWithUpdaterEq is NewPropertyWithUpdater with a custom equality
// predicate.
func NewPropertyWithUpdaterEq[T any](updater PropertyUpdater[T], eq func(a, b T) bool) *Property[T] {
	p := NewPropertyWithEquality(updater.Get(), eq)
	p.SetUpdater(updater)
	return p
}

// Value returns the current value.
func (p *Property[T]) Value() T {
	return p.value
}

// ValueRef returns a pointer to the stored value for in-place mutation.
// Mutations through it bypass the change signals; the caller is responsible
// for re-invoking change semantics if listeners should hear about them.
func (p *Property[T]) ValueRef() *T {
	return &p.value
}

// SetValue stores a new value and emits ValueAboutToChange and ValueChanged
// around the store. A value equal to the current one is dropped without any
// emission. Returns ErrReadOnlyProperty if an updater drives this property.
func (p *Property[T]) SetValue(value T) error {
	if p.updater != nil {
		return ErrReadOnlyProperty
	}
	p.update(value)
	return nil
}

// update is the privileged write path: it skips the read-only check but keeps
// the equality short-circuit and both emissions. Updaters push through here.
func (p *Property[T]) update(value T) {
	if p.eq(p.value, value) {
		return
	}
	old := p.value
	p.valueAboutToChange.Emit(old, value)
	p.value = value
	p.valueChanged.Emit(value)
}

// ValueChanged fires after a new value was stored.
func (p *Property[T]) ValueChanged() *Signal1[T] {
	return p.valueChanged
}

// ValueAboutToChange fires with (old, new) before the new value is stored.
func (p *Property[T]) ValueAboutToChange() *Signal2[T, T] {
	return p.valueAboutToChange
}

// Destroyed fires when the property is destroyed, before its signals are
// torn down, so listeners can drop their references.
func (p *Property[T]) Destroyed() *Signal0 {
	return p.destroyed
}

// Moved fires with the destination property after this property's state was
// moved there. Nodes observing the source rewire themselves to the
// destination.
func (p *Property[T]) Moved() *Signal1[*Property[T]] {
	return p.moved
}

// HasBinding reports whether an updater is attached.
func (p *Property[T]) HasBinding() bool {
	return p.updater != nil
}

// SetUpdater attaches updater, replacing any previous one. Listener
// connections on the property's signals are untouched; the property adopts
// the updater's current value.
func (p *Property[T]) SetUpdater(updater PropertyUpdater[T]) {
	if p.updater != nil {
		p.updater.SetUpdateFunction(nil)
	}
	p.updater = updater
	updater.SetUpdateFunction(p.update)
	p.update(updater.Get())
}

// Reset detaches the updater, making the property writable again. Listener
// connections are untouched.
func (p *Property[T]) Reset() {
	if p.updater != nil {
		p.updater.SetUpdateFunction(nil)
		p.updater = nil
	}
}

// Destroy emits Destroyed and then disconnects all of the property's
// signals, so every outstanding listener handle goes inactive. Call it when
// the property's lifetime ends while nodes or other listeners may still
// reference it.
func (p *Property[T]) Destroy() {
	p.destroyed.Emit()
	p.valueChanged.DisconnectAll()
	p.valueAboutToChange.DisconnectAll()
	p.moved.DisconnectAll()
	p.destroyed.DisconnectAll()
}

// Move transfers src's state into p: the value, the equality predicate, the
// updater and the signal heads, so connections established on src keep
// working against p. src stays usable but empty (zero value, fresh signals,
// no updater). Afterwards Moved fires on p so observing nodes rewire.
func (p *Property[T]) Move(src *Property[T]) {
	if src == nil || src == p {
		return
	}

	p.value = src.value
	p.eq = src.eq
	p.updater = src.updater
	p.valueChanged = src.valueChanged
	p.valueAboutToChange = src.valueAboutToChange
	p.destroyed = src.destroyed
	p.moved = src.moved

	var zero T
	src.value = zero
	src.updater = nil
	src.valueChanged = NewSignal1[T]()
	src.valueAboutToChange = NewSignal2[T, T]()
	src.destroyed = NewSignal0()
	src.moved = NewSignal1[*Property[T]]()

	// The updater's push path still points at src, aim it at p.
	if p.updater != nil {
		p.updater.SetUpdateFunction(p.update)
	}
	p.moved.Emit(p)
}
