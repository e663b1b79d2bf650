package bindery

import "errors"

var (
	// ErrOutOfRange is returned when a ConnectionHandle no longer matches a
	// live connection, typically because it was disconnected earlier.
	ErrOutOfRange = errors.New("connection handle does not match any connection")

	// ErrReadOnlyProperty is returned when a property that is driven by an
	// updater is written to directly.
	ErrReadOnlyProperty = errors.New("property is read-only, it is driven by a binding")

	// ErrPropertyDestroyed is returned when a node is evaluated after one of
	// its source properties was destroyed.
	ErrPropertyDestroyed = errors.New("source property was destroyed")
)
