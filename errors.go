package depq

import "errors"

var (
	// ErrWrongLocator is returned when a locator is used with a queue it does
	// not belong to, or when its index slot no longer refers back to it.
	ErrWrongLocator = errors.New("depq: locator does not belong to this queue")

	// ErrAlreadyAttached is returned by InsertLocator for a locator that is
	// already in a queue.
	ErrAlreadyAttached = errors.New("depq: locator already attached to a queue")

	// ErrNotAttached signals an internal detach of a locator that is not in
	// any queue. It is raised by panic because it cannot be caused by API
	// input alone.
	ErrNotAttached = errors.New("depq: locator not attached to any queue")
)
