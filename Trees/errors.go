package Trees

import "github.com/pkg/errors"

var (
	// ErrEndIterator is the cause of the panic raised when the past-the-end Iterator is dereferenced or advanced.
	ErrEndIterator = errors.New("Trees: dereferencing or advancing the end iterator")
	// ErrArenaFull is the cause of the panic raised when a tree needs more nodes than its index type can address.
	ErrArenaFull = errors.New("Trees: index type exhausted")
)
