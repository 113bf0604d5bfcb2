package store

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable means no usable store connection exists. The server
// runs in this degraded mode when DATABASE_URL or DATABASE_NAME is missing.
var ErrStoreUnavailable = errors.New("store unavailable")

type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("insert into %q: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

type ReadError struct {
	Collection string
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("find in %q: %v", e.Collection, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
