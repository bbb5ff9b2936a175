// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup whose key is well formed but matches
// nothing. Callers test for it with errors.Is; it is routine and maps
// to a "resource does not exist" response, not a crash.
var ErrNotFound = errors.New("not found")

// BackendError wraps a transport or driver failure from the SQL store.
// It is the only error kind a caller may reasonably retry; the
// repository itself performs no retries and surfaces it immediately.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend unavailable: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
