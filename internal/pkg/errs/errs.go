// Package errs is a thin wrapper over cockroachdb/errors so call sites do
// not depend on the library directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original cause and stack.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New creates a sentinel error with stack capture.
func New(msg string) error {
	return cr.New(msg)
}
