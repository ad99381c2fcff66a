// Package assertions holds the testify helpers shared by the package tests
package assertions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ErrorIs(t testing.TB, err error, expected error) bool {
	t.Helper()

	return assert.Truef(
		t,
		errors.Is(err, expected),
		"Unexpected error: %#v is not %#v",
		err,
		expected,
	)
}

// ErrorIsAll checks err against each expected error, typically a typed
// error and the cause it wraps
func ErrorIsAll(t testing.TB, err error, expected ...error) bool {
	t.Helper()

	if len(expected) == 0 {
		return assert.Error(t, err)
	}

	ok := true
	for _, e := range expected {
		ok = ErrorIs(t, err, e) && ok
	}

	return ok
}
