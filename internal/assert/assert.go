// Package assert is a thin wrapper around testify's assert package,
// standing in for the teacher repo's internal/assert package (present
// in its import graph but not in the retrieved snapshot). It keeps the
// call shape the teacher's tests already use (assert.Equal(t, want,
// got)) while the actual comparison logic is real third-party testify,
// not a hand-rolled one.
package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that want and got are deeply equal.
func Equal(t *testing.T, want, got any, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Equal(t, want, got, msgAndArgs...)
}

// True asserts that value is true.
func True(t *testing.T, value bool, msgAndArgs ...any) bool {
	t.Helper()
	return assert.True(t, value, msgAndArgs...)
}

// False asserts that value is false.
func False(t *testing.T, value bool, msgAndArgs ...any) bool {
	t.Helper()
	return assert.False(t, value, msgAndArgs...)
}

// Nil asserts that value is nil.
func Nil(t *testing.T, value any, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Nil(t, value, msgAndArgs...)
}

// NoError asserts that err is nil.
func NoError(t *testing.T, err error, msgAndArgs ...any) bool {
	t.Helper()
	return assert.NoError(t, err, msgAndArgs...)
}

// Error asserts that err is non-nil.
func Error(t *testing.T, err error, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Error(t, err, msgAndArgs...)
}

// Panics asserts that fn panics.
func Panics(t *testing.T, fn func(), msgAndArgs ...any) bool {
	t.Helper()
	return assert.Panics(t, fn, msgAndArgs...)
}
