// Package guards - Runtime assertion guards
// These assertions PANIC if violated - there is no recovery.
// They cover programming errors only: anything a user can type is
// rejected earlier with a typed error.
package guards

import "fmt"

// Invariant panics with an INVARIANT VIOLATED message when cond is false
func Invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("INVARIANT VIOLATED: " + fmt.Sprintf(format, args...))
	}
}

// NoError panics when err is non-nil. Used where an error can only come
// from static data that failed its own construction checks.
func NoError(err error, what string) {
	if err != nil {
		panic(fmt.Sprintf("INVARIANT VIOLATED: %s: %v", what, err))
	}
}

// Must unwraps a value or panics on error
func Must[T any](v T, err error) T {
	NoError(err, "must")
	return v
}
