package errs

import "fmt"

// wrapf wraps a sentinel error with formatted context, preserving errors.Is
// compatibility against the sentinel.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
