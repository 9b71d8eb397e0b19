package errorkit

import (
	"fmt"
)

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
//
//	TL;DR:
//	  const ErrSomething errorkit.Error = "something is an error"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

// Wrap bundles another error value together with this Error.
// Both of them remain reachable with errors.Is and errors.As.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Kind: err, Err: oth}
}

// F will format the error value
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type wrapper struct {
	Kind Error
	Err  error // must be not nil
}

func (w wrapper) Error() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Err.Error())
}

func (w wrapper) Unwrap() []error {
	return []error{w.Kind, w.Err}
}
