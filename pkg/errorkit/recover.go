package errorkit

import "fmt"

// PanicError represents a recovered panic value which was not an error itself.
type PanicError struct {
	Value any
}

func (err PanicError) Error() string {
	return fmt.Sprintf("panic: %v", err.Value)
}

// FromPanic turns a recovered panic value into an error.
// When the panic value is already an error, it is returned as is,
// so its identity is kept for errors.Is and errors.As.
func FromPanic(r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return err
	}
	return PanicError{Value: r}
}

// Recover executes blk and reports a panic as the returned error value.
// runtime.Goexit is not a panic, and it is not intercepted.
func Recover(blk func() error) (rErr error) {
	defer func() {
		if r := recover(); r != nil {
			rErr = FromPanic(r)
		}
	}()
	return blk()
}
