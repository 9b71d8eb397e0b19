package insist

import (
	"errors"
	"reflect"

	"github.com/redfin/insist/pkg/zerokit"
)

// ErrorKind decides whether an error is the expected one.
type ErrorKind interface {
	// Match returns the error from the chain of err which is of this kind.
	Match(err error) (error, bool)
	// Name describes the kind in failure messages.
	Name() string
}

// KindOf is the kind of errors which can be assigned to E.
// Wrapped errors match as well, as errors.As finds them.
//
//	insist.KindOf[*fs.PathError]()
func KindOf[E error]() ErrorKind {
	return typeKind[E]{}
}

type typeKind[E error] struct{}

func (typeKind[E]) Match(err error) (error, bool) {
	var target E
	if !errors.As(err, &target) {
		return nil, false
	}
	return target, true
}

func (typeKind[E]) Name() string {
	return reflect.TypeOf((*E)(nil)).Elem().String()
}

// KindIs is the kind of errors which match target with errors.Is.
// The returned error is the caught error itself.
func KindIs(target error) ErrorKind {
	if target == nil {
		panic(ErrInvalidArgument.F("target error is nil"))
	}
	return isKind{target: target}
}

type isKind struct{ target error }

func (k isKind) Match(err error) (error, bool) {
	if errors.Is(err, k.target) {
		return err, true
	}
	return nil, false
}

func (k isKind) Name() string { return k.target.Error() }

// EventuallyErrorsAs polls fn until it fails with an E error, and returns that error.
// The zero E is returned when the failure is reported without stopping the test.
func EventuallyErrorsAs[E error](f Future, fn Executable) E {
	if zerokit.IsNil(f) {
		panic(ErrInvalidArgument.F("future is nil"))
	}
	if h, ok := f.(helperMarker); ok && h.helperFunc() != nil {
		h.helperFunc()()
	}
	err := f.ThatEventuallyErrors(KindOf[E](), fn)
	e, _ := err.(E)
	return e
}
