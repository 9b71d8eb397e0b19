// Package validate runs the Validate method of values which know how to check themselves.
package validate

type Validator interface {
	Validate() error
}

// Value validates v when it implements Validator.
// Values without a Validate method are considered valid.
func Value(v any) error {
	if v == nil {
		return ImplementationError.F("nil value received")
	}
	validator, ok := v.(Validator)
	if !ok {
		return nil
	}
	if err := validator.Validate(); err != nil {
		return ValidationError{Cause: err}
	}
	return nil
}
