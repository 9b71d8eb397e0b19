// Package must is a syntax sugar package to make the use of `Must` functions.
//
// The `must` package provides an easy way to make functions panic on error.
// insist uses it where a wrong argument is a programming error of the caller,
// so a test helper would be misused rather than a test condition unmet.
//
//	must.Must(regexp.Compile(`regexp`))
//	regexp.Must(regexp.Compile(`regexp`)
package must

// Must is a syntax sugar to express things like must.Must(regexp.Compile(`regexp`))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Nil panics when err is not nil.
func Nil(err error) {
	if err != nil {
		panic(err)
	}
}
