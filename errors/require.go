package errors

import "reflect"

// RequireFunc validates that fn is a non-nil function callable with exactly
// one argument. It returns nil on success and an *AppError describing the
// violation otherwise. Transform constructors call it and panic on failure;
// argument misuse is a programming error, not a recoverable state.
func RequireFunc(name string, fn any) *AppError {
	if fn == nil {
		return InvalidInput(name, "function must not be nil")
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return InvalidInput(name, "value is not a function").WithDetail("kind", v.Kind().String())
	}
	if v.IsNil() {
		return InvalidInput(name, "function must not be nil")
	}
	if t := v.Type(); t.NumIn() != 1 {
		return InvalidInput(name, "function must accept exactly one argument").WithDetail("arity", t.NumIn())
	}
	return nil
}

// MustFunc panics with an *AppError if fn is not callable with one argument.
func MustFunc(name string, fn any) {
	if err := RequireFunc(name, fn); err != nil {
		panic(err)
	}
}
