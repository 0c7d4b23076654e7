package helpers

import "reflect"

// StrPanic panics with panicMessage if p is empty, otherwise returns p.
// Constructors use it to fail fast on required strings (registry URL, targets path, host alias).
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan or func);
// otherwise returns v unchanged.
//
// Called from adapters.RegistryHTTP, adapters.ManifestFile, service.NewPoller, handlers.NewHTTPServer and
// the other constructors that take required dependencies.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// PositivePanic panics with panicMessage if v is not greater than zero, otherwise returns v.
// Used for intervals and timeouts, where a zero value would spin a ticker or disable a deadline.
func PositivePanic[T ~int | ~int64](v T, panicMessage string) T {
	if v <= 0 {
		panic(panicMessage)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
