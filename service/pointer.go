package service

// Ptr returns a pointer whose value is v. Tests use it for optional registry fields.
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences p, returning the zero value for a nil p.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// FirstNonZero returns the first value that is not the zero value of T, or the zero value
// when all of them are. Used for label fallbacks such as server_name -> server_id.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
