// Package helpers holds small generic utilities shared across packages.
package helpers

// Ptr returns a pointer to the provided value. Useful for optional fields
// on request structs.
func Ptr[T any](val T) *T {
	return &val
}

// Value returns the dereferenced value or the zero value if nil.
func Value[T any](val *T) T {
	return ValueOr(val, *new(T))
}

// ValueOr returns the dereferenced value or the provided default if nil.
func ValueOr[T any](val *T, fallback T) T {
	if val == nil {
		return fallback
	}
	return *val
}
