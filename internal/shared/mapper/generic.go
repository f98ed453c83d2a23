// Package mapper has generic helpers for turning domain slices into
// response shapes.
package mapper

// MapSlice applies fn to every item. The result is never nil so an empty
// list encodes as [] rather than null.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}
