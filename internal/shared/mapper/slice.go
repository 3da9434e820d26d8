// Package mapper has small generic helpers shared by the persistence mappers
// and HTTP DTO builders.
package mapper

// MapSlice applies fn to every element. A nil input yields nil.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// MapSlicePtr is MapSlice for pointer slices; nil elements are skipped.
func MapSlicePtr[T any, R any](items []*T, fn func(*T) *R) []*R {
	if items == nil {
		return nil
	}
	out := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, fn(item))
		}
	}
	return out
}
