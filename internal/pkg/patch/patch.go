package patch

// Coalesce resolves a partial-update field: a nil pointer keeps current.
func Coalesce[T any](ptr *T, current T) T {
	if ptr == nil {
		return current
	}
	return *ptr
}
