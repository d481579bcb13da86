package client

// Collection patch helpers apply a confirmed mutation to a local list without
// a re-fetch. Sibling order is preserved in every case.

// PatchByID applies patch to the first element whose key equals id. Reports
// whether an element was patched.
func PatchByID[T any](items []T, key func(T) string, id string, patch func(*T)) bool {
	for i := range items {
		if key(items[i]) == id {
			patch(&items[i])

			return true
		}
	}

	return false
}

// RemoveByID returns the list without the first element whose key equals id,
// and reports whether an element was removed.
func RemoveByID[T any](items []T, key func(T) string, id string) ([]T, bool) {
	for i := range items {
		if key(items[i]) == id {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)

			return out, true
		}
	}

	return items, false
}

// ToggleActive flips the active flag of the matching business in place.
func ToggleActive(items []Business, id string) bool {
	return PatchByID(items, func(b Business) string { return b.ID }, id, func(b *Business) {
		b.IsActive = !b.IsActive
	})
}
