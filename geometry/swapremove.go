package geometry

// swapRemove removes the element at index i from s by overwriting its slot
// with the slice's last element and truncating by one. It returns the
// former last index (the "swapped-from" index) so the caller can fix up
// any externally stored references to it; this is the single place the
// swap-remove relocation is performed, per the uniform-helper convention.
func swapRemove[T any](s []T, i uint32) ([]T, uint32) {
	last := uint32(len(s) - 1)
	s[i] = s[last]
	return s[:last], last
}
