package vars

// FirstNonZero returns the first value that is not the zero value,
// for flag-over-config-over-default fallbacks.
func FirstNonZero[T comparable](values ...T) (zero T) {
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return
}
