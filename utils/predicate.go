package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// IsASCIIUpper reports whether r is one of 'A'..'Z'.
func IsASCIIUpper(r rune) bool { return IsInRange('A', r, 'Z') }

// IsASCIILower reports whether r is one of 'a'..'z'.
func IsASCIILower(r rune) bool { return IsInRange('a', r, 'z') }

// ToASCIIUpper upper-cases ASCII letters and returns every other rune unchanged.
func ToASCIIUpper(r rune) rune {
	if IsASCIILower(r) {
		return r - ('a' - 'A')
	}

	return r
}

// ToASCIILower lower-cases ASCII letters and returns every other rune unchanged.
func ToASCIILower(r rune) rune {
	if IsASCIIUpper(r) {
		return r + ('a' - 'A')
	}

	return r
}
