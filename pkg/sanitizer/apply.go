package sanitizer

// Apply runs value through transforms in order, feeding each the previous result.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable pipeline out of transforms.
// Preferred over repeated Apply calls when the same chain runs many times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// UntilStable repeats transform until its output equals its input.
// The transform must converge (e.g. only ever remove content), otherwise the
// returned function never terminates.
func UntilStable[T comparable](transform func(T) T) func(T) T {
	return func(value T) T {
		for {
			next := transform(value)
			if next == value {
				return next
			}
			value = next
		}
	}
}
