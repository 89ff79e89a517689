// Package validate contains range checks shared by definitions.
package validate

import "math"

// InRange reports whether value lies in [start, end].
func InRange(start float64, end float64, value float64) bool {
	return value >= start && value <= end
}

// InRangeExclusiveStart reports whether value lies in (start, end].
func InRangeExclusiveStart(start float64, end float64, value float64) bool {
	return value > start && value <= end
}

// CloseTo reports whether value differs from expected by at most tolerance.
func CloseTo(expected float64, value float64, tolerance float64) bool {
	return math.Abs(value-expected) <= tolerance
}

// Finite reports whether none of values is NaN or infinite.
func Finite(values ...float64) bool {
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}
