package num

import "math"

// Number covers the built-in integer and float types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp limits v to the inclusive range [lo, hi]. When lo > hi the bounds
// are swapped first.
func Clamp[T Number](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InRange reports whether v lies in the half-open range [lo, hi).
func InRange[T Number](v, lo, hi T) bool {
	return v >= lo && v < hi
}

// Abs returns the absolute value of v. Unsigned values pass through.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sum adds up all values; the empty slice sums to zero.
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of values, or 0 for the empty slice.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(Sum(values)) / float64(len(values))
}

// Median returns the middle value of values (the mean of the two middle
// values for even lengths), or 0 for the empty slice. The input is not
// modified.
func Median[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]T, len(values))
	copy(sorted, values)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

// Floor rounds v down to the given number of decimal places.
func Floor(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Floor(v*shift) / shift
}

// Ceil rounds v up to the given number of decimal places.
func Ceil(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Ceil(v*shift) / shift
}

// Percent returns what percentage part is of total, or 0 when total is zero.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
