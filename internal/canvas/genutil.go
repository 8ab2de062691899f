package canvas

import "golang.org/x/exp/constraints"

// MinOf and MaxOf generalize the small bound()-style helpers the teacher
// keeps next to its cursor and color clamping code, so Rect arithmetic
// doesn't need a separate int-only copy.
func MinOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func MaxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
