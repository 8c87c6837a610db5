package errors

import "math"

// finite reports whether v is a usable coordinate (not NaN or infinite).
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateRect validates a rectangle given as position and extent.
// It rejects non-finite coordinates and negative extents. A zero extent is
// allowed here; minimum-size enforcement is a separate policy applied by
// the size validator in the arrange package.
func ValidateRect(left, top, width, height float64) error {
	for _, v := range []float64{left, top, width, height} {
		if !finite(v) {
			return New(ErrCodeInvalidRect, "rect contains non-finite component")
		}
	}
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidRect, "rect has negative extent (%vx%v)", width, height)
	}
	return nil
}

// ValidateSize validates a requested size vector.
// Sizes may be smaller than the configured minimum (they will be clamped),
// but must be finite and non-negative.
func ValidateSize(width, height float64) error {
	if !finite(width) || !finite(height) {
		return New(ErrCodeInvalidSize, "size contains non-finite component")
	}
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidSize, "size has negative component (%vx%v)", width, height)
	}
	return nil
}

// ValidateBounds validates a safe-window bounds rectangle. Beyond plain
// rectangle validity, bounds must have positive area: a zero-size window
// cannot hold any item.
func ValidateBounds(left, top, width, height float64) error {
	if err := ValidateRect(left, top, width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return New(ErrCodeInvalidRect, "bounds must have positive area (%vx%v)", width, height)
	}
	return nil
}
