package input

// Bounds is a screen rectangle in cell coordinates, width/height exclusive.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether a cell position falls inside the rectangle.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// OutsideDetector fires a callback for pointer interactions outside a
// tracked region, and never for interactions inside it.
type OutsideDetector struct {
	bounds  Bounds
	active  bool
	outside func()
}

// NewOutsideDetector creates a detector invoking outside for every hit
// beyond the tracked bounds while active.
func NewOutsideDetector(outside func()) *OutsideDetector {
	return &OutsideDetector{outside: outside}
}

// Track arms the detector with the region to protect.
func (d *OutsideDetector) Track(b Bounds) {
	d.bounds = b
	d.active = true
}

// Stop disarms the detector; subsequent hits are ignored.
func (d *OutsideDetector) Stop() {
	d.active = false
}

// Hit feeds a pointer-press position to the detector and reports whether
// the outside callback fired.
func (d *OutsideDetector) Hit(x, y int) bool {
	if !d.active || d.bounds.Contains(x, y) {
		return false
	}
	d.outside()
	return true
}
