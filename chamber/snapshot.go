package chamber

// Snapshot is a read-only copy of the playable grid with the falling piece
// drawn in. The safe margin is not included.
type Snapshot struct {
	length, width, height int
	cells                 []Color
}

// Snapshot copies the playable part of the grid and overlays the blocks of
// the falling piece that are below the ceiling.
func (c *Chamber) Snapshot() Snapshot {
	h := c.Height()
	s := Snapshot{
		length: c.length,
		width:  c.width,
		height: h,
		cells:  make([]Color, c.length*c.width*h),
	}
	for x := 0; x < c.length; x++ {
		for y := 0; y < c.width; y++ {
			src := c.index(x, y, 0)
			copy(s.cells[s.index(x, y, 0):s.index(x, y, 0)+h], c.cells[src:src+h])
		}
	}
	if c.falling != nil {
		color := c.falling.Color()
		for _, b := range c.falling.Blocks() {
			if b.InBounds(s.length, s.width, s.height) {
				s.cells[s.index(b.X, b.Y, b.Z)] = color
			}
		}
	}
	return s
}

// Length returns the extent along X.
func (s Snapshot) Length() int { return s.length }

// Width returns the extent along Y.
func (s Snapshot) Width() int { return s.width }

// Height returns the extent along Z.
func (s Snapshot) Height() int { return s.height }

// At returns the color at (x, y, z), or Nothing outside the snapshot.
func (s Snapshot) At(x, y, z int) Color {
	if !(Vector3i{x, y, z}).InBounds(s.length, s.width, s.height) {
		return Nothing
	}
	return s.cells[s.index(x, y, z)]
}

// Filled returns the number of occupied cells.
func (s Snapshot) Filled() int {
	n := 0
	for _, c := range s.cells {
		if c != Nothing {
			n++
		}
	}
	return n
}

// PlaneFilled returns the number of occupied cells in plane z.
func (s Snapshot) PlaneFilled(z int) int {
	n := 0
	for x := 0; x < s.length; x++ {
		for y := 0; y < s.width; y++ {
			if s.At(x, y, z) != Nothing {
				n++
			}
		}
	}
	return n
}

func (s Snapshot) index(x, y, z int) int {
	return (x*s.width+y)*s.height + z
}
