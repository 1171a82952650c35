package chamber

// Test hooks into the raw grid, margin included.

func (c *Chamber) SetCell(x, y, z int, color Color) {
	c.cells[c.index(x, y, z)] = color
}

func (c *Chamber) CellAt(v Vector3i) Color {
	return c.cells[c.index(v.X, v.Y, v.Z)]
}

func (c *Chamber) FilledCells() int {
	n := 0
	for _, col := range c.cells {
		if col != Nothing {
			n++
		}
	}
	return n
}

func (c *Chamber) TotalHeight() int {
	return c.height
}
