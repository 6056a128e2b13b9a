package model

// newCells allocates a height-by-width cell buffer with all cells dead.
func newCells(width, height int) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return cells
}

// publish copies the scratch buffer into the current generation row by row.
// Copying instead of swapping keeps slices previously handed out by Cells
// aliased to the live generation rather than to the scratch buffer.
func (g *LifeGrid) publish() {
	for y := range g.scratch {
		copy(g.current[y], g.scratch[y])
	}
}
