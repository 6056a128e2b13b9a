package rules

/*
Alive applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func Alive(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Glider returns the canonical glider layout, oriented to drift down-right.
func Glider() [][]bool {
	return [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
		{false, false, false},
	}
}

// Blinker returns the period-2 oscillator: a horizontal run of three live cells.
func Blinker() [][]bool {
	return [][]bool{
		{true, true, true},
	}
}

// Block returns the 2x2 still life.
func Block() [][]bool {
	return [][]bool{
		{true, true},
		{true, true},
	}
}
