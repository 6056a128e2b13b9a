package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid, one line per row, with a blank line after the
// generation so successive generations are visually separated.
func (r *TerminalRenderer) Display(g *LifeGrid) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Get(x, y) {
				fmt.Fprint(r.Out, gridPosBlock)
			} else {
				fmt.Fprint(r.Out, gridPosEmpty)
			}
		}
		fmt.Fprintln(r.Out)
	}
	fmt.Fprintln(r.Out)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
