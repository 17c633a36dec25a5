package render

import (
	"github.com/gdamore/tcell/v2"
)

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// put writes one cell, clipping to the canvas
func put(c Canvas, x, y int, r rune, st tcell.Style) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.SetContent(x, y, r, nil, st)
}

// DrawText writes s starting at (x, y), clipped
func DrawText(c Canvas, x, y int, s string, st tcell.Style) {
	for _, r := range s {
		put(c, x, y, r, st)
		x++
	}
}

// Clear fills the canvas with the background
func Clear(c Canvas) {
	w, h := c.Size()
	st := style(RgbBackground)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, ' ', nil, st)
		}
	}
}
