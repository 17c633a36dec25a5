package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for scene elements
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbCurve        = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbControlPoint = tcell.NewRGBColor(140, 190, 255) // Bright Blue
	RgbClone        = tcell.NewRGBColor(60, 100, 200)  // Dark Blue

	RgbTrigger       = tcell.NewRGBColor(0, 139, 139) // Dark Cyan
	RgbTriggerActive = tcell.NewRGBColor(255, 255, 0) // Bright Yellow

	RgbFollower        = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbFollowerSkipped = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbFollowerEnded   = tcell.NewRGBColor(180, 180, 180) // Gray

	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
)

// Glyphs for scene elements
const (
	GlyphCurve         = '·'
	GlyphControlPoint  = 'o'
	GlyphTrigger       = '◇'
	GlyphTriggerActive = '◆'
	GlyphClone         = '+'
	GlyphFollower      = '@'
)

func style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(fg)
}
