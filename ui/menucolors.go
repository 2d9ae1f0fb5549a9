package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired palette for frames and text around the boards.
var MenuColors = struct {
	Border tcell.Color // Muted blue-gray for borders
	Title  tcell.Color // Bright white for titles
	Label  tcell.Color // Light gray for labels
	Hint   tcell.Color // Dim gray for hints
	Result tcell.Color // Blue accent for the verdict
}{
	Border: tcell.PaletteColor(60),
	Title:  tcell.PaletteColor(255),
	Label:  tcell.PaletteColor(250),
	Hint:   tcell.PaletteColor(245),
	Result: tcell.PaletteColor(109),
}
