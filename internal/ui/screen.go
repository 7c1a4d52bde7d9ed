package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/private-landing/calc/internal/keypad"
)

// RenderScreen draws the two display lines inside a box as wide as the
// keypad. Lines longer than the box keep their rightmost characters.
func RenderScreen(d keypad.Display) string {
	w := KeypadWidth() - ScreenStyle.GetHorizontalFrameSize()
	secondary := DimStyle.Render(fitRight(d.Secondary(), w))
	primary := PrimaryStyle.Render(fitRight(d.Primary, w))
	return ScreenStyle.Render(lipgloss.JoinVertical(lipgloss.Right, secondary, primary))
}

func fitRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		r = append([]rune("…"), r[len(r)-width+1:]...)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, string(r))
}
