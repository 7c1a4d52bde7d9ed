// Package ui renders the calculator in a terminal with lipgloss.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/private-landing/calc/internal/keypad"
)

// Keypad cell geometry in terminal cells.
const (
	CellWidth = 5
	ColGap    = 1
	RowGap    = 1
)

// KeypadWidth is the rendered width of one keypad row.
func KeypadWidth() int {
	n := len(keypad.Layout[0])
	return n*CellWidth + (n-1)*ColGap
}

// RenderKeypad draws the button grid. The button whose value equals active
// is highlighted.
func RenderKeypad(active string) string {
	var b strings.Builder

	for r, row := range keypad.Layout {
		if r > 0 {
			b.WriteString(strings.Repeat("\n", RowGap+1))
		}
		for c, btn := range row {
			if c > 0 {
				b.WriteString(strings.Repeat(" ", ColGap))
			}
			style := buttonStyle(btn.Value)
			if btn.Value == active {
				style = ActiveStyle
			}
			b.WriteString(style.Width(CellWidth).Align(lipgloss.Center).Render(btn.Label))
		}
	}

	return b.String()
}

func buttonStyle(value string) lipgloss.Style {
	switch value {
	case "add", "sub", "mul", "div", "equals":
		return OperatorStyle
	case "clear", "clearElement", "back":
		return ControlStyle
	}
	return DigitStyle
}

// HitTest returns the button under the cell x, y, measured from the
// keypad's top-left corner. Gaps between buttons miss.
func HitTest(x, y int) (keypad.Button, bool) {
	if x < 0 || y < 0 {
		return keypad.Button{}, false
	}
	colPitch := CellWidth + ColGap
	rowPitch := 1 + RowGap
	if x%colPitch >= CellWidth || y%rowPitch >= 1 {
		return keypad.Button{}, false
	}
	return keypad.At(y/rowPitch, x/colPitch)
}
