package keypad

import "github.com/private-landing/calc/internal/calc"

// Display is the rendered form of a calculator state.
type Display struct {
	// Primary is the input buffer verbatim.
	Primary string `json:"primary"`
	// Previous and Operator are blank when no operator is pending.
	Previous string `json:"previous"`
	Operator string `json:"operator"`
}

// Render builds the display for s.
func Render(s calc.State) Display {
	d := Display{Primary: s.Buffer}
	if s.Pending != calc.OpNone {
		d.Previous = calc.FormatNumber(s.Previous)
		d.Operator = s.Pending.Symbol()
	}
	return d
}

// Secondary joins Previous and Operator into one line.
func (d Display) Secondary() string {
	if d.Operator == "" {
		return ""
	}
	return d.Previous + " " + d.Operator
}
