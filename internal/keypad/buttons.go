package keypad

// Button is one labelled key on the keypad.
type Button struct {
	Label string
	Value string
}

// Layout is the keypad grid, top row first. Every row has the same width.
var Layout = [][]Button{
	{{"CE", "clearElement"}, {"C", "clear"}, {"←", "back"}, {"/", "div"}},
	{{"7", "7"}, {"8", "8"}, {"9", "9"}, {"*", "mul"}},
	{{"4", "4"}, {"5", "5"}, {"6", "6"}, {"-", "sub"}},
	{{"1", "1"}, {"2", "2"}, {"3", "3"}, {"+", "add"}},
	{{"±", "sign"}, {"0", "0"}, {".", "dot"}, {"=", "equals"}},
}

// At returns the button at row, col of Layout.
func At(row, col int) (Button, bool) {
	if row < 0 || row >= len(Layout) {
		return Button{}, false
	}
	if col < 0 || col >= len(Layout[row]) {
		return Button{}, false
	}
	return Layout[row][col], true
}
