// Package keypad translates raw key and button values into calculator
// commands, and calculator state into display text.
//
// Key values are browser KeyboardEvent.key names ("Enter", "Escape",
// "Backspace", "+", "7", ...). Button values are the ids carried by the
// keypad buttons ("add", "clearElement", "7", ...).
package keypad

import (
	"sort"

	"github.com/private-landing/calc/internal/calc"
)

var keyCommands = map[string]calc.Command{
	"Escape":    calc.ClearEntry,
	"Backspace": calc.Backspace,
	"/":         calc.Op(calc.OpDivide),
	"*":         calc.Op(calc.OpMultiply),
	"-":         calc.Op(calc.OpSubtract),
	"+":         calc.Op(calc.OpAdd),
	".":         calc.Dot,
	",":         calc.Dot,
	"Enter":     calc.Equals,
	"=":         calc.Equals,
}

var buttonCommands = map[string]calc.Command{
	"clearElement": calc.ClearEntry,
	"clear":        calc.ClearAll,
	"back":         calc.Backspace,
	"div":          calc.Op(calc.OpDivide),
	"mul":          calc.Op(calc.OpMultiply),
	"sub":          calc.Op(calc.OpSubtract),
	"add":          calc.Op(calc.OpAdd),
	"sign":         calc.Sign,
	"dot":          calc.Dot,
	"equals":       calc.Equals,
}

func digit(v string) (calc.Command, bool) {
	if len(v) == 1 && v[0] >= '0' && v[0] <= '9' {
		return calc.Digit(v[0]), true
	}
	return calc.Command{}, false
}

// FromKey maps a key name to its command. ok is false for keys the
// calculator does not handle.
func FromKey(key string) (cmd calc.Command, ok bool) {
	if cmd, ok = keyCommands[key]; ok {
		return cmd, true
	}
	return digit(key)
}

// FromButton maps a button value to its command.
func FromButton(value string) (cmd calc.Command, ok bool) {
	if cmd, ok = buttonCommands[value]; ok {
		return cmd, true
	}
	return digit(value)
}

// Keys lists every key name FromKey recognizes, sorted.
func Keys() []string {
	keys := make([]string, 0, len(keyCommands)+10)
	for k := range keyCommands {
		keys = append(keys, k)
	}
	for d := '0'; d <= '9'; d++ {
		keys = append(keys, string(d))
	}
	sort.Strings(keys)
	return keys
}
