package api

import (
	"errors"
	"fmt"

	"github.com/private-landing/calc/internal/calc"
	"github.com/private-landing/calc/internal/keypad"
	"github.com/private-landing/calc/internal/session"
)

// APIError represents an error response from the calculator API.
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Event sources.
const (
	SourceKey   = "key"
	SourceClick = "click"
)

// Event is one raw input event: a key-down or a button click.
type Event struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// Dispatch feeds e into s and reports whether it was recognized. Events
// from an unknown source are ignored.
func Dispatch(s *session.Session, e Event) bool {
	switch e.Source {
	case SourceKey:
		return s.Key(e.Value)
	case SourceClick:
		return s.Click(e.Value)
	}
	return false
}

// State is the wire form of calc.State. Previous travels as its display
// string so Infinity and NaN survive JSON.
type State struct {
	Previous string `json:"previous"`
	Buffer   string `json:"buffer"`
	Pending  string `json:"pending"`
	HasInput bool   `json:"has_input"`
}

// ErrInvalidState is returned when a wire state cannot be restored.
var ErrInvalidState = errors.New("invalid state")

// FromState converts s to its wire form.
func FromState(s calc.State) State {
	return State{
		Previous: calc.FormatNumber(s.Previous),
		Buffer:   s.Buffer,
		Pending:  s.Pending.ID(),
		HasInput: s.HasInput,
	}
}

// Calc restores the calculator state.
func (s State) Calc() (calc.State, error) {
	op, ok := calc.ParseOperator(s.Pending)
	if !ok {
		return calc.State{}, fmt.Errorf("%w: unknown operator %q", ErrInvalidState, s.Pending)
	}
	if s.Buffer == "" {
		return calc.State{}, fmt.Errorf("%w: empty buffer", ErrInvalidState)
	}
	prev := 0.0
	if s.Previous != "" {
		prev = calc.ParseNumber(s.Previous)
	}
	return calc.State{Previous: prev, Buffer: s.Buffer, Pending: op, HasInput: s.HasInput}, nil
}

// --- Apply ---

// ApplyRequest is the request body for POST /api/apply. A nil State starts
// from the default state.
type ApplyRequest struct {
	State  *State  `json:"state,omitempty"`
	Events []Event `json:"events"`
}

// ApplyResponse is the response from POST /api/apply. Handled has one entry
// per request event.
type ApplyResponse struct {
	State   State          `json:"state"`
	Display keypad.Display `json:"display"`
	Handled []bool         `json:"handled"`
}

// --- Keymap ---

// KeymapResponse is the response from GET /api/keymap.
type KeymapResponse struct {
	Keys []string `json:"keys"`
}

// --- Websocket ---

// Frame is what the server sends over /ws after every client event, and
// once on connect with Handled false.
type Frame struct {
	keypad.Display
	Handled bool `json:"handled"`
}
