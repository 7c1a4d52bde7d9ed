// Package session owns one calculator state and feeds raw key and button
// events into it.
package session

import (
	"log/slog"

	"github.com/private-landing/calc/internal/calc"
	"github.com/private-landing/calc/internal/keypad"
)

// Session holds the state for a single surface. It is not safe for
// concurrent use; each surface drives its session from one goroutine.
type Session struct {
	state calc.State
	log   *slog.Logger
}

// New returns a session in the default state. A nil logger discards.
func New(log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{state: calc.New(), log: log}
}

// Restore returns a session continuing from state.
func Restore(state calc.State, log *slog.Logger) *Session {
	s := New(log)
	s.state = state
	return s
}

// Key handles a key-down. It reports whether the key was recognized;
// callers let their own default handling run when it was not.
func (s *Session) Key(key string) bool {
	cmd, ok := keypad.FromKey(key)
	if !ok {
		return false
	}
	s.Apply(cmd)
	return true
}

// Click handles a press on the button carrying value.
func (s *Session) Click(value string) bool {
	cmd, ok := keypad.FromButton(value)
	if !ok {
		s.log.Debug("unknown button", "value", value)
		return false
	}
	s.Apply(cmd)
	return true
}

// Apply runs cmd against the session state.
func (s *Session) Apply(cmd calc.Command) {
	s.state = calc.Apply(s.state, cmd)
	s.log.Debug("apply",
		"command", cmd.String(),
		"buffer", s.state.Buffer,
		"pending", s.state.Pending.String(),
	)
}

// State returns a copy of the current state.
func (s *Session) State() calc.State {
	return s.state
}

// Display renders the current state.
func (s *Session) Display() keypad.Display {
	return keypad.Render(s.state)
}
