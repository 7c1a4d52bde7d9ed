package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/private-landing/calc/internal/session"
	"github.com/private-landing/calc/internal/ui"
)

// teaKeys maps bubbletea key names to the browser names the keypad
// tables use. Anything else passes through unchanged.
var teaKeys = map[string]string{
	"enter":     "Enter",
	"esc":       "Escape",
	"backspace": "Backspace",
}

func keyName(msg tea.KeyMsg) string {
	k := msg.String()
	if name, ok := teaKeys[k]; ok {
		return name
	}
	return k
}

type model struct {
	sess     *session.Session
	active   string
	quitting bool
}

func initialModel(sess *session.Session) model {
	return model{sess: sess}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.sess.Key(keyName(msg)) {
		m.active = ""
		return m, nil
	}

	// Keys the calculator ignores fall through to the program's own
	// bindings.
	switch key {
	case "q", "ctrl+d":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	btn, ok := ui.HitTest(msg.X, msg.Y-m.keypadTop())
	if !ok {
		return m, nil
	}
	if m.sess.Click(btn.Value) {
		m.active = btn.Value
	}
	return m, nil
}

// --- Views ---

func (m model) header() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Calculator"))
	b.WriteString("\n\n")
	b.WriteString(ui.RenderScreen(m.sess.Display()))
	b.WriteString("\n\n")
	return b.String()
}

// keypadTop is the screen row of the keypad's first line.
func (m model) keypadTop() int {
	return strings.Count(m.header(), "\n")
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString(ui.RenderKeypad(m.active))
	b.WriteString(ui.DimStyle.Render("\n\ntype or click • esc clear entry • q quit"))
	b.WriteString("\n")
	return b.String()
}
