package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/private-landing/calc/internal/keypad"
)

func TestKeypadWidth(t *testing.T) {
	if got := KeypadWidth(); got != 23 {
		t.Fatalf("expected 23, got %d", got)
	}
}

func TestRenderKeypadGeometry(t *testing.T) {
	out := RenderKeypad("")
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	if w := lipgloss.Width(out); w != KeypadWidth() {
		t.Fatalf("expected width %d, got %d", KeypadWidth(), w)
	}
	for _, label := range []string{"CE", "7", "±", "="} {
		if !strings.Contains(out, label) {
			t.Errorf("expected label %q in keypad", label)
		}
	}
}

func TestHitTest(t *testing.T) {
	tests := []struct {
		x, y  int
		value string
	}{
		{0, 0, "clearElement"},
		{4, 0, "clearElement"},
		{6, 0, "clear"},
		{18, 0, "div"},
		{22, 0, "div"},
		{0, 2, "7"},
		{12, 4, "6"},
		{7, 8, "0"},
		{20, 8, "equals"},
	}
	for _, tt := range tests {
		b, ok := HitTest(tt.x, tt.y)
		if !ok || b.Value != tt.value {
			t.Errorf("HitTest(%d, %d) = %+v, %v; want %q", tt.x, tt.y, b, ok, tt.value)
		}
	}
}

func TestHitTestMisses(t *testing.T) {
	for _, xy := range [][2]int{{5, 0}, {11, 2}, {0, 1}, {0, 3}, {23, 0}, {0, 9}, {-1, 0}, {0, -1}, {100, 100}} {
		if b, ok := HitTest(xy[0], xy[1]); ok {
			t.Errorf("HitTest(%d, %d) = %+v, expected miss", xy[0], xy[1], b)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	out := RenderScreen(keypad.Display{Primary: "42", Previous: "6", Operator: "*"})
	if !strings.Contains(out, "42") || !strings.Contains(out, "6 *") {
		t.Fatalf("expected display values in %q", out)
	}
	if w := lipgloss.Width(out); w != KeypadWidth() {
		t.Fatalf("expected width %d, got %d", KeypadWidth(), w)
	}
	if h := lipgloss.Height(out); h != 4 {
		t.Fatalf("expected 4 lines, got %d", h)
	}
}

func TestFitRight(t *testing.T) {
	if got := fitRight("12", 5); got != "   12" {
		t.Fatalf("expected right aligned, got %q", got)
	}
	if got := fitRight("1234567", 5); got != "…4567" {
		t.Fatalf("expected truncated, got %q", got)
	}
}
