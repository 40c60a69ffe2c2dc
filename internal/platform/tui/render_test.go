package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBrightCyan)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestRenderStatus(t *testing.T) {
	st := core.GameState{Score: 300, Tick: 42}
	out := renderStatus(st, 2, 80)
	if !strings.Contains(out, "Score 300") || !strings.Contains(out, "Asteroids 2") {
		t.Errorf("renderStatus() = %q", out)
	}
	if strings.Contains(out, "PAUSED") {
		t.Error("unpaused status should not say PAUSED")
	}

	st.Paused = true
	if out := renderStatus(st, 2, 80); !strings.Contains(out, "PAUSED") {
		t.Errorf("paused status = %q, expected PAUSED", out)
	}
}

func TestTickCmd(t *testing.T) {
	if tickCmd(0) == nil || tickCmd(30) == nil {
		t.Error("tickCmd() should always return a command")
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{"d", runeKey('d'), core.ActionRotateRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"space", runeKey(' '), core.ActionShoot, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"help", runeKey('?'), core.ActionHelp, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			if action != tc.action || isQuit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, isQuit, tc.action, tc.quit)
			}
		})
	}
}

func TestRenderScreenBlankRows(t *testing.T) {
	s := core.NewScreen(5, 3)
	s.Plot(0, 4, core.ColorWhite) // second row, first cell

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d lines, expected 3", len(lines))
	}
	if lines[0] != "     " || lines[2] != "     " {
		t.Errorf("blank rows = %q, %q, expected five spaces each", lines[0], lines[2])
	}
	if !strings.ContainsRune(lines[1], 0x2801) {
		t.Errorf("row 1 = %q, expected braille dot", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("styleFor(unknown).Render() = %q, expected plain text", got)
	}
}
