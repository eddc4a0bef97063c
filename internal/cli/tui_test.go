package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/linkdraw/pkg/pipeline"
)

func testFrame(t *testing.T) *pipeline.Frame {
	t.Helper()
	runner := pipeline.NewRunner(nil, nil, nil)
	defer runner.Close()
	res, err := runner.Execute(context.Background(), pipeline.Options{
		Dataset: writeDataset(t),
		Formats: []string{pipeline.FormatJSON},
		NoCache: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	return res.Frame
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInspectModelToggle(t *testing.T) {
	m := NewInspectModel(testFrame(t))

	next, _ := m.Update(key("down"))
	m = next.(InspectModel)
	if m.Cursor != 1 {
		t.Fatalf("Cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(key("space"))
	m = next.(InspectModel)
	if m.Err != nil {
		t.Fatal(m.Err)
	}
	if got := m.layout.Links[1].State; got != "emphasis" {
		t.Errorf("link 1 state = %q, want emphasis", got)
	}
	if got := m.layout.Links[0].State; got != "normal" {
		t.Errorf("link 0 state = %q, want normal", got)
	}

	view := m.View()
	for _, want := range []string{"Connectors", "emphasis", "toSymbol", "[2/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	next, _ = m.Update(key("space"))
	if got := next.(InspectModel).layout.Links[1].State; got != "normal" {
		t.Errorf("second toggle left state %q", got)
	}
}

func TestInspectModelBounds(t *testing.T) {
	m := NewInspectModel(testFrame(t))
	for range 5 {
		next, _ := m.Update(key("down"))
		m = next.(InspectModel)
	}
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want clamped to 1", m.Cursor)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}
