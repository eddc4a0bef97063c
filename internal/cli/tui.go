package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	pkgio "github.com/matzehuels/linkdraw/pkg/io"
	"github.com/matzehuels/linkdraw/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	emphasisStyle     = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// InspectModel - Interactive connector browser
// =============================================================================

// InspectModel is the bubbletea model of the inspect command. It lists the
// connectors of a frame and toggles their emphasis state in place.
type InspectModel struct {
	Frame  *pipeline.Frame
	Cursor int
	Height int
	Offset int
	Err    error

	layout pkgio.Layout
}

// NewInspectModel creates an inspect model over a laid out frame.
func NewInspectModel(f *pipeline.Frame) InspectModel {
	return InspectModel{
		Frame:  f,
		Height: 15,
		layout: f.Layout(),
	}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.layout.Links)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space", "enter", "h":
			m.Err = m.Frame.Set.Toggle(m.Cursor)
			m.Frame.Set.Frame(context.Background())
			m.layout = m.Frame.Layout()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 14
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Connectors"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ␣ toggle highlight  q quit"))
	b.WriteString("\n\n")

	links := m.layout.Links
	end := min(m.Offset+m.Height, len(links))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := links[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		name := p.Name
		if name == "" {
			name = "—"
		}
		label := "—"
		if p.Label != nil {
			label = p.Label.Text
		}
		rows = append(rows, []string{cursor, strconv.Itoa(p.Index), name, p.State, label})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Name", "State", "Label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(links) {
				return lipgloss.NewStyle()
			}
			switch {
			case idx == m.Cursor:
				return listSelectedStyle
			case links[idx].State != "normal":
				return emphasisStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if m.Cursor < len(links) {
		b.WriteString(poseDetail(links[m.Cursor]))
	}
	if m.Err != nil {
		b.WriteString(StyleError.Render(m.Err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(links))))

	return b.String()
}

// poseDetail lists the markers and label of one connector.
func poseDetail(p pkgio.LinkPose) string {
	var b strings.Builder
	for _, mk := range p.Markers {
		fmt.Fprintf(&b, "  %s %s at %s, scale %s\n",
			StyleHighlight.Render(mk.Category), mk.Kind, formatPoint(mk.Position), formatFloat(mk.Scale))
	}
	if l := p.Label; l != nil {
		text := l.Text
		if l.HoverText != "" {
			text += " (hover: " + l.HoverText + ")"
		}
		fmt.Fprintf(&b, "  %s %q %s at %s, %s %s\n",
			StyleHighlight.Render("label"), text, l.Policy, formatPoint(l.Position), l.Align, l.VerticalAlign)
	}
	return b.String()
}
