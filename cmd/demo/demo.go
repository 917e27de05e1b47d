package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	rlv "github.com/saggiyogesh/recyclerlistview"
	"github.com/saggiyogesh/recyclerlistview/listview"
	"github.com/saggiyogesh/recyclerlistview/provider"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Border(lipgloss.RoundedBorder())

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// chromeLines is the vertical space taken by the title and footer.
const chromeLines = 3

// rowView is the recycled per-row view instance. renders counts how many
// distinct rows the instance has drawn, which makes recycling visible in the
// footer of the demo.
type rowView struct {
	renders int
}

func (v *rowView) Reset() {}

type demoModel struct {
	list  *listview.Model
	jump  textinput.Model
	count int
	grid  bool

	// compact flips the data set's row heights, driving the discrepancy
	// path on the next invalidation sweep.
	compact bool

	width, height int
	jumping       bool
}

func newDemoModel(count int, grid bool, maxSpan int) *demoModel {
	m := &demoModel{count: count, grid: grid}

	var p provider.Provider
	if grid {
		p = provider.NewGridLayoutProvider(
			func(index int) rlv.ViewType {
				if index%7 == 0 {
					return "wide"
				}
				return "cell"
			},
			func(index int) float64 {
				if m.compact {
					return 3
				}
				return 4
			},
			func(index int) int {
				if index%7 == 0 {
					return maxSpan
				}
				return 1 + index%2
			},
			func() int { return maxSpan },
		)
	} else {
		p = provider.NewLayoutProvider(
			func(index int) rlv.ViewType {
				if index%10 == 0 {
					return "header"
				}
				return "row"
			},
			func(t rlv.ViewType, dim *rlv.Dimension, index int) {
				dim.Width = float64(m.width - 1)
				switch {
				case t == "header":
					dim.Height = 2
				case m.compact:
					dim.Height = 1
				default:
					dim.Height = 2
				}
			},
		)
	}

	m.list = listview.New(p, count,
		func(t rlv.ViewType) any { return &rowView{} },
		m.renderRow,
	)

	ti := textinput.New()
	ti.Placeholder = "index"
	ti.Prompt = "jump to: "
	ti.Width = 20
	m.jump = ti

	return m
}

func (m *demoModel) renderRow(index int, view any, width int) string {
	renders := 0
	if v, ok := view.(*rowView); ok {
		v.renders++
		renders = v.renders
	}

	if m.grid {
		label := fmt.Sprintf("#%d (%d)", index, renders)
		return cellStyle.Width(width - 2).Render(label)
	}

	if index%10 == 0 {
		return headerStyle.Render(fmt.Sprintf("── Section %d ──", index/10))
	}
	return rowStyle.Render(fmt.Sprintf("item %-8d view drew %d rows", index, renders))
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list, _ = m.list.Update(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - chromeLines})
		return m, nil

	case tea.KeyMsg:
		if m.jumping {
			switch msg.String() {
			case "enter":
				if index, err := strconv.Atoi(m.jump.Value()); err == nil {
					m.list.ScrollToIndex(index)
				}
				m.jumping = false
				m.jump.Blur()
				m.jump.SetValue("")
				return m, nil
			case "esc":
				m.jumping = false
				m.jump.Blur()
				m.jump.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.jump, cmd = m.jump.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "/":
			m.jumping = true
			m.jump.Focus()
			return m, textinput.Blink
		case "x":
			// Flip the sizing source, then sweep: cached dimensions no
			// longer match and the discrepancy check triggers relayout.
			m.compact = !m.compact
			m.invalidateAll()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *demoModel) invalidateAll() {
	for i := 0; i < m.count; i++ {
		if m.list.Invalidate(i) {
			// The relayout recomputed everything after i.
			break
		}
	}
}

func (m *demoModel) View() string {
	var b strings.Builder

	mode := "linear"
	if m.grid {
		mode = "grid"
	}
	b.WriteString(titleStyle.Render("recyclerlistview demo"))
	b.WriteString(fmt.Sprintf(" %s · %d items\n", mode, m.count))

	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.jumping {
		b.WriteString(m.jump.View())
	} else {
		stats := m.list.Stats()
		b.WriteString(helpStyle.Render(fmt.Sprintf(
			"offset %.0f · views created %d reused %d · ↑/↓ scroll · pgup/pgdn page · g/G ends · / jump · x resize rows · q quit",
			m.list.ScrollOffset(), stats.Created, stats.Reused)))
	}

	return b.String()
}
