// Package browse is an interactive terminal view over a slot pool: the
// resident slots are drawn left to right with the focused one highlighted,
// followed by the intents of the last plan.
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flipd/internal/slotpool"
	"flipd/internal/window"
	"flipd/pkg/types"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	slotStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeStyle  = slotStyle.BorderForeground(lipgloss.Color("205")).Bold(true)
	emptyStyle   = slotStyle.Faint(true)
	intentsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

const help = "←/h prev  →/l next  g first  G last  +/- window  r rescan  q quit"

// Model is a bubbletea model driving a pool.
type Model struct {
	pool     *slotpool.Pool
	last     slotpool.Plan
	err      error
	width    int
	quitting bool
}

// New returns a model over pool. The pool is not moved until a key is pressed.
func New(pool *slotpool.Pool) Model {
	return Model{pool: pool, last: slotpool.Plan{Bounds: pool.Bounds(), Target: pool.Displayed()}}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "right", "l", "n", " ":
			m.last, m.err = m.pool.Next()
		case "left", "h", "p":
			m.last, m.err = m.pool.Previous()
		case "home", "g":
			m.last, m.err = m.pool.SetDisplayed(0)
		case "end", "G":
			m.last, m.err = m.pool.SetDisplayed(m.pool.Count() - 1)
		case "r":
			m.last, m.err = m.pool.Sync()
		case "+":
			m.resize(1)
		case "-":
			m.resize(-1)
		}
	}
	return m, nil
}

// resize grows or shrinks the window by one slot, keeping the focus inside
// it, and re-shows the current target.
func (m *Model) resize(delta int) {
	cfg := m.pool.Config()
	cfg.Size += delta
	if cfg.Size < 1 {
		return
	}
	cfg.ActiveOffset = min(cfg.ActiveOffset, cfg.Size-1)
	target := m.pool.Displayed()
	if m.err = m.pool.Configure(cfg); m.err != nil {
		return
	}
	m.last, m.err = m.pool.ShowOnly(target)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.pool.Snapshot()
	var b strings.Builder
	loop := ""
	if snap.Config.Loop {
		loop = "  loop"
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("flipd  %d/%d  window %d@%d%s",
		snap.Target, snap.Count, snap.Config.Size, snap.Config.ActiveOffset, loop)))
	b.WriteString("\n")

	byRel := make(map[int]slotpool.Slot, len(snap.Slots))
	for _, s := range snap.Slots {
		byRel[s.Relative] = s
	}
	n := window.NumActive(snap.Config, snap.Count)
	boxes := make([]string, 0, n)
	for rel := 0; rel < n; rel++ {
		boxes = append(boxes, m.renderSlot(byRel, rel, rel == snap.Config.ActiveOffset, n))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	b.WriteString("\n")
	if line := describe(m.last); line != "" {
		b.WriteString(intentsStyle.Render(line))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSlot(byRel map[int]slotpool.Slot, rel int, active bool, n int) string {
	style := slotStyle
	if m.width > 0 && n > 0 {
		// two border columns per box
		style = style.Width(max(8, m.width/n-2))
	}
	s, ok := byRel[rel]
	if !ok {
		return emptyStyle.Inherit(style).Render("·")
	}
	if active {
		style = activeStyle.Inherit(style)
	}
	return style.Render(fmt.Sprintf("%s\n#%d", label(s), s.SourcePosition))
}

func label(s slotpool.Slot) string {
	switch c := s.Content.(type) {
	case nil:
		return "(empty)"
	case types.Item:
		return c.Name
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// describe renders the intents of a plan on one line.
func describe(p slotpool.Plan) string {
	parts := make([]string, 0, len(p.Intents))
	for _, in := range p.Intents {
		switch in.Kind {
		case slotpool.IntentEnter:
			parts = append(parts, fmt.Sprintf("enter %d@%d", in.SourcePosition, in.To))
		case slotpool.IntentExit:
			parts = append(parts, fmt.Sprintf("exit %d", in.SourcePosition))
		case slotpool.IntentMove:
			parts = append(parts, fmt.Sprintf("move %d %d→%d", in.SourcePosition, in.From, in.To))
		}
	}
	return strings.Join(parts, " · ")
}
