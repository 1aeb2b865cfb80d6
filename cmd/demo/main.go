// Command demo hosts a small interactive showcase of the engine's view
// catalog inside a Bubble Tea program: bubbletea drives the outer event
// loop and terminal lifecycle, lipgloss frames the surrounding chrome, and
// the showcase body itself is elaborated and painted entirely by this
// module (each frame is painted in full; no reconciliation is done).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sc "github.com/kelvinhart/stagecraft"
	"github.com/kelvinhart/stagecraft/backend/ansi"
	"github.com/kelvinhart/stagecraft/capabilities"
	"github.com/kelvinhart/stagecraft/views"
)

var chromeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("244")).
	Padding(0, 1)

var quitBinding = key.NewBinding(
	key.WithKeys("q", "ctrl+c", "esc"),
	key.WithHelp("q", "quit"),
)

type tickMsg time.Time

type model struct {
	caps     capabilities.Capabilities
	current  int
	total    int
	frame    int
	width    int
	height   int
	quitting bool
}

func initialModel() model {
	return model{
		caps:  capabilities.Detect(capabilities.WithSize(72, 20)),
		total: 20,
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, quitBinding) {
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		m.frame++
		if m.current < m.total {
			m.current++
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "bye\n"
	}

	root := buildShowcase(m.current, m.total, m.frame)
	ctx := sc.NewContext(m.caps.Width, m.caps.Height, m.caps, sc.SessionOptions{}, m.frame)
	node := sc.Elaborate(root, ctx)
	commands := sc.Paint(node, sc.PaintOptions{Theme: sc.DefaultTheme, Capabilities: m.caps})

	rendered := renderToString(commands, m.caps)
	header := chromeStyle.Render(fmt.Sprintf("stagecraft demo — frame %d — q to quit", m.frame))
	return header + "\n" + rendered
}

func buildShowcase(current, total, frame int) sc.View {
	return views.NewPanel("showcase", views.NewVStack(
		views.NewText("concurrent animated regions, one tree").WithStyle(sc.Bold),
		views.NewDivider(),
		views.NewHStack(
			views.NewBadge("● running", sc.Semantic(sc.SemanticSuccess)),
			views.NewSpacer(),
			views.NewNote("press q to quit"),
		).WithSpacing(1),
		views.NewProgress(current, total),
		views.NewSpinner(frame),
	).WithPadding(1).WithSpacing(1))
}

// renderToString drives an in-memory ANSI backend over commands and
// returns what it buffered, rather than writing straight to stdout —
// Bubble Tea owns the real terminal, so the showcase body is rendered to
// a string and handed back as this frame's View.
func renderToString(commands []sc.Command, caps capabilities.Capabilities) string {
	buf := &stringWriter{}
	backend := ansi.New(buf, caps)
	_ = backend.Apply(commands)
	_ = backend.Flush()
	return buf.String()
}

type stringWriter struct{ data []byte }

func (w *stringWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *stringWriter) String() string { return string(w.data) }

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo: ", err)
		os.Exit(1)
	}
}
