package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Storm00212/Solar-system/internal/config"
	"github.com/Storm00212/Solar-system/internal/orbit"
	"github.com/Storm00212/Solar-system/internal/sim"
)

const (
	canvasWidth  = 72
	canvasHeight = 26
	energyHist   = 180

	minDaysPerFrame = 0.05
	maxDaysPerFrame = 30.0
)

// TickMsg drives one frame of simulation and redraw.
type TickMsg time.Time

// Model is the bubbletea program for the live orbital view. It owns one
// Simulation and advances it once per display tick; within a tick all
// sub-steps complete before the view reads any state.
type Model struct {
	sim          *sim.Simulation
	canvas       *Canvas
	daysPerFrame float64
	frameRate    int
	viewRadius   float64 // AU shown from the origin to the edge

	initialEnergy float64
	energy        []float64
	showTrails    bool
	showHelp      bool
	err           error
}

func NewModel(s *sim.Simulation, frameRate int) Model {
	cfg := s.Config()
	return Model{
		sim:           s,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		daysPerFrame:  cfg.DaysPerFrame,
		frameRate:     frameRate,
		viewRadius:    systemRadius(&cfg),
		initialEnergy: s.Energy().Total,
		energy:        make([]float64, 0, energyHist),
		showTrails:    true,
	}
}

// systemRadius picks the view extent from the outermost configured orbit.
func systemRadius(cfg *config.System) float64 {
	r := 1.0
	for _, b := range cfg.Bodies {
		extent := b.SemiMajorAxis + b.Spread
		if extent > r {
			r = extent
		}
	}
	return r * 1.1
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.sim.TogglePause()
		case "+", "=":
			m.daysPerFrame *= 1.25
			if m.daysPerFrame > maxDaysPerFrame {
				m.daysPerFrame = maxDaysPerFrame
			}
		case "-", "_":
			m.daysPerFrame /= 1.25
			if m.daysPerFrame < minDaysPerFrame {
				m.daysPerFrame = minDaysPerFrame
			}
		case "r":
			cfg := m.sim.Config()
			if err := m.sim.Reset(&cfg); err != nil {
				m.err = err
				break
			}
			m.energy = m.energy[:0]
			m.initialEnergy = m.sim.Energy().Total
		case "t":
			m.showTrails = !m.showTrails
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if !m.sim.Paused() {
			if err := m.sim.Advance(m.daysPerFrame); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.energy = append(m.energy, m.sim.Energy().Total)
			if len(m.energy) > energyHist {
				m.energy = m.energy[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	view := NewViewport(m.canvas, m.viewRadius)

	bodies := m.sim.Bodies()

	if m.showTrails {
		for i := range bodies {
			for _, p := range m.sim.Trail(i) {
				x, y := view.Project(p)
				m.canvas.Set(x, y)
			}
		}
	}

	for _, b := range bodies {
		x, y := view.Project(b.Pos)
		r := 0
		if b.Radius >= 2 {
			r = 1
		}
		if b.Radius >= 4 {
			r = 2
		}
		m.canvas.Disc(x, y, r)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(m.statsPanel(bodies)),
	)
}

func (m Model) statsPanel(bodies []orbit.Body) string {
	var b strings.Builder

	cfg := m.sim.Config()
	b.WriteString(headerStyle.Render("solarsim · "+cfg.Name) + "\n\n")

	days := m.sim.ElapsedDays()
	row(&b, "elapsed", fmt.Sprintf("%.1f d (%.2f yr)", days, days/365.25))
	row(&b, "speed", fmt.Sprintf("%.2f d/frame", m.daysPerFrame))
	row(&b, "bodies", fmt.Sprintf("%d", len(bodies)))

	e := m.sim.Energy()
	row(&b, "kinetic", fmt.Sprintf("%+.3e", e.Kinetic))
	row(&b, "potential", fmt.Sprintf("%+.3e", e.Potential))
	row(&b, "total", fmt.Sprintf("%+.3e", e.Total))
	if m.initialEnergy != 0 {
		drift := (e.Total - m.initialEnergy) / m.initialEnergy
		row(&b, "drift", fmt.Sprintf("%+.2e", drift))
	}

	if m.sim.Paused() {
		b.WriteString("\n" + pausedStyle.Render("PAUSED") + "\n")
	}

	// Legend lists only trailed bodies, so a 300-member ring cluster
	// does not spam 300 identical rows.
	b.WriteString("\n")
	for i, body := range bodies {
		if m.sim.Trail(i) == nil || body.Name == "" {
			continue
		}
		b.WriteString(bodyStyle(body.Color).Render("● "+body.Name) + "\n")
	}

	if len(m.energy) > 2 {
		b.WriteString("\n" + graphStyle.Render(asciigraph.Plot(m.energy,
			asciigraph.Height(5),
			asciigraph.Width(34),
			asciigraph.Caption("total energy"),
		)))
	}

	if m.err != nil {
		b.WriteString("\n" + pausedStyle.Render(m.err.Error()))
	}

	if m.showHelp {
		b.WriteString(helpStyle.Render(
			"\nspace pause  +/- speed  r reset\nt trails  ? help  q quit"))
	} else {
		b.WriteString(helpStyle.Render("\n? for keys"))
	}

	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
}
