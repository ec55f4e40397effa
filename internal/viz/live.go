// Package viz provides the interactive operator console: a terminal view
// that drives the reactor model in real time and renders power history,
// temperatures, and the reactivity balance.
//
// The console owns the real-time loop the kernel deliberately lacks: it
// accumulates wall-clock time, multiplies by the speed factor, and issues
// a whole number of fixed-dt Step calls per frame. It also rate-limits
// rod travel before controls reach the model, since the kernel validates
// but never smooths operator input.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/coresim/pwrsim/internal/core"
	"github.com/coresim/pwrsim/internal/reactor"
)

const (
	frameRate       = 30
	historyCapacity = 600
	maxStepsPerTick = 400

	// RodTravelSpeed caps rod motion in fraction of full travel per
	// second, applied here because the kernel accepts any in-range jump.
	RodTravelSpeed = 0.03
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the bubbletea model wrapping one reactor session.
type Model struct {
	sim     *reactor.Model
	initial core.State

	rod        float64 // applied position after rate limiting
	rodDemand  float64
	initialRod float64
	pump       bool
	scram      bool

	dt       float64
	speed    float64
	paused   bool
	lastTick time.Time
	accum    float64

	powerHist []float64
	errMsg    string
}

// NewModel wraps a reactor model whose rods currently sit at rod0.
func NewModel(sim *reactor.Model, rod0, dt float64) Model {
	return Model{
		sim:        sim,
		initial:    sim.GetState(),
		rod:        rod0,
		rodDemand:  rod0,
		initialRod: rod0,
		pump:       true,
		dt:         dt,
		speed:      1.0,
		powerHist:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			m.lastTick = time.Time{}
		case "up", "k":
			m.rodDemand = clamp01(m.rodDemand + 0.02)
		case "down", "j":
			m.rodDemand = clamp01(m.rodDemand - 0.02)
		case "s":
			m.scram = !m.scram
		case "p":
			m.pump = !m.pump
		case "+", "=":
			if m.speed < 64 {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 0.25 {
				m.speed /= 2
			}
		case "r":
			m.reset()
		}
	case TickMsg:
		if !m.paused {
			m.advance(time.Time(msg))
		}
		return m, tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// advance converts elapsed wall-clock time into fixed-dt kernel steps.
func (m *Model) advance(now time.Time) {
	if !m.lastTick.IsZero() {
		elapsed := now.Sub(m.lastTick).Seconds()
		if elapsed > 0.25 {
			elapsed = 0.25
		}
		m.accum += elapsed * m.speed
	}
	m.lastTick = now

	steps := int(m.accum / m.dt)
	if steps > maxStepsPerTick {
		steps = maxStepsPerTick
		m.accum = 0
	} else {
		m.accum -= float64(steps) * m.dt
	}

	for i := 0; i < steps; i++ {
		maxTravel := RodTravelSpeed * m.dt
		if d := m.rodDemand - m.rod; d > maxTravel {
			m.rod += maxTravel
		} else if d < -maxTravel {
			m.rod -= maxTravel
		} else {
			m.rod = m.rodDemand
		}

		st, err := m.sim.Step(m.dt, core.Controls{Rod: m.rod, PumpOn: m.pump, Scram: m.scram})
		if err != nil {
			m.errMsg = err.Error()
			m.paused = true
			return
		}
		m.powerHist = append(m.powerHist, st.P*100)
		if len(m.powerHist) > historyCapacity {
			m.powerHist = m.powerHist[1:]
		}
	}
}

func (m *Model) reset() {
	if err := m.sim.Reset(m.initial); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.rod = m.initialRod
	m.rodDemand = m.initialRod
	m.pump = true
	m.scram = false
	m.powerHist = m.powerHist[:0]
	m.errMsg = ""
	m.lastTick = time.Time{}
	m.accum = 0
}

func (m Model) View() string {
	st := m.sim.GetState()
	rho := m.sim.GetReactivity(core.Controls{Rod: m.rod, PumpOn: m.pump, Scram: m.scram})

	var graph string
	if len(m.powerHist) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.powerHist,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("power, % nominal"),
		))
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("REACTOR CORE") + "\n")
	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	if m.scram {
		status = alertStyle.Render("SCRAM")
	}
	s.WriteString(status + fmt.Sprintf("  x%g\n\n", m.speed))

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.1fs", st.T))
	row("Power", fmt.Sprintf("%.2f%%", st.P*100))
	row("Fuel temp", fmt.Sprintf("%.1f K", st.Tf))
	row("Coolant", fmt.Sprintf("%.1f K", st.Tc))
	row("Rod", fmt.Sprintf("%.3f -> %.3f", m.rod, m.rodDemand))
	pump := "ON"
	if !m.pump {
		pump = alertStyle.Render("TRIPPED")
	}
	row("Pump", pump)

	s.WriteString("\nREACTIVITY (pcm)\n")
	row("rods+scram", fmt.Sprintf("%+.1f", core.Pcm(rho.Ext)))
	row("doppler", fmt.Sprintf("%+.1f", core.Pcm(rho.Doppler)))
	row("moderator", fmt.Sprintf("%+.1f", core.Pcm(rho.Moderator)))
	row("xenon", fmt.Sprintf("%+.1f", core.Pcm(rho.Xenon)))
	row("total", fmt.Sprintf("%+.1f", core.Pcm(rho.Total)))

	if m.errMsg != "" {
		s.WriteString("\n" + alertStyle.Render(m.errMsg) + "\n")
	}
	s.WriteString(helpStyle.Render("↑↓:Rods S:Scram P:Pump +-:Speed\nSP:Pause R:Reset Q:Quit"))

	stats := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, graph, stats)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
