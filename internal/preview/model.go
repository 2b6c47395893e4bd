// Package preview shows a flow field being sampled, line by line, in the
// terminal.
package preview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"honnef.co/go/flowfield"
)

const (
	tickInterval = 30 * time.Millisecond

	defaultStepsPerTick = 16
	maxStepsPerTick     = 4096
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model drives a sampler a few steps per frame and draws the committed
// samples. Quitting early leaves the samples committed so far in the flow
// field.
type Model struct {
	ff      *flowfield.FlowField
	sampler *flowfield.Sampler
	budget  int

	stepsPerTick int
	paused       bool

	width  int
	height int

	keys     keyMap
	help     help.Model
	progress progress.Model
	status   string
}

// New returns a model stepping s, which fills ff. Budget is the maximum line
// count, used for the progress bar.
func New(ff *flowfield.FlowField, s *flowfield.Sampler, budget int) Model {
	return Model{
		ff:           ff,
		sampler:      s,
		budget:       budget,
		stepsPerTick: defaultStepsPerTick,
		keys:         newKeyMap(),
		help:         help.New(),
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		status:       "sampling",
	}
}

func (m Model) Init() tea.Cmd { return tick() }

// Done reports whether the sampler has finished.
func (m Model) Done() bool { return m.sampler.State() == flowfield.Done }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(10, msg.Width/3)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.status = m.describe()
		case key.Matches(msg, m.keys.Line):
			m.paused = true
			m.stepLine()
			m.status = m.describe()
		case key.Matches(msg, m.keys.Faster):
			m.stepsPerTick = min(maxStepsPerTick, m.stepsPerTick*2)
			m.status = fmt.Sprintf("speed: %d steps per frame", m.stepsPerTick)
		case key.Matches(msg, m.keys.Slower):
			m.stepsPerTick = max(1, m.stepsPerTick/2)
			m.status = fmt.Sprintf("speed: %d steps per frame", m.stepsPerTick)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tickMsg:
		if m.paused || m.Done() {
			return m, tick()
		}
		for range m.stepsPerTick {
			if m.sampler.Step() == flowfield.Done {
				break
			}
		}
		m.status = m.describe()
		return m, tick()
	}
	return m, nil
}

// stepLine advances the sampler until the current line is committed.
func (m *Model) stepLine() {
	for !m.Done() {
		if m.sampler.Step() == flowfield.SeekingSeed {
			return
		}
	}
}

func (m Model) describe() string {
	res := m.sampler.Result()
	switch {
	case m.Done():
		return fmt.Sprintf("done: %s, %d lines, %d samples", res.Reason, res.Lines, res.Samples)
	case m.paused:
		return fmt.Sprintf("paused: %d lines, %d samples", res.Lines, res.Samples)
	default:
		return fmt.Sprintf("%s: %d lines, %d samples", m.sampler.State(), res.Lines, res.Samples)
	}
}
