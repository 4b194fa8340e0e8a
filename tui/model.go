// Package tui is the terminal front end: a bubbletea model that feeds key
// presses to a session and renders its snapshots with lipgloss.
package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/plus3/tetrad/loop"
	"github.com/plus3/tetrad/tetris"
	"github.com/plus3/tetrad/tetris/autoplay"
)

// DemoStep is the delay between autoplay moves in demo mode.
const DemoStep = 80 * time.Millisecond

// FrameStep is the period of the frame clock that drives gravity and
// autoplay.
const FrameStep = 50 * time.Millisecond

// frameMsg advances the scheduler by one FrameStep.
type frameMsg struct{}

// Model is the bubbletea model for one game. Key presses are applied at
// once through a zero-length frame; the frame clock supplies the time.
type Model struct {
	session *tetris.Session
	sched   *loop.Scheduler
	apply   *loop.ApplySystem
	keys    Keymap
	player  *autoplay.Player
	logger  *log.Logger

	done bool
}

// Option customizes a Model.
type Option func(*Model)

// WithKeymap replaces the default key bindings.
func WithKeymap(k Keymap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// WithDemo lets p play instead of the keyboard. Only pause and quit keys
// are honored.
func WithDemo(p *autoplay.Player) Option {
	return func(m *Model) {
		m.player = p
	}
}

// WithLogger sets the logger for key tracing.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// NewModel creates a model that drives s.
func NewModel(s *tetris.Session, opts ...Option) Model {
	m := Model{session: s, keys: DefaultKeymap()}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}

	m.sched = loop.NewScheduler(s)
	if m.player != nil {
		m.sched.Register(&loop.AutoplaySystem{Player: m.player, Interval: DemoStep})
	}
	m.apply = &loop.ApplySystem{}
	m.sched.Register(m.apply)
	m.sched.Register(&loop.GravitySystem{})
	return m
}

// Session returns the session being played.
func (m Model) Session() *tetris.Session {
	return m.session
}

// Paused reports whether gravity is stopped.
func (m Model) Paused() bool {
	return m.sched.Paused()
}

func (m Model) Init() tea.Cmd {
	return m.frame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg.String())
	case frameMsg:
		if m.done || m.session.Over() {
			return m, nil
		}
		m.sched.Once(FrameStep)
		return m, m.frame()
	}
	return m, nil
}

func (m Model) key(key string) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if key == "p" && !m.session.Over() {
		m.sched.SetPaused(!m.sched.Paused())
		m.logger.Debug("pause", "paused", m.sched.Paused())
		return m, nil
	}

	intent, ok := m.keys[key]
	if !ok {
		return m, nil
	}
	if intent == tetris.IntentQuit {
		m.session.Quit()
		m.done = true
		return m, tea.Quit
	}
	if m.sched.Paused() || m.player != nil || m.session.Over() {
		return m, nil
	}

	before := m.apply.Applied
	m.sched.Commands().Push(intent)
	m.sched.Once(0)
	m.logger.Debug("key", "key", key, "intent", intent, "applied", m.apply.Applied > before)
	return m, nil
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(FrameStep, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
