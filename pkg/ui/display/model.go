// Package display is the interactive terminal view of the countdown.
package display

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloudposse/countdown/pkg/countdown"
	"github.com/cloudposse/countdown/pkg/decor"
	"github.com/cloudposse/countdown/pkg/ui/theme"
)

// remainingMsg carries a snapshot received from the subscription.
type remainingMsg struct {
	remaining countdown.Remaining
}

// updatesClosedMsg is sent once the subscription channel is closed.
type updatesClosedMsg struct{}

// waitForRemaining blocks on the subscription until the next snapshot.
// It is re-armed after every remainingMsg.
func waitForRemaining(updates <-chan countdown.Remaining) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return remainingMsg{remaining: r}
	}
}

// Model renders the latest snapshot over the bubble field.
type Model struct {
	styles  theme.Styles
	keys    keyMap
	help    help.Model
	updates <-chan countdown.Remaining

	remaining countdown.Remaining
	ready     bool

	bubbles []decor.Bubble
	clock   countdown.Clock
	started time.Time
	elapsed time.Duration

	width    int
	height   int
	quitting bool
}

// NewModel creates a Model fed by updates. Bubble animation advances with
// each snapshot, measured on clock.
func NewModel(updates <-chan countdown.Remaining, bubbles []decor.Bubble, clock countdown.Clock) Model {
	if clock == nil {
		clock = countdown.RealClock{}
	}
	return Model{
		styles:  theme.DefaultStyles(),
		keys:    keys,
		help:    help.New(),
		updates: updates,
		bubbles: bubbles,
		clock:   clock,
		started: clock.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForRemaining(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case remainingMsg:
		m.remaining = msg.remaining
		m.ready = true
		m.elapsed = m.clock.Now().Sub(m.started)
		return m, waitForRemaining(m.updates)
	case updatesClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	card := renderCard(m.styles, m.remaining)
	helpView := m.styles.Help.Render(m.help.View(m.keys))

	// Last row is reserved for the help line.
	fieldHeight := m.height - 1
	sprites := decor.Place(m.bubbles, m.elapsed, m.width, fieldHeight)
	return compose(m.styles, card, sprites, m.width, fieldHeight) + "\n" + helpView
}

// Remaining returns the snapshot currently shown.
func (m Model) Remaining() countdown.Remaining {
	return m.remaining
}
