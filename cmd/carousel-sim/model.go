package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/carousel/cmd/carousel-sim/internal/config"
	"github.com/go-drift/carousel/cmd/carousel-sim/internal/simhost"
	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/carousel"
)

const eventLogSize = 6

// tickMsg drives the simulated host's frame loop.
type tickMsg time.Time

// programReadyMsg hands the model the program reference so carousel
// callbacks can feed events back in as messages.
type programReadyMsg struct {
	program *tea.Program
}

// pageChangedMsg is a carousel change event routed through the session.
type pageChangedMsg carousel.ChangeEvent

// scrolledMsg is a carousel scrolled event routed through the session.
type scrolledMsg carousel.ScrolledEvent

// model is the root bubbletea model: it owns the carousel control and steps
// the simulated host once per frame.
type model struct {
	cfg    *config.Resolved
	sim    *simhost.Host
	car    *carousel.Carousel
	keys   keyMap
	help   help.Model
	width  int
	height int
	offset float64
	events []string
	err    error
}

func newModel(cfg *config.Resolved, sim *simhost.Host, car *carousel.Carousel) model {
	return model{
		cfg:  cfg,
		sim:  sim,
		car:  car,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case programReadyMsg:
		// Carousel callbacks run on the session's dispatch hook during
		// Step; Send queues them as messages for the next Update.
		p := msg.program
		m.car.OnChange = func(ev carousel.ChangeEvent) { p.Send(pageChangedMsg(ev)) }
		m.car.OnScrolled = func(ev carousel.ScrolledEvent) { p.Send(scrolledMsg(ev)) }
		return m, nil

	case tickMsg:
		m.sim.Step(time.Time(msg))
		return m, m.tick()

	case pageChangedMsg:
		m.logEvent(fmt.Sprintf("change → page %d (%s)", msg.Index, msg.Reason))
		return m, nil

	case scrolledMsg:
		m.offset = msg.Offset
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Next):
		m.err = m.car.NextPage(0, animation.Curve{})

	case key.Matches(msg, m.keys.Prev):
		m.err = m.car.PreviousPage(0, animation.Curve{})

	case key.Matches(msg, m.keys.SwipeRight):
		m.sim.Swipe(1, time.Now())

	case key.Matches(msg, m.keys.SwipeLeft):
		m.sim.Swipe(-1, time.Now())

	case key.Matches(msg, m.keys.Jump):
		s := msg.String()
		if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			m.err = m.car.JumpToPage(int(s[0] - '0'))
		}

	case key.Matches(msg, m.keys.Animate):
		target := m.sim.Snapshot().CurrentPage + 2
		m.err = m.car.AnimateToPage(target, 500*time.Millisecond, animation.EaseInOut)

	case key.Matches(msg, m.keys.AutoPlay):
		m.car.SetAutoPlay(!m.car.AutoPlay())
		m.err = m.car.Update()

	case key.Matches(msg, m.keys.Direction):
		next := carousel.DirectionVertical
		if m.car.ScrollDirection() == carousel.DirectionVertical {
			next = carousel.DirectionHorizontal
		}
		m.car.SetScrollDirection(next)
		m.err = m.car.Update()

	case key.Matches(msg, m.keys.Enlarge):
		m.car.SetEnlargeCenterPage(!m.car.EnlargeCenterPage())
		m.err = m.car.Update()

	case key.Matches(msg, m.keys.Indicator):
		m.car.SetEnableIndicator(!m.car.EnableIndicator())
		m.err = m.car.Update()

	case key.Matches(msg, m.keys.Gestures):
		m.car.SetDisableGesture(!m.car.DisableGesture())
		m.err = m.car.Update()
	}
	return m, nil
}

func (m *model) logEvent(line string) {
	m.events = append(m.events, line)
	if len(m.events) > eventLogSize {
		m.events = m.events[len(m.events)-eventLogSize:]
	}
}
