package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the simulator's key bindings.
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	Jump       key.Binding
	Animate    key.Binding
	AutoPlay   key.Binding
	Direction  key.Binding
	Enlarge    key.Binding
	Indicator  key.Binding
	Gestures   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next page command"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous page command"),
		),
		SwipeLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "swipe back"),
		),
		SwipeRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "swipe forward"),
		),
		Jump: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump to page"),
		),
		Animate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "animate two pages ahead"),
		),
		AutoPlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle auto-play"),
		),
		Direction: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle scroll direction"),
		),
		Enlarge: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle enlarge center page"),
		),
		Indicator: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle indicator"),
		),
		Gestures: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle gestures"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Jump, k.AutoPlay, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.SwipeLeft, k.SwipeRight},
		{k.Jump, k.Animate, k.AutoPlay},
		{k.Direction, k.Enlarge, k.Indicator, k.Gestures},
		{k.Help, k.Quit},
	}
}
