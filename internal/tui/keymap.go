package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the dashboard.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Select         key.Binding
	Back           key.Binding
	NextZone       key.Binding
	PrevZone       key.Binding
	Search         key.Binding
	ToggleActive   key.Binding
	ManageProjects key.Binding
	Complete       key.Binding
	Help           key.Binding
	Quit           key.Binding
	ApplySearch    key.Binding
	CancelSearch   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next row"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open / toggle"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to home"),
		),
		NextZone: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next zone"),
		),
		PrevZone: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous zone"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ToggleActive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle active-only"),
		),
		ManageProjects: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "manage projects"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete control item"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ApplySearch: key.NewBinding(
			key.WithKeys("enter"),
		),
		CancelSearch: key.NewBinding(
			key.WithKeys("esc"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.NextZone, k.PrevZone, k.Search, k.ToggleActive},
		{k.ManageProjects, k.Complete, k.Help, k.Quit},
	}
}
