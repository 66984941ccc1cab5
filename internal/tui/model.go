// Package tui is an interactive browser for scenario comparisons: a
// scenario list on the left, the selected breakdown on the right. All
// computation happens through the compare engine; the TUI only renders.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxfolio/taxengine/internal/compare"
)

// keyMap defines the TUI keybindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous scenario")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next scenario")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recalculate")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model for the scenario browser.
type Model struct {
	engine    *compare.Engine
	scenarios []compare.Scenario

	set     *compare.ComparisonSet
	cursor  int
	loading bool
	err     error

	width  int
	height int
}

// NewModel creates the scenario browser model.
func NewModel(engine *compare.Engine, scenarios []compare.Scenario) Model {
	return Model{engine: engine, scenarios: scenarios, loading: true}
}

// comparisonMsg carries a finished comparison run back into the update loop.
type comparisonMsg struct {
	set *compare.ComparisonSet
	err error
}

// Init kicks off the first comparison run.
func (m Model) Init() tea.Cmd {
	return m.runComparison()
}

func (m Model) runComparison() tea.Cmd {
	engine := m.engine
	scenarios := m.scenarios
	return func() tea.Msg {
		set, err := engine.Compare(context.Background(), scenarios)
		return comparisonMsg{set: set, err: err}
	}
}

// results flattens the comparison set into display order, base first.
func (m Model) results() []compare.Result {
	if m.set == nil {
		return nil
	}
	return append([]compare.Result{m.set.Base}, m.set.Alternatives...)
}
