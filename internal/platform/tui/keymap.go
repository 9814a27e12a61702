package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// actionHelp is the help text shown for each action.
var actionHelp = [core.ActionCount]string{
	core.ActionMoveUp:    "up",
	core.ActionMoveLeft:  "left",
	core.ActionMoveDown:  "down",
	core.ActionMoveRight: "right",
	core.ActionDash:      "dash",
	core.ActionAttack:    "fire",
}

// KeyMap translates Bubble Tea key messages to game actions.
// Each action may have up to two alternate keys, OR'd together.
type KeyMap struct {
	Actions     [core.ActionCount]key.Binding
	DebugToggle key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// NewKeyMap builds key bindings from the configured controls.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	var km KeyMap
	for _, a := range core.Actions() {
		km.Actions[a] = binding(c.ForAction(a), actionHelp[a])
	}
	km.DebugToggle = binding(c.DebugToggle, "debug")
	km.Screenshot = key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "screenshot"),
	)
	km.Quit = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
	return km
}

func binding(keys []string, help string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithHelp("", help), key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), help),
	)
}

// Action returns the game action bound to msg, if any.
func (km KeyMap) Action(msg tea.KeyMsg) (core.Action, bool) {
	for _, a := range core.Actions() {
		if key.Matches(msg, km.Actions[a]) {
			return a, true
		}
	}
	return core.ActionCount, false
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.Actions[core.ActionAttack],
		km.Actions[core.ActionDash],
		km.DebugToggle,
		km.Screenshot,
		km.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.Actions[core.ActionMoveUp],
			km.Actions[core.ActionMoveLeft],
			km.Actions[core.ActionMoveDown],
			km.Actions[core.ActionMoveRight],
		},
		{
			km.Actions[core.ActionAttack],
			km.Actions[core.ActionDash],
		},
		{
			km.DebugToggle,
			km.Screenshot,
			km.Quit,
		},
	}
}
