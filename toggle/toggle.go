// Package toggle is the show/hide state machine for the settings panel.
package toggle

import "fmt"

type State int

const (
	Hidden State = iota
	Visible
	Exited
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case Exited:
		return "exited"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Event int

const (
	// ToggleRequested comes from the global hotkey, the tray or the in-window
	// toggle key. All three are the same event.
	ToggleRequested Event = iota
	EscapePressed
	ExitRequested
)

func (e Event) String() string {
	switch e {
	case ToggleRequested:
		return "toggle"
	case EscapePressed:
		return "escape"
	case ExitRequested:
		return "exit"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Effects performs the side effects of a transition.
type Effects interface {
	// ShowSettings centers the panel on the primary display, raises and
	// focuses it.
	ShowSettings()
	// HideSettings hides the panel and restores overlay click-through.
	HideSettings()
	Exit()
}

// Machine starts Hidden. Exited is terminal.
type Machine struct {
	state   State
	effects Effects
}

func New(effects Effects) *Machine {
	return &Machine{state: Hidden, effects: effects}
}

func (m *Machine) State() State { return m.state }

// Handle applies ev and returns the resulting state. Escape closes the panel
// when it is open and quits when it is not.
func (m *Machine) Handle(ev Event) State {
	if m.state == Exited {
		return m.state
	}

	switch ev {
	case ExitRequested:
		m.exit()
	case ToggleRequested:
		if m.state == Hidden {
			m.state = Visible
			m.effects.ShowSettings()
		} else {
			m.state = Hidden
			m.effects.HideSettings()
		}
	case EscapePressed:
		if m.state == Visible {
			m.state = Hidden
			m.effects.HideSettings()
		} else {
			m.exit()
		}
	}
	return m.state
}

func (m *Machine) exit() {
	m.state = Exited
	m.effects.Exit()
}
