// Package overlay tracks whether the overlay window lets pointer input pass
// through to the applications underneath.
package overlay

type Mode int

const (
	ClickThrough Mode = iota
	Interactive
)

func (m Mode) String() string {
	if m == Interactive {
		return "interactive"
	}
	return "click-through"
}

// Window is the windowing capability the controller drives. The controller
// never touches window styles itself.
type Window interface {
	SetInteractive(interactive bool)
}

type Controller struct {
	win  Window
	mode Mode
}

// New asserts click-through on win.
func New(win Window) *Controller {
	c := &Controller{win: win, mode: ClickThrough}
	win.SetInteractive(false)
	return c
}

func (c *Controller) Mode() Mode { return c.mode }

// SetMode switches the window. Setting the current mode does nothing.
func (c *Controller) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	c.mode = m
	c.win.SetInteractive(m == Interactive)
}

// MakeInteractive lets the window receive pointer input.
func (c *Controller) MakeInteractive() { c.SetMode(Interactive) }

// RestoreClickThrough is safe to call when already click-through.
func (c *Controller) RestoreClickThrough() { c.SetMode(ClickThrough) }
