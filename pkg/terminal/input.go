package terminal

import (
	"slingshot-server/pkg/server/simulation"

	"github.com/gdamore/tcell/v2"
)

// Command is a keyboard action outside the pointer state machine
type Command int

const (
	CommandNone Command = iota
	CommandReset
	CommandQuit
)

// InputController turns terminal mouse events into pointer inputs in canvas
// coordinates. A press starts a pointer, motion with the button held moves
// it, and releasing the button ends it.
type InputController struct {
	viewport Viewport
	pressed  bool
}

func NewInputController(viewport Viewport) *InputController {
	return &InputController{viewport: viewport}
}

func (c *InputController) SetViewport(viewport Viewport) {
	c.viewport = viewport
}

// HandleMouse returns the pointer input for a mouse event, if any
func (c *InputController) HandleMouse(ev *tcell.EventMouse) (simulation.Input, bool) {
	col, row := ev.Position()
	x, y := c.viewport.ToCanvas(col, row)
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && !c.pressed:
		c.pressed = true
		return simulation.PointerDown(x, y), true
	case held && c.pressed:
		return simulation.PointerMove(x, y), true
	case !held && c.pressed:
		c.pressed = false
		return simulation.PointerUp(), true
	default:
		return simulation.Input{}, false
	}
}

// HandleKey maps keys to commands
func (c *InputController) HandleKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return CommandQuit
		case 'r', 'R':
			return CommandReset
		}
	}
	return CommandNone
}
