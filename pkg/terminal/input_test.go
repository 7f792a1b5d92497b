package terminal

import (
	"testing"

	"slingshot-server/pkg/server/simulation"

	"github.com/gdamore/tcell/v2"
)

func TestInputControllerPointerSequence(t *testing.T) {
	c := NewInputController(NewViewport(800, 600, 80, 25))

	steps := []struct {
		name     string
		col, row int
		buttons  tcell.ButtonMask
		wantOK   bool
		wantKind simulation.InputKind
	}{
		{name: "Hover is ignored", col: 3, row: 3, buttons: tcell.ButtonNone, wantOK: false},
		{name: "Press", col: 10, row: 17, buttons: tcell.Button1, wantOK: true, wantKind: simulation.InputPointerDown},
		{name: "Drag", col: 5, row: 17, buttons: tcell.Button1, wantOK: true, wantKind: simulation.InputPointerMove},
		{name: "Release", col: 5, row: 17, buttons: tcell.ButtonNone, wantOK: true, wantKind: simulation.InputPointerUp},
		{name: "Hover after release", col: 6, row: 17, buttons: tcell.ButtonNone, wantOK: false},
	}

	for _, step := range steps {
		in, ok := c.HandleMouse(tcell.NewEventMouse(step.col, step.row, step.buttons, tcell.ModNone))
		if ok != step.wantOK {
			t.Fatalf("%s: ok = %v, want %v", step.name, ok, step.wantOK)
		}
		if ok && in.Kind != step.wantKind {
			t.Errorf("%s: kind = %v, want %v", step.name, in.Kind, step.wantKind)
		}
	}
}

func TestInputControllerCanvasCoordinates(t *testing.T) {
	c := NewInputController(NewViewport(800, 600, 80, 25))
	in, ok := c.HandleMouse(tcell.NewEventMouse(10, 17, tcell.Button1, tcell.ModNone))
	if !ok {
		t.Fatalf("press not reported")
	}
	if in.X != 105 || in.Y != 412.5 {
		t.Errorf("press at (%v,%v), want cell centre (105,412.5)", in.X, in.Y)
	}
}

func TestInputControllerKeys(t *testing.T) {
	c := NewInputController(NewViewport(800, 600, 80, 25))
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{name: "q quits", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), want: CommandQuit},
		{name: "Escape quits", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), want: CommandQuit},
		{name: "r resets", ev: tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), want: CommandReset},
		{name: "Other keys", ev: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), want: CommandNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.HandleKey(tt.ev); got != tt.want {
				t.Errorf("HandleKey = %v, want %v", got, tt.want)
			}
		})
	}
}
