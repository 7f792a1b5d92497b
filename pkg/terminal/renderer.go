package terminal

import (
	"fmt"
	"math"

	"slingshot-server/pkg/server/simulation"

	"github.com/gdamore/tcell/v2"
)

const (
	targetRune   = '▓'
	launcherRune = '█'
	bodyRune     = '●'
	bandRune     = '·'
)

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen   tcell.Screen
	viewport Viewport
}

func NewRenderer(screen tcell.Screen, viewport Viewport) *Renderer {
	return &Renderer{screen: screen, viewport: viewport}
}

func (r *Renderer) SetViewport(viewport Viewport) {
	r.viewport = viewport
}

// Draw renders one frame: targets, launcher, band, body, then the status line
func (r *Renderer) Draw(snapshot *simulation.Snapshot, highScore int64) {
	r.screen.Clear()

	for _, target := range snapshot.Targets {
		r.fillRect(target.X, target.Y, target.Width, target.Height, targetRune, colorStyle(target.Color))
	}

	launcher := snapshot.Launcher
	r.fillRect(launcher.X-launcher.Width/2, launcher.Y, launcher.Width, launcher.Height, launcherRune, colorStyle(launcher.Color))

	bandStyle := tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	for _, segment := range snapshot.Band {
		r.drawLine(segment.X1, segment.Y1, segment.X2, segment.Y2, bandRune, bandStyle)
	}

	r.fillCircle(snapshot.Body.X, snapshot.Body.Y, snapshot.Body.Radius, bodyRune, colorStyle(snapshot.Body.Color))

	status := fmt.Sprintf("Score: %d  High: %d  Level: %d  [drag] aim  [r] reset  [q] quit",
		snapshot.Score, highScore, snapshot.Level+1)
	r.drawText(0, 0, status, tcell.StyleDefault.Bold(true))

	r.screen.Show()
}

func colorStyle(hex string) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.GetColor(hex))
}

func (r *Renderer) setCell(col int, row int, ch rune, style tcell.Style) {
	if r.viewport.Contains(col, row) {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// fillRect fills every cell whose centre lies inside the rectangle
func (r *Renderer) fillRect(x float64, y float64, w float64, h float64, ch rune, style tcell.Style) {
	c0, r0 := r.viewport.ToCell(x, y)
	c1, r1 := r.viewport.ToCell(x+w, y+h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx, cy := r.viewport.ToCanvas(col, row)
			if cx >= x && cx < x+w && cy >= y && cy < y+h {
				r.setCell(col, row, ch, style)
			}
		}
	}
}

// fillCircle fills cells whose centre lies inside the circle. The cell
// holding the centre is always drawn so a small body stays visible.
func (r *Renderer) fillCircle(x float64, y float64, radius float64, ch rune, style tcell.Style) {
	c0, r0 := r.viewport.ToCell(x-radius, y-radius)
	c1, r1 := r.viewport.ToCell(x+radius, y+radius)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx, cy := r.viewport.ToCanvas(col, row)
			if (cx-x)*(cx-x)+(cy-y)*(cy-y) < radius*radius {
				r.setCell(col, row, ch, style)
			}
		}
	}
	col, row := r.viewport.ToCell(x, y)
	r.setCell(col, row, ch, style)
}

// drawLine plots a line between two canvas points in cell space
func (r *Renderer) drawLine(x1 float64, y1 float64, x2 float64, y2 float64, ch rune, style tcell.Style) {
	c0, r0 := r.viewport.ToCell(x1, y1)
	c1, r1 := r.viewport.ToCell(x2, y2)
	steps := int(math.Max(math.Abs(float64(c1-c0)), math.Abs(float64(r1-r0))))
	if steps == 0 {
		r.setCell(c0, r0, ch, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := int(math.Round(float64(c0) + t*float64(c1-c0)))
		row := int(math.Round(float64(r0) + t*float64(r1-r0)))
		r.setCell(col, row, ch, style)
	}
}

func (r *Renderer) drawText(col int, row int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
