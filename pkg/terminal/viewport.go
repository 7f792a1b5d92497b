package terminal

import "math"

// Viewport maps the game canvas onto terminal cells. Row 0 is kept for the
// status line, the canvas fills the rows below it.
type Viewport struct {
	CanvasWidth  float64
	CanvasHeight float64
	Cols         int
	Rows         int
	Top          int
}

func NewViewport(canvasWidth float64, canvasHeight float64, screenCols int, screenRows int) Viewport {
	rows := screenRows - 1
	if rows < 1 {
		rows = 1
	}
	cols := screenCols
	if cols < 1 {
		cols = 1
	}
	return Viewport{
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		Cols:         cols,
		Rows:         rows,
		Top:          1,
	}
}

// CellSize is the canvas extent of one terminal cell
func (v Viewport) CellSize() (float64, float64) {
	return v.CanvasWidth / float64(v.Cols), v.CanvasHeight / float64(v.Rows)
}

// ToCanvas returns the canvas point at the centre of a screen cell
func (v Viewport) ToCanvas(col int, row int) (float64, float64) {
	w, h := v.CellSize()
	return (float64(col) + 0.5) * w, (float64(row-v.Top) + 0.5) * h
}

// ToCell returns the screen cell containing a canvas point
func (v Viewport) ToCell(x float64, y float64) (int, int) {
	w, h := v.CellSize()
	return int(math.Floor(x / w)), int(math.Floor(y/h)) + v.Top
}

// Contains reports whether a screen cell lies on the canvas
func (v Viewport) Contains(col int, row int) bool {
	return col >= 0 && col < v.Cols && row >= v.Top && row < v.Top+v.Rows
}
