package terminal

import "testing"

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(800, 600, 80, 25)
	if v.Rows != 24 || v.Top != 1 {
		t.Fatalf("viewport = %+v, want 24 canvas rows below the status line", v)
	}

	tests := []struct {
		name    string
		x, y    float64
		wantCol int
		wantRow int
	}{
		{name: "Origin", x: 0, y: 0, wantCol: 0, wantRow: 1},
		{name: "Launcher anchor", x: 100, y: 400, wantCol: 10, wantRow: 17},
		{name: "Bottom right", x: 799, y: 599, wantCol: 79, wantRow: 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := v.ToCell(tt.x, tt.y)
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("ToCell(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, col, row, tt.wantCol, tt.wantRow)
			}
			cx, cy := v.ToCanvas(col, row)
			backCol, backRow := v.ToCell(cx, cy)
			if backCol != col || backRow != row {
				t.Errorf("cell centre (%v,%v) maps back to (%d,%d)", cx, cy, backCol, backRow)
			}
		})
	}
}

func TestViewportContains(t *testing.T) {
	v := NewViewport(800, 600, 80, 25)
	if v.Contains(0, 0) {
		t.Errorf("status line should not be part of the canvas")
	}
	if !v.Contains(79, 24) || v.Contains(80, 24) || v.Contains(0, 25) {
		t.Errorf("Contains bounds are wrong")
	}
}

func TestViewportTinyScreen(t *testing.T) {
	v := NewViewport(800, 600, 0, 1)
	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("viewport = %+v, want at least one cell", v)
	}
}
