package panel

import "testing"

// fixedViewport is a 1200x800 display, so the clamp ceiling is 1080x680
func fixedViewport() (int, int) { return 1200, 800 }

func TestDefaultGeometry(t *testing.T) {
	c := NewController(fixedViewport)
	if got := c.Size(); got.Width != DefaultWidth || got.Height != DefaultHeight {
		t.Errorf("default geometry = %+v, want %dx%d", got, DefaultWidth, DefaultHeight)
	}
	if c.Dragging() {
		t.Error("new controller reports an active drag")
	}
}

func TestCornerDirections(t *testing.T) {
	// Pointer moves +40 right and +30 down from the drag origin. Which
	// dimension grows depends on the corner the drag started on.
	tests := []struct {
		corner     Corner
		wantWidth  int
		wantHeight int
	}{
		{TopLeft, DefaultWidth - 40, DefaultHeight - 30},
		{TopRight, DefaultWidth + 40, DefaultHeight - 30},
		{BottomLeft, DefaultWidth - 40, DefaultHeight + 30},
		{BottomRight, DefaultWidth + 40, DefaultHeight + 30},
	}
	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			c := NewController(fixedViewport)
			c.BeginDrag(tt.corner, 100, 100)
			c.Move(140, 130)
			got := c.Size()
			if got.Width != tt.wantWidth || got.Height != tt.wantHeight {
				t.Errorf("geometry = %+v, want %dx%d", got, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestClampBounds(t *testing.T) {
	tests := []struct {
		name       string
		corner     Corner
		moveX      int
		moveY      int
		wantWidth  int
		wantHeight int
	}{
		{"shrink below minimum", TopLeft, 5000, 5000, MinWidth, MinHeight},
		{"grow beyond viewport", BottomRight, 5000, 5000, 1080, 680},
		{"width min height max", BottomLeft, 5000, 5000, MinWidth, 680},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(fixedViewport)
			c.BeginDrag(tt.corner, 0, 0)
			c.Move(tt.moveX, tt.moveY)
			got := c.Size()
			if got.Width != tt.wantWidth || got.Height != tt.wantHeight {
				t.Errorf("geometry = %+v, want %dx%d", got, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestClampAppliedOnEveryMove(t *testing.T) {
	c := NewController(fixedViewport)
	c.BeginDrag(BottomRight, 0, 0)

	// A single wild move must not leave the geometry out of bounds, even
	// though the drag is still active.
	c.Move(100000, 100000)
	if got := c.Size(); got.Width != 1080 || got.Height != 680 {
		t.Fatalf("mid-drag geometry = %+v, want 1080x680", got)
	}

	// Dragging back in stays delta-based from the original start point
	c.Move(100, 50)
	if got := c.Size(); got.Width != DefaultWidth+100 || got.Height != DefaultHeight+50 {
		t.Errorf("geometry after return = %+v, want %dx%d", got, DefaultWidth+100, DefaultHeight+50)
	}
}

func TestMoveWithoutDragIsNoOp(t *testing.T) {
	c := NewController(fixedViewport)
	c.Move(4000, 4000)
	if got := c.Size(); got.Width != DefaultWidth || got.Height != DefaultHeight {
		t.Errorf("geometry changed without a drag: %+v", got)
	}
}

func TestEndDragDiscardsGesture(t *testing.T) {
	c := NewController(fixedViewport)
	c.BeginDrag(BottomRight, 0, 0)
	c.Move(60, 40)
	c.EndDrag()

	if c.Dragging() {
		t.Error("drag still active after EndDrag")
	}

	committed := c.Size()
	c.Move(500, 500)
	if got := c.Size(); got != committed {
		t.Errorf("geometry moved after drag end: %+v, want %+v", got, committed)
	}
}

func TestNewDragReplacesActiveOne(t *testing.T) {
	c := NewController(fixedViewport)
	c.BeginDrag(BottomRight, 0, 0)
	c.Move(100, 100)

	// Second press becomes the new baseline: the committed geometry is the
	// one the first drag left behind.
	c.BeginDrag(TopLeft, 200, 200)
	c.Move(200, 200)
	if got := c.Size(); got.Width != DefaultWidth+100 || got.Height != DefaultHeight+100 {
		t.Errorf("geometry = %+v, want %dx%d", got, DefaultWidth+100, DefaultHeight+100)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	c := NewController(fixedViewport)
	c.BeginDrag(BottomRight, 0, 0)
	c.Move(200, 100)
	c.Reset()

	if got := c.Size(); got.Width != DefaultWidth || got.Height != DefaultHeight {
		t.Errorf("geometry after reset = %+v", got)
	}
	if c.Dragging() {
		t.Error("drag survived reset")
	}
}

func TestClampTracksViewport(t *testing.T) {
	vw, vh := 1200, 800
	c := NewController(func() (int, int) { return vw, vh })

	c.BeginDrag(BottomRight, 0, 0)
	c.Move(5000, 5000)
	if got := c.Size(); got.Width != 1080 || got.Height != 680 {
		t.Fatalf("geometry = %+v, want 1080x680", got)
	}

	// Shrinking the viewport tightens the ceiling on the next move
	vw, vh = 800, 700
	c.Move(5000, 5000)
	if got := c.Size(); got.Width != 720 || got.Height != 595 {
		t.Errorf("geometry = %+v, want 720x595", got)
	}
}
