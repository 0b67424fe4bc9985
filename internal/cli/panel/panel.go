// Package panel tracks the drag-resize geometry of the chat panel. It is
// pure state: pointer coordinates come in, clamped width/height come out.
// The viewport size is injected so the clamping logic needs no display
// surface.
package panel

// Geometry bounds, in pixel units.
const (
	DefaultWidth  = 540
	DefaultHeight = 700

	MinWidth  = 380
	MinHeight = 500

	// Maximum size as a fraction of the viewport
	MaxWidthFraction  = 0.9
	MaxHeightFraction = 0.85
)

// Corner identifies which resize handle a drag started on
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns the handle name
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

func (c Corner) onLeftEdge() bool { return c == TopLeft || c == BottomLeft }
func (c Corner) onTopEdge() bool  { return c == TopLeft || c == TopRight }

// Geometry is the panel size in pixel units
type Geometry struct {
	Width  int
	Height int
}

// Viewport reports the current viewport width and height in pixel units
type Viewport func() (width, height int)

// dragState captures the geometry and pointer position at drag start.
// It exists only while a drag is active.
type dragState struct {
	startWidth  int
	startHeight int
	startX      int
	startY      int
	corner      Corner
}

// Controller converts pointer deltas into clamped panel geometry.
// Only one drag can be active at a time; a new BeginDrag wins.
type Controller struct {
	viewport Viewport
	geom     Geometry
	drag     *dragState
}

// NewController creates a controller at the default geometry
func NewController(viewport Viewport) *Controller {
	return &Controller{
		viewport: viewport,
		geom:     Geometry{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// Size returns the committed geometry
func (c *Controller) Size() Geometry {
	return c.geom
}

// Dragging reports whether a drag gesture is active
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// BeginDrag starts a drag gesture from the given corner handle, capturing
// the current geometry and pointer position.
func (c *Controller) BeginDrag(corner Corner, x, y int) {
	c.drag = &dragState{
		startWidth:  c.geom.Width,
		startHeight: c.geom.Height,
		startX:      x,
		startY:      y,
		corner:      corner,
	}
}

// Move updates the geometry from the current pointer position. It is a
// no-op when no drag is active. The result is clamped on every move, not
// only at drag end, so the panel never overshoots its bounds even
// transiently.
func (c *Controller) Move(x, y int) {
	if c.drag == nil {
		return
	}

	deltaX := x - c.drag.startX
	deltaY := y - c.drag.startY

	width := c.drag.startWidth
	height := c.drag.startHeight

	if c.drag.corner.onLeftEdge() {
		width -= deltaX
	} else {
		width += deltaX
	}
	if c.drag.corner.onTopEdge() {
		height -= deltaY
	} else {
		height += deltaY
	}

	c.geom = c.clamp(Geometry{Width: width, Height: height})
}

// EndDrag ends the active drag gesture and discards its state
func (c *Controller) EndDrag() {
	c.drag = nil
}

// Reset restores the default geometry
func (c *Controller) Reset() {
	c.geom = Geometry{Width: DefaultWidth, Height: DefaultHeight}
	c.drag = nil
}

// clamp bounds each dimension independently to [min, fraction*viewport]
func (c *Controller) clamp(g Geometry) Geometry {
	vw, vh := c.viewport()

	maxWidth := int(float64(vw) * MaxWidthFraction)
	maxHeight := int(float64(vh) * MaxHeightFraction)

	if g.Width > maxWidth {
		g.Width = maxWidth
	}
	if g.Width < MinWidth {
		g.Width = MinWidth
	}
	if g.Height > maxHeight {
		g.Height = maxHeight
	}
	if g.Height < MinHeight {
		g.Height = MinHeight
	}

	return g
}
