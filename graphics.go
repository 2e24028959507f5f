package gdip

import "sync"

// DefaultLineWidth is the initial line width of a new Graphics.
const DefaultLineWidth uint32 = 1

// DefaultColor is the initial color of a new Graphics.
var DefaultColor = Black

// Graphics is a bound surface with a current color and line width. It owns
// one pen and one brush built from that state and swaps in new ones when the
// state changes. Unlike the handle API, a Graphics is safe for concurrent
// use.
type Graphics struct {
	b *Bridge

	mu      sync.Mutex
	surface Surface
	pen     Pen
	brush   Brush
	color   Color
	width   uint32
}

// NewGraphics binds ref and creates the default pen and brush. Unlike
// BindSurface, a failed bind is returned here.
func (b *Bridge) NewGraphics(ref SurfaceRef) (*Graphics, error) {
	g := &Graphics{b: b, color: DefaultColor, width: DefaultLineWidth}

	g.surface = b.BindSurface(ref)
	if st := g.surface.status; st != Ok {
		b.ReleaseSurface(&g.surface)
		return nil, statusError("NewGraphics", st)
	}
	var err error
	if g.pen, err = b.CreatePen(g.color, g.width); err != nil {
		b.ReleaseSurface(&g.surface)
		return nil, err
	}
	if g.brush, err = b.CreateBrush(g.color); err != nil {
		b.ReleasePen(&g.pen)
		b.ReleaseSurface(&g.surface)
		return nil, err
	}
	return g, nil
}

// Color returns the current color.
func (g *Graphics) Color() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.color
}

// LineWidth returns the current line width.
func (g *Graphics) LineWidth() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.width
}

// SetColor replaces the pen and brush with ones of color c. On failure the
// previous color, pen and brush stay in place.
func (g *Graphics) SetColor(c Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.b.CreatePen(c, g.width)
	if err != nil {
		return err
	}
	br, err := g.b.CreateBrush(c)
	if err != nil {
		g.b.ReleasePen(&p)
		return err
	}
	g.pen, p = p, g.pen
	g.brush, br = br, g.brush
	g.b.ReleasePen(&p)
	g.b.ReleaseBrush(&br)
	g.color = c
	return nil
}

// SetLineWidth replaces the pen with one of the given width. On failure the
// previous width and pen stay in place.
func (g *Graphics) SetLineWidth(width uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.b.CreatePen(g.color, width)
	if err != nil {
		return err
	}
	g.pen, p = p, g.pen
	g.b.ReleasePen(&p)
	g.width = width
	return nil
}

// Status returns the status of the last drawing call.
func (g *Graphics) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.surface.status
}

// DrawLine strokes a line with the current pen.
func (g *Graphics) DrawLine(x1, y1, x2, y2 int32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.b.DrawLine(&g.surface, &g.pen, x1, y1, x2, y2)
}

// DrawRectangle strokes r with the current pen.
func (g *Graphics) DrawRectangle(r Rect) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.b.DrawRectangle(&g.surface, &g.pen, r)
}

// DrawEllipse strokes the ellipse inscribed in r with the current pen.
func (g *Graphics) DrawEllipse(r Rect) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.b.DrawEllipse(&g.surface, &g.pen, r)
}

// DrawArc strokes an arc from start to end degrees with the current pen.
func (g *Graphics) DrawArc(r Rect, start, end float32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.b.DrawArc(&g.surface, &g.pen, r, start, end)
}

// FillRectangle fills r with the current brush.
func (g *Graphics) FillRectangle(r Rect) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.b.FillRectangle(&g.surface, &g.brush, r)
}

// FillEllipse fills the ellipse inscribed in r with the current brush.
func (g *Graphics) FillEllipse(r Rect) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.b.FillEllipse(&g.surface, &g.brush, r)
}

// FillArc fills a pie slice from start to end degrees with the current brush.
func (g *Graphics) FillArc(r Rect, start, end float32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.b.FillArc(&g.surface, &g.brush, r, start, end)
}

// Close releases the pen, the brush and the surface. It is safe to call
// more than once.
func (g *Graphics) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.b.ReleasePen(&g.pen)
	g.b.ReleaseBrush(&g.brush)
	g.b.ReleaseSurface(&g.surface)
}
