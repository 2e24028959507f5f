// Package capi is the flat, C-shaped call surface of the bridge.
//
// Each function mirrors one entry point of the C header exported by
// cmd/gdipbridge. Fallible calls return false and record the failure in a
// single process-wide error slot, read back with [ErrPointer]. The slot is
// overwritten by every failure and left alone by every success, so it must
// be read right after the failing call. It is stored atomically; concurrent
// failures do not race, but a reader may see another goroutine's failure.
//
// Go code should use package gdip directly, which returns errors per call.
package capi

import (
	"math"

	"github.com/gogpu/gdip"
)

// InitializeGdiplus starts the native library and writes the token to out.
func InitializeGdiplus(out *gdip.StartupToken) bool {
	const op = "InitializeGdiplus"
	if out == nil {
		return fail(op, gdip.NullPointerError(op))
	}
	b, err := bridge()
	if err != nil {
		return fail(op, err)
	}
	t, err := b.Startup()
	*out = t
	return check(op, err)
}

// DoneGdiplus shuts the native library down.
func DoneGdiplus(token gdip.StartupToken) {
	if b, err := bridge(); err == nil {
		b.Shutdown(token)
	}
}

// FromHDC binds a native surface reference and writes the surface to out.
// Binding itself never fails; a nil out is the only failure.
func FromHDC(ref gdip.SurfaceRef, out *gdip.Surface) bool {
	const op = "FromHDC"
	if out == nil {
		return fail(op, gdip.NullPointerError(op))
	}
	b, err := bridge()
	if err != nil {
		return fail(op, err)
	}
	*out = b.BindSurface(ref)
	return true
}

// DoneGraphics releases a surface.
func DoneGraphics(g gdip.Surface) {
	if b, err := bridge(); err == nil {
		b.ReleaseSurface(&g)
	}
}

// CreatePen creates a pen and writes it to out.
func CreatePen(c gdip.Color, width uint32, out *gdip.Pen) bool {
	const op = "CreatePen"
	if out == nil {
		return fail(op, gdip.NullPointerError(op))
	}
	b, err := bridge()
	if err != nil {
		return fail(op, err)
	}
	p, err := b.CreatePen(c, width)
	*out = p
	return check(op, err)
}

// DonePen releases a pen.
func DonePen(p gdip.Pen) {
	if b, err := bridge(); err == nil {
		b.ReleasePen(&p)
	}
}

// CreateBrush creates a solid brush and writes it to out.
func CreateBrush(c gdip.Color, out *gdip.Brush) bool {
	const op = "CreateBrush"
	if out == nil {
		return fail(op, gdip.NullPointerError(op))
	}
	b, err := bridge()
	if err != nil {
		return fail(op, err)
	}
	br, err := b.CreateBrush(c)
	*out = br
	return check(op, err)
}

// DoneBrush releases a brush.
func DoneBrush(br gdip.Brush) {
	if b, err := bridge(); err == nil {
		b.ReleaseBrush(&br)
	}
}

// withPen resolves the bridge and checks the handle pointers of a stroke call.
func withPen(op string, g *gdip.Surface, p *gdip.Pen, fn func(*gdip.Bridge) error) bool {
	if g == nil || p == nil {
		return fail(op, gdip.NullPointerError(op))
	}
	b, err := bridge()
	if err != nil {
		return fail(op, err)
	}
	return check(op, fn(b))
}

// withBrush resolves the bridge and checks the handle pointers of a fill call.
func withBrush(op string, g *gdip.Surface, br *gdip.Brush, fn func(*gdip.Bridge) error) bool {
	if g == nil || br == nil {
		return fail(op, gdip.NullPointerError(op))
	}
	b, err := bridge()
	if err != nil {
		return fail(op, err)
	}
	return check(op, fn(b))
}

// DrawLine strokes a line.
func DrawLine(g *gdip.Surface, p *gdip.Pen, x1, y1, x2, y2 int32) bool {
	return withPen("DrawLine", g, p, func(b *gdip.Bridge) error {
		return b.DrawLine(g, p, x1, y1, x2, y2)
	})
}

// DrawRectangle strokes a rectangle outline.
func DrawRectangle(g *gdip.Surface, p *gdip.Pen, x, y int32, width, height uint32) bool {
	return withPen("DrawRectangle", g, p, func(b *gdip.Bridge) error {
		return b.DrawRectangle(g, p, gdip.R(x, y, width, height))
	})
}

// DrawArc strokes an arc from startAngle to the inclusive endAngle, in
// degrees.
func DrawArc(g *gdip.Surface, p *gdip.Pen, x, y int32, width, height uint32, startAngle, endAngle float32) bool {
	return withPen("DrawArc", g, p, func(b *gdip.Bridge) error {
		return b.DrawArc(g, p, gdip.R(x, y, width, height), startAngle, endAngle)
	})
}

// DrawEllipse strokes an ellipse outline.
func DrawEllipse(g *gdip.Surface, p *gdip.Pen, x, y int32, width, height uint32) bool {
	return withPen("DrawEllipse", g, p, func(b *gdip.Bridge) error {
		return b.DrawEllipse(g, p, gdip.R(x, y, width, height))
	})
}

// FillRectangle fills a rectangle.
func FillRectangle(g *gdip.Surface, br *gdip.Brush, x, y int32, width, height uint32) bool {
	return withBrush("FillRectangle", g, br, func(b *gdip.Bridge) error {
		return b.FillRectangle(g, br, gdip.R(x, y, width, height))
	})
}

// FillArc fills a pie slice from startAngle to the inclusive endAngle, in
// degrees.
func FillArc(g *gdip.Surface, br *gdip.Brush, x, y int32, width, height uint32, startAngle, endAngle float32) bool {
	return withBrush("FillArc", g, br, func(b *gdip.Bridge) error {
		return b.FillArc(g, br, gdip.R(x, y, width, height), startAngle, endAngle)
	})
}

// FillEllipse fills an ellipse.
func FillEllipse(g *gdip.Surface, br *gdip.Brush, x, y int32, width, height uint32) bool {
	return withBrush("FillEllipse", g, br, func(b *gdip.Bridge) error {
		return b.FillEllipse(g, br, gdip.R(x, y, width, height))
	})
}

// clampDim converts a C unsigned dimension to an int, saturating.
func clampDim(v uint32) int {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
