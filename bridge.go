package gdip

import (
	"log/slog"
	"math"
)

// Bridge forwards handle lifecycle and drawing calls to a Native library.
//
// A Bridge holds no state of its own beyond the Native and the logger: every
// failure is returned to the caller as an *Error, never stored. Handles are
// not safe for concurrent use; the Native's own threading rules apply.
type Bridge struct {
	native Native
	log    *slog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger for a Bridge. Without it the Bridge logs
// through the package logger (see [SetLogger]).
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		b.log = l
	}
}

// New creates a Bridge over n.
func New(n Native, opts ...Option) *Bridge {
	b := &Bridge{native: n}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Native returns the library the bridge forwards to.
func (b *Bridge) Native() Native { return b.native }

func (b *Bridge) logger() *slog.Logger {
	if b.log != nil {
		return b.log
	}
	return Logger()
}

// call runs one native call, turning a panic into an exception error and a
// non-OK status into a status error.
func (b *Bridge) call(op string, fn func() Status) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = exceptionError(op, r)
			b.logger().Warn("gdip: native call panicked",
				"op", op, "backend", b.native.Name(), "panic", r)
		}
	}()
	if s := fn(); s != Ok {
		b.logger().Warn("gdip: native call failed",
			"op", op, "backend", b.native.Name(), "status", s)
		return statusError(op, s)
	}
	return nil
}

// Startup initializes the native library. The token must be passed to
// Shutdown exactly once, near process exit.
func (b *Bridge) Startup() (StartupToken, error) {
	var t StartupToken
	err := b.call("Startup", func() Status {
		t.obj, t.status = b.native.Startup()
		return t.status
	})
	if err != nil {
		return StartupToken{status: t.status}, err
	}
	b.logger().Info("gdip: library started", "backend", b.native.Name())
	return t, nil
}

// Shutdown tears the native library down. It is best-effort and reports
// nothing.
func (b *Bridge) Shutdown(t StartupToken) {
	_ = b.call("Shutdown", func() Status {
		b.native.Shutdown(t.obj)
		return Ok
	})
	b.logger().Info("gdip: library shut down", "backend", b.native.Name())
}

// BindSurface binds a native surface reference. It never fails: the native
// status, if any, is recorded in the returned handle, and every drawing call
// on that handle returns it without reaching the native library.
func (b *Bridge) BindSurface(ref SurfaceRef) Surface {
	var s Surface
	if err := b.call("BindSurface", func() Status {
		s.obj, s.status = b.native.CreateFromHDC(ref)
		return s.status
	}); err != nil && s.status == Ok {
		s.status = GenericError
	}
	b.logger().Debug("gdip: surface bound", "ref", uintptr(ref), "status", s.status)
	return s
}

// ReleaseSurface releases s and returns it to the zero state.
func (b *Bridge) ReleaseSurface(s *Surface) {
	if s == nil || s.obj == 0 {
		return
	}
	_ = b.call("ReleaseSurface", func() Status { return b.native.DeleteGraphics(s.obj) })
	*s = Surface{}
	b.logger().Debug("gdip: surface released")
}

// CreatePen creates a pen with the given color and stroke width.
func (b *Bridge) CreatePen(c Color, width uint32) (Pen, error) {
	var p Pen
	err := b.call("CreatePen", func() Status {
		p.obj, p.status = b.native.CreatePen(c.ARGB(), float32(width))
		return p.status
	})
	if err != nil {
		return Pen{status: p.status}, err
	}
	b.logger().Debug("gdip: pen created", "color", c, "width", width)
	return p, nil
}

// ReleasePen releases p and returns it to the zero state.
func (b *Bridge) ReleasePen(p *Pen) {
	if p == nil || p.obj == 0 {
		return
	}
	_ = b.call("ReleasePen", func() Status { return b.native.DeletePen(p.obj) })
	*p = Pen{}
	b.logger().Debug("gdip: pen released")
}

// CreateBrush creates a solid brush of the given color.
func (b *Bridge) CreateBrush(c Color) (Brush, error) {
	var br Brush
	err := b.call("CreateBrush", func() Status {
		br.obj, br.status = b.native.CreateSolidFill(c.ARGB())
		return br.status
	})
	if err != nil {
		return Brush{status: br.status}, err
	}
	b.logger().Debug("gdip: brush created", "color", c)
	return br, nil
}

// ReleaseBrush releases br and returns it to the zero state.
func (b *Bridge) ReleaseBrush(br *Brush) {
	if br == nil || br.obj == 0 {
		return
	}
	_ = b.call("ReleaseBrush", func() Status { return b.native.DeleteBrush(br.obj) })
	*br = Brush{}
	b.logger().Debug("gdip: brush released")
}

// draw runs a drawing call and records its status on the surface. A surface
// whose bind failed is not forwarded; its bind status is returned instead.
func (b *Bridge) draw(op string, s *Surface, fn func() Status) error {
	return b.call(op, func() Status {
		if s.obj == 0 && s.status != Ok {
			return s.status
		}
		s.status = fn()
		return s.status
	})
}

// drawRect is draw for calls taking a bounding rectangle. Extents beyond
// the native signed range fail with ValueOverflow without a native call.
func (b *Bridge) drawRect(op string, s *Surface, r Rect, fn func(w, h int32) Status) error {
	w, okW := size(r.Width)
	h, okH := size(r.Height)
	return b.draw(op, s, func() Status {
		if !okW || !okH {
			return ValueOverflow
		}
		return fn(w, h)
	})
}

// size converts an unsigned extent to the native signed type.
func size(v uint32) (int32, bool) {
	if v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// DrawLine strokes a line from (x1, y1) to (x2, y2).
func (b *Bridge) DrawLine(s *Surface, p *Pen, x1, y1, x2, y2 int32) error {
	return b.draw("DrawLine", s, func() Status {
		return b.native.DrawLine(s.obj, p.obj, x1, y1, x2, y2)
	})
}

// DrawRectangle strokes the outline of r.
func (b *Bridge) DrawRectangle(s *Surface, p *Pen, r Rect) error {
	return b.drawRect("DrawRectangle", s, r, func(w, h int32) Status {
		return b.native.DrawRectangle(s.obj, p.obj, r.X, r.Y, w, h)
	})
}

// DrawEllipse strokes the ellipse inscribed in r.
func (b *Bridge) DrawEllipse(s *Surface, p *Pen, r Rect) error {
	return b.drawRect("DrawEllipse", s, r, func(w, h int32) Status {
		return b.native.DrawEllipse(s.obj, p.obj, r.X, r.Y, w, h)
	})
}

// DrawArc strokes the arc of the ellipse inscribed in r from start to end
// degrees. The native library receives the sweep end - start, which is
// negative when end < start.
func (b *Bridge) DrawArc(s *Surface, p *Pen, r Rect, start, end float32) error {
	return b.drawRect("DrawArc", s, r, func(w, h int32) Status {
		return b.native.DrawArc(s.obj, p.obj, r.X, r.Y, w, h, start, end-start)
	})
}

// FillRectangle fills r.
func (b *Bridge) FillRectangle(s *Surface, br *Brush, r Rect) error {
	return b.drawRect("FillRectangle", s, r, func(w, h int32) Status {
		return b.native.FillRectangle(s.obj, br.obj, r.X, r.Y, w, h)
	})
}

// FillEllipse fills the ellipse inscribed in r.
func (b *Bridge) FillEllipse(s *Surface, br *Brush, r Rect) error {
	return b.drawRect("FillEllipse", s, r, func(w, h int32) Status {
		return b.native.FillEllipse(s.obj, br.obj, r.X, r.Y, w, h)
	})
}

// FillArc fills the pie slice of the ellipse inscribed in r between start
// and end degrees, forwarding the sweep end - start.
func (b *Bridge) FillArc(s *Surface, br *Brush, r Rect, start, end float32) error {
	return b.drawRect("FillArc", s, r, func(w, h int32) Status {
		return b.native.FillPie(s.obj, br.obj, r.X, r.Y, w, h, start, end-start)
	})
}
