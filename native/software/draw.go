// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gdip"
)

// withPen runs fn on the canvas behind g with the pen's stroke settings and
// strokes the resulting path.
func (b *Backend) withPen(g, p gdip.Object, fn func(dc *gg.Context)) gdip.Status {
	gr, ok := lookup[*graphics](b, g)
	if !ok {
		return gdip.InvalidParameter
	}
	pn, ok := lookup[pen](b, p)
	if !ok {
		return gdip.InvalidParameter
	}
	c := gr.canvas
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return gdip.InvalidParameter
	}

	c.dc.ClearPath()
	c.dc.SetColor(pn.color)
	// A zero-width pen draws one device pixel wide, as in GDI+.
	c.dc.SetLineWidth(math.Max(pn.width, 1))
	fn(c.dc)
	if err := c.dc.Stroke(); err != nil {
		return gdip.GenericError
	}
	return gdip.Ok
}

// withBrush runs fn on the canvas behind g and fills the resulting path.
func (b *Backend) withBrush(g, br gdip.Object, fn func(dc *gg.Context)) gdip.Status {
	gr, ok := lookup[*graphics](b, g)
	if !ok {
		return gdip.InvalidParameter
	}
	bs, ok := lookup[brush](b, br)
	if !ok {
		return gdip.InvalidParameter
	}
	c := gr.canvas
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return gdip.InvalidParameter
	}

	c.dc.ClearPath()
	c.dc.SetColor(bs.color)
	fn(c.dc)
	if err := c.dc.Fill(); err != nil {
		return gdip.GenericError
	}
	return gdip.Ok
}

func validSize(w, h int32) bool { return w >= 0 && h >= 0 }

// DrawLine implements gdip.Native.
func (b *Backend) DrawLine(g, p gdip.Object, x1, y1, x2, y2 int32) gdip.Status {
	return b.withPen(g, p, func(dc *gg.Context) {
		dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	})
}

// DrawRectangle implements gdip.Native.
func (b *Backend) DrawRectangle(g, p gdip.Object, x, y, w, h int32) gdip.Status {
	if !validSize(w, h) {
		return gdip.InvalidParameter
	}
	return b.withPen(g, p, func(dc *gg.Context) {
		dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	})
}

// DrawEllipse implements gdip.Native.
func (b *Backend) DrawEllipse(g, p gdip.Object, x, y, w, h int32) gdip.Status {
	if !validSize(w, h) {
		return gdip.InvalidParameter
	}
	return b.withPen(g, p, func(dc *gg.Context) {
		cx, cy, rx, ry := ellipse(x, y, w, h)
		dc.DrawEllipse(cx, cy, rx, ry)
	})
}

// DrawArc implements gdip.Native.
func (b *Backend) DrawArc(g, p gdip.Object, x, y, w, h int32, start, sweep float32) gdip.Status {
	if !validSize(w, h) {
		return gdip.InvalidParameter
	}
	return b.withPen(g, p, func(dc *gg.Context) {
		cx, cy, rx, ry := ellipse(x, y, w, h)
		arc(dc, cx, cy, rx, ry, float64(start), float64(sweep), false)
	})
}

// FillRectangle implements gdip.Native.
func (b *Backend) FillRectangle(g, br gdip.Object, x, y, w, h int32) gdip.Status {
	if !validSize(w, h) {
		return gdip.InvalidParameter
	}
	return b.withBrush(g, br, func(dc *gg.Context) {
		dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	})
}

// FillEllipse implements gdip.Native.
func (b *Backend) FillEllipse(g, br gdip.Object, x, y, w, h int32) gdip.Status {
	if !validSize(w, h) {
		return gdip.InvalidParameter
	}
	return b.withBrush(g, br, func(dc *gg.Context) {
		cx, cy, rx, ry := ellipse(x, y, w, h)
		dc.DrawEllipse(cx, cy, rx, ry)
	})
}

// FillPie implements gdip.Native.
func (b *Backend) FillPie(g, br gdip.Object, x, y, w, h int32, start, sweep float32) gdip.Status {
	if !validSize(w, h) {
		return gdip.InvalidParameter
	}
	return b.withBrush(g, br, func(dc *gg.Context) {
		cx, cy, rx, ry := ellipse(x, y, w, h)
		if math.Abs(float64(sweep)) >= 360 {
			dc.DrawEllipse(cx, cy, rx, ry)
			return
		}
		dc.MoveTo(cx, cy)
		arc(dc, cx, cy, rx, ry, float64(start), float64(sweep), true)
		dc.ClosePath()
	})
}

// ellipse returns the center and radii of the ellipse inscribed in a
// bounding rectangle.
func ellipse(x, y, w, h int32) (cx, cy, rx, ry float64) {
	rx = float64(w) / 2
	ry = float64(h) / 2
	return float64(x) + rx, float64(y) + ry, rx, ry
}

// arc appends an elliptical arc to the current path as cubic Béziers.
//
// Angles are in degrees, clockwise from the positive x axis in y-down device
// space, and measure the true angle of the end points on the ellipse (not
// the parametric angle), which is how GDI+ interprets them. The sweep is
// clamped to one full turn. With connect set the arc is joined to the
// current point by a line; otherwise it starts a new subpath.
func arc(dc *gg.Context, cx, cy, rx, ry, start, sweep float64, connect bool) {
	sweep = math.Max(-360, math.Min(360, sweep))

	t1 := parametric(start*math.Pi/180, rx, ry)
	t2 := parametric((start+sweep)*math.Pi/180, rx, ry)
	if math.Abs(sweep) == 360 {
		t2 = t1 + math.Copysign(2*math.Pi, sweep)
	}

	x0, y0 := cx+rx*math.Cos(t1), cy+ry*math.Sin(t1)
	if connect {
		dc.LineTo(x0, y0)
	} else {
		dc.MoveTo(x0, y0)
	}

	total := t2 - t1
	n := int(math.Ceil(math.Abs(total) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := total / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	a := t1
	for i := 0; i < n; i++ {
		bEnd := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(bEnd), math.Sin(bEnd)

		p0x, p0y := cx+rx*cosA, cy+ry*sinA
		p3x, p3y := cx+rx*cosB, cy+ry*sinB
		c1x, c1y := p0x-k*rx*sinA, p0y+k*ry*cosA
		c2x, c2y := p3x+k*rx*sinB, p3y-k*ry*cosB

		dc.CubicTo(c1x, c1y, c2x, c2y, p3x, p3y)
		a = bEnd
	}
}

// parametric converts a true angle on an ellipse to its parametric angle,
// unwrapped so that it stays within a quarter turn of theta.
func parametric(theta, rx, ry float64) float64 {
	if rx == 0 || ry == 0 {
		return theta
	}
	t := math.Atan2(rx*math.Sin(theta), ry*math.Cos(theta))
	return t + 2*math.Pi*math.Round((theta-t)/(2*math.Pi))
}
