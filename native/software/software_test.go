// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/gogpu/gdip"
)

// newCanvas starts a bridge over a fresh backend and binds a w x h canvas.
func newCanvas(t *testing.T, w, h int) (*gdip.Bridge, *Backend, gdip.SurfaceRef, *gdip.Surface) {
	t.Helper()
	sw := New()
	b := gdip.New(sw)
	tok, err := b.Startup()
	if err != nil {
		t.Fatalf("Startup() = %v", err)
	}
	ref, err := sw.NewCanvas(w, h)
	if err != nil {
		t.Fatalf("NewCanvas() = %v", err)
	}
	s := b.BindSurface(ref)
	if s.Status() != gdip.Ok {
		t.Fatalf("BindSurface status = %v", s.Status())
	}
	t.Cleanup(func() {
		b.ReleaseSurface(&s)
		_ = sw.ReleaseCanvas(ref)
		b.Shutdown(tok)
	})
	return b, sw, ref, &s
}

func pixel(t *testing.T, sw *Backend, ref gdip.SurfaceRef, x, y int) color.NRGBA {
	t.Helper()
	img, ok := sw.Snapshot(ref)
	if !ok {
		t.Fatal("Snapshot() failed")
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestFillRectangle_Scenario(t *testing.T) {
	b, sw, ref, s := newCanvas(t, 20, 20)

	br, err := b.CreateBrush(gdip.RGBA(255, 0, 0, 255))
	if err != nil {
		t.Fatalf("CreateBrush() = %v", err)
	}
	if err := b.FillRectangle(s, &br, gdip.R(0, 0, 10, 10)); err != nil {
		t.Fatalf("FillRectangle() = %v", err)
	}
	b.ReleaseBrush(&br)

	if got := pixel(t, sw, ref, 5, 5); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("inside pixel = %v, want opaque red", got)
	}
	if got := pixel(t, sw, ref, 15, 15); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestCreate_BeforeStartup(t *testing.T) {
	b := gdip.New(New())

	if _, err := b.CreatePen(gdip.Black, 1); !errors.Is(err, gdip.ErrNotInitialized) {
		t.Errorf("CreatePen() error = %v, want ErrNotInitialized", err)
	}
	if _, err := b.CreateBrush(gdip.Black); !errors.Is(err, gdip.ErrNotInitialized) {
		t.Errorf("CreateBrush() error = %v, want ErrNotInitialized", err)
	}
}

func TestShutdown_StopsCreation(t *testing.T) {
	sw := New()
	b := gdip.New(sw)
	tok, err := b.Startup()
	if err != nil {
		t.Fatal(err)
	}
	b.Shutdown(tok)
	// A second shutdown with the same token is ignored.
	b.Shutdown(tok)

	if _, err := b.CreateBrush(gdip.Black); !errors.Is(err, gdip.ErrNotInitialized) {
		t.Errorf("CreateBrush() after Shutdown error = %v, want ErrNotInitialized", err)
	}
	if n := sw.objects.Len(); n != 0 {
		t.Errorf("%d objects left after shutdown, want 0", n)
	}
}

func TestBindSurface_UnknownRef(t *testing.T) {
	sw := New()
	b := gdip.New(sw)
	tok, _ := b.Startup()
	defer b.Shutdown(tok)

	s := b.BindSurface(9999)
	if s.Valid() || s.Status() == gdip.Ok {
		t.Fatalf("BindSurface(unknown) = valid %v status %v", s.Valid(), s.Status())
	}

	p, err := b.CreatePen(gdip.Black, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer b.ReleasePen(&p)
	if err := b.DrawLine(&s, &p, 0, 0, 1, 1); !errors.Is(err, gdip.ErrInvalidParameter) {
		t.Errorf("DrawLine on unbound surface error = %v, want ErrInvalidParameter", err)
	}
}

func TestDraw_WrongObjectKind(t *testing.T) {
	b, _, _, s := newCanvas(t, 10, 10)
	p := gdip.Pen{}
	if err := b.DrawLine(s, &p, 0, 0, 5, 5); !errors.Is(err, gdip.ErrInvalidParameter) {
		t.Errorf("DrawLine with zero pen error = %v, want ErrInvalidParameter", err)
	}

	sw := New()
	tok, _ := sw.Startup()
	defer sw.Shutdown(tok)
	ref, err := sw.NewCanvas(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	g, st := sw.CreateFromHDC(ref)
	if st != gdip.Ok {
		t.Fatalf("CreateFromHDC() = %v", st)
	}
	br, _ := sw.CreateSolidFill(0xFF000000)

	// A brush id passed where a pen is expected is rejected.
	if st := sw.DrawLine(g, br, 0, 0, 5, 5); st != gdip.InvalidParameter {
		t.Errorf("DrawLine(brush as pen) = %v, want InvalidParameter", st)
	}
	if st := sw.DeletePen(br); st != gdip.InvalidParameter {
		t.Errorf("DeletePen(brush) = %v, want InvalidParameter", st)
	}
	if st := sw.DeleteBrush(br); st != gdip.Ok {
		t.Errorf("DeleteBrush() = %v, want Ok", st)
	}
	if st := sw.DeleteGraphics(g); st != gdip.Ok {
		t.Errorf("DeleteGraphics() = %v, want Ok", st)
	}
	if st := sw.DeleteGraphics(g); st != gdip.InvalidParameter {
		t.Errorf("second DeleteGraphics() = %v, want InvalidParameter", st)
	}
}

func TestDraw_AfterReleaseCanvas(t *testing.T) {
	b, sw, ref, s := newCanvas(t, 10, 10)

	p, err := b.CreatePen(gdip.Black, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer b.ReleasePen(&p)
	br, err := b.CreateBrush(gdip.Red)
	if err != nil {
		t.Fatal(err)
	}
	defer b.ReleaseBrush(&br)

	if err := sw.ReleaseCanvas(ref); err != nil {
		t.Fatalf("ReleaseCanvas() = %v", err)
	}
	if err := b.DrawLine(s, &p, 0, 0, 5, 5); !errors.Is(err, gdip.ErrInvalidParameter) {
		t.Errorf("DrawLine() after release error = %v, want ErrInvalidParameter", err)
	}
	if err := b.FillRectangle(s, &br, gdip.R(0, 0, 5, 5)); !errors.Is(err, gdip.ErrInvalidParameter) {
		t.Errorf("FillRectangle() after release error = %v, want ErrInvalidParameter", err)
	}
	if _, ok := sw.Snapshot(ref); ok {
		t.Error("Snapshot() of a released canvas succeeded")
	}
	if err := sw.ReleaseCanvas(ref); !errors.Is(err, gdip.ErrInvalidParameter) {
		t.Errorf("second ReleaseCanvas() error = %v, want ErrInvalidParameter", err)
	}
}

func TestDrawShapes_TouchPixels(t *testing.T) {
	tests := []struct {
		name string
		draw func(b *gdip.Bridge, s *gdip.Surface, p *gdip.Pen) error
		on   image.Point
		off  image.Point
	}{
		{
			name: "line",
			draw: func(b *gdip.Bridge, s *gdip.Surface, p *gdip.Pen) error {
				return b.DrawLine(s, p, 0, 20, 40, 20)
			},
			on:  image.Pt(20, 20),
			off: image.Pt(20, 5),
		},
		{
			name: "rectangle outline",
			draw: func(b *gdip.Bridge, s *gdip.Surface, p *gdip.Pen) error {
				return b.DrawRectangle(s, p, gdip.R(5, 5, 30, 30))
			},
			on:  image.Pt(5, 20),
			off: image.Pt(20, 20),
		},
		{
			name: "ellipse outline",
			draw: func(b *gdip.Bridge, s *gdip.Surface, p *gdip.Pen) error {
				return b.DrawEllipse(s, p, gdip.R(0, 0, 40, 40))
			},
			on:  image.Pt(39, 20),
			off: image.Pt(20, 20),
		},
		{
			name: "arc lower half",
			draw: func(b *gdip.Bridge, s *gdip.Surface, p *gdip.Pen) error {
				return b.DrawArc(s, p, gdip.R(0, 0, 40, 40), 0, 180)
			},
			on:  image.Pt(20, 39),
			off: image.Pt(20, 1),
		},
		{
			name: "arc upper half by negative sweep",
			draw: func(b *gdip.Bridge, s *gdip.Surface, p *gdip.Pen) error {
				return b.DrawArc(s, p, gdip.R(0, 0, 40, 40), 0, -180)
			},
			on:  image.Pt(20, 0),
			off: image.Pt(20, 39),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, sw, ref, s := newCanvas(t, 40, 40)
			p, err := b.CreatePen(gdip.Black, 3)
			if err != nil {
				t.Fatal(err)
			}
			defer b.ReleasePen(&p)

			if err := tt.draw(b, s, &p); err != nil {
				t.Fatalf("draw = %v", err)
			}
			if got := pixel(t, sw, ref, tt.on.X, tt.on.Y); got.A == 0 {
				t.Errorf("pixel %v untouched, want ink", tt.on)
			}
			if got := pixel(t, sw, ref, tt.off.X, tt.off.Y); got.A != 0 {
				t.Errorf("pixel %v = %v, want untouched", tt.off, got)
			}
		})
	}
}

func TestFillArc_PieSlice(t *testing.T) {
	b, sw, ref, s := newCanvas(t, 40, 40)
	br, err := b.CreateBrush(gdip.Blue)
	if err != nil {
		t.Fatal(err)
	}
	defer b.ReleaseBrush(&br)

	// Quarter from 0 to 90 degrees is the lower-right quadrant in y-down space.
	if err := b.FillArc(s, &br, gdip.R(0, 0, 40, 40), 0, 90); err != nil {
		t.Fatalf("FillArc() = %v", err)
	}
	if got := pixel(t, sw, ref, 28, 28); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("lower-right pixel = %v, want blue", got)
	}
	for _, pt := range []image.Point{{10, 10}, {28, 10}, {10, 28}} {
		if got := pixel(t, sw, ref, pt.X, pt.Y); got.A != 0 {
			t.Errorf("pixel %v = %v, want untouched", pt, got)
		}
	}
}

func TestFillEllipse_Center(t *testing.T) {
	b, sw, ref, s := newCanvas(t, 40, 20)
	br, err := b.CreateBrush(gdip.Green)
	if err != nil {
		t.Fatal(err)
	}
	defer b.ReleaseBrush(&br)

	if err := b.FillEllipse(s, &br, gdip.R(0, 0, 40, 20)); err != nil {
		t.Fatal(err)
	}
	if got := pixel(t, sw, ref, 20, 10); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("center = %v, want green", got)
	}
	if got := pixel(t, sw, ref, 0, 0); got.A != 0 {
		t.Errorf("corner = %v, want untouched", got)
	}
}

func TestParametric(t *testing.T) {
	tests := []struct {
		name          string
		theta, rx, ry float64
		want          float64
	}{
		{"circle is identity", 1.0, 5, 5, 1.0},
		{"axis angle unchanged", math.Pi / 2, 10, 2, math.Pi / 2},
		{"stays near theta past a turn", 2*math.Pi + 0.5, 3, 3, 2*math.Pi + 0.5},
		{"negative", -math.Pi / 2, 10, 2, -math.Pi / 2},
		{"degenerate", 0.7, 0, 4, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parametric(tt.theta, tt.rx, tt.ry); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("parametric(%v) = %v, want %v", tt.theta, got, tt.want)
			}
		})
	}

	// The point at the parametric angle lies on the ray at theta.
	theta, rx, ry := 0.6, 30.0, 10.0
	tp := parametric(theta, rx, ry)
	if got := math.Atan2(ry*math.Sin(tp), rx*math.Cos(tp)); math.Abs(got-theta) > 1e-9 {
		t.Errorf("point angle = %v, want %v", got, theta)
	}
}

func TestEncode(t *testing.T) {
	b, sw, ref, s := newCanvas(t, 8, 6)
	br, err := b.CreateBrush(gdip.Red)
	if err != nil {
		t.Fatal(err)
	}
	defer b.ReleaseBrush(&br)
	if err := b.FillRectangle(s, &br, gdip.R(0, 0, 8, 6)); err != nil {
		t.Fatal(err)
	}

	var pngBuf, bmpBuf bytes.Buffer
	if err := sw.WritePNG(ref, &pngBuf); err != nil {
		t.Fatalf("WritePNG() = %v", err)
	}
	if err := sw.WriteBMP(ref, &bmpBuf); err != nil {
		t.Fatalf("WriteBMP() = %v", err)
	}

	for name, dec := range map[string]func() (image.Image, error){
		"png": func() (image.Image, error) { return png.Decode(&pngBuf) },
		"bmp": func() (image.Image, error) { return bmp.Decode(&bmpBuf) },
	} {
		img, err := dec()
		if err != nil {
			t.Fatalf("%s decode = %v", name, err)
		}
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
			t.Errorf("%s bounds = %v, want 8x6", name, img.Bounds())
		}
		r, g, bl, _ := img.At(3, 3).RGBA()
		if r>>8 != 255 || g != 0 || bl != 0 {
			t.Errorf("%s pixel = (%d, %d, %d), want red", name, r>>8, g, bl)
		}
	}

	if err := sw.WritePNG(12345, &pngBuf); !errors.Is(err, gdip.ErrInvalidParameter) {
		t.Errorf("WritePNG(unknown) error = %v, want ErrInvalidParameter", err)
	}
}

func TestNewCanvas_InvalidSize(t *testing.T) {
	sw := New()
	if _, err := sw.NewCanvas(0, 10); !errors.Is(err, gdip.ErrInvalidParameter) {
		t.Errorf("NewCanvas(0, 10) error = %v, want ErrInvalidParameter", err)
	}
	if err := sw.ReleaseCanvas(42); !errors.Is(err, gdip.ErrInvalidParameter) {
		t.Errorf("ReleaseCanvas(unknown) error = %v, want ErrInvalidParameter", err)
	}
}
