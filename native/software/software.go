// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"image"
	"image/color"
	"io"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"

	"github.com/gogpu/gdip"
	"github.com/gogpu/gdip/internal/handles"
)

// Name is the registry name of the software backend.
const Name = "software"

// Canvas is an in-memory drawing surface. Its SurfaceRef plays the role an
// HDC plays for GDI+.
type Canvas struct {
	mu       sync.Mutex
	dc       *gg.Context
	released bool
}

type graphics struct {
	canvas *Canvas
}

type pen struct {
	color color.NRGBA
	width float64
}

type brush struct {
	color color.NRGBA
}

type token struct{}

// Backend is a gdip.Native that renders with gg.
//
// All objects (canvases, graphics, pens, brushes, start-up tokens) live in
// one id table, so an id handed to the wrong kind of call is rejected with
// InvalidParameter rather than misinterpreted.
type Backend struct {
	objects handles.Table[any]
	started atomic.Int64
}

// New returns a software backend with no canvases and no start-up token.
func New() *Backend {
	return &Backend{}
}

// Name implements gdip.Native.
func (b *Backend) Name() string { return Name }

// NewCanvas creates a transparent width x height canvas and returns its
// reference for [gdip.Bridge.BindSurface].
func (b *Backend) NewCanvas(width, height int) (gdip.SurfaceRef, error) {
	if width <= 0 || height <= 0 {
		return 0, &gdip.Error{Op: "NewCanvas", Kind: gdip.KindInvalidParameter, Status: gdip.InvalidParameter}
	}
	c := &Canvas{dc: gg.NewContext(width, height)}
	ref := gdip.SurfaceRef(b.objects.Register(c))
	gdip.Logger().Debug("software: canvas created", "ref", uintptr(ref), "width", width, "height", height)
	return ref, nil
}

// ReleaseCanvas discards a canvas. Graphics still bound to it stay valid
// handles, but every drawing call through them fails with InvalidParameter.
func (b *Backend) ReleaseCanvas(ref gdip.SurfaceRef) error {
	c, ok := lookup[*Canvas](b, gdip.Object(ref))
	if !ok {
		return &gdip.Error{Op: "ReleaseCanvas", Kind: gdip.KindInvalidParameter, Status: gdip.InvalidParameter}
	}
	b.objects.Unregister(uintptr(ref))
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released = true
	return c.dc.Close()
}

// Snapshot returns a copy of the canvas pixels.
func (b *Backend) Snapshot(ref gdip.SurfaceRef) (*image.RGBA, bool) {
	c, ok := lookup[*Canvas](b, gdip.Object(ref))
	if !ok {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	img := c.dc.Image()
	out := image.NewRGBA(img.Bounds())
	for y := out.Rect.Min.Y; y < out.Rect.Max.Y; y++ {
		for x := out.Rect.Min.X; x < out.Rect.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out, true
}

// WritePNG encodes the canvas as PNG.
func (b *Backend) WritePNG(ref gdip.SurfaceRef, w io.Writer) error {
	c, ok := lookup[*Canvas](b, gdip.Object(ref))
	if !ok {
		return &gdip.Error{Op: "WritePNG", Kind: gdip.KindInvalidParameter, Status: gdip.InvalidParameter}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dc.EncodePNG(w)
}

// WriteBMP encodes the canvas as a Windows bitmap.
func (b *Backend) WriteBMP(ref gdip.SurfaceRef, w io.Writer) error {
	c, ok := lookup[*Canvas](b, gdip.Object(ref))
	if !ok {
		return &gdip.Error{Op: "WriteBMP", Kind: gdip.KindInvalidParameter, Status: gdip.InvalidParameter}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return bmp.Encode(w, c.dc.Image())
}

func lookup[T any](b *Backend, o gdip.Object) (T, bool) {
	v, ok := b.objects.Lookup(uintptr(o))
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func release[T any](b *Backend, o gdip.Object) gdip.Status {
	if _, ok := lookup[T](b, o); !ok {
		return gdip.InvalidParameter
	}
	b.objects.Unregister(uintptr(o))
	return gdip.Ok
}

// Startup implements gdip.Native.
func (b *Backend) Startup() (gdip.Object, gdip.Status) {
	id := b.objects.Register(token{})
	b.started.Add(1)
	return gdip.Object(id), gdip.Ok
}

// Shutdown implements gdip.Native. Unknown tokens are ignored.
func (b *Backend) Shutdown(t gdip.Object) {
	if release[token](b, t) == gdip.Ok {
		b.started.Add(-1)
	}
}

func (b *Backend) ready() bool { return b.started.Load() > 0 }

// CreateFromHDC implements gdip.Native; ref must come from NewCanvas.
func (b *Backend) CreateFromHDC(ref gdip.SurfaceRef) (gdip.Object, gdip.Status) {
	if !b.ready() {
		return 0, gdip.GdiplusNotInitialized
	}
	c, ok := lookup[*Canvas](b, gdip.Object(ref))
	if !ok {
		return 0, gdip.OutOfMemory
	}
	return gdip.Object(b.objects.Register(&graphics{canvas: c})), gdip.Ok
}

// DeleteGraphics implements gdip.Native.
func (b *Backend) DeleteGraphics(g gdip.Object) gdip.Status {
	return release[*graphics](b, g)
}

// CreatePen implements gdip.Native.
func (b *Backend) CreatePen(argb uint32, width float32) (gdip.Object, gdip.Status) {
	if !b.ready() {
		return 0, gdip.GdiplusNotInitialized
	}
	if width < 0 {
		return 0, gdip.InvalidParameter
	}
	return gdip.Object(b.objects.Register(pen{color: unpack(argb), width: float64(width)})), gdip.Ok
}

// DeletePen implements gdip.Native.
func (b *Backend) DeletePen(p gdip.Object) gdip.Status {
	return release[pen](b, p)
}

// CreateSolidFill implements gdip.Native.
func (b *Backend) CreateSolidFill(argb uint32) (gdip.Object, gdip.Status) {
	if !b.ready() {
		return 0, gdip.GdiplusNotInitialized
	}
	return gdip.Object(b.objects.Register(brush{color: unpack(argb)})), gdip.Ok
}

// DeleteBrush implements gdip.Native.
func (b *Backend) DeleteBrush(br gdip.Object) gdip.Status {
	return release[brush](b, br)
}

// unpack splits a GDI+ 0xAARRGGBB color.
func unpack(argb uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

var _ gdip.Native = (*Backend)(nil)
