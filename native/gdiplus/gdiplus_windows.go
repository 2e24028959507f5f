// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows && (amd64 || 386)

package gdiplus

import (
	"math"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gogpu/gdip"
	"github.com/gogpu/gdip/native"
)

var (
	modgdiplus = windows.NewLazySystemDLL("gdiplus.dll")

	procGdiplusStartup      = modgdiplus.NewProc("GdiplusStartup")
	procGdiplusShutdown     = modgdiplus.NewProc("GdiplusShutdown")
	procGdipCreateFromHDC   = modgdiplus.NewProc("GdipCreateFromHDC")
	procGdipDeleteGraphics  = modgdiplus.NewProc("GdipDeleteGraphics")
	procGdipCreatePen1      = modgdiplus.NewProc("GdipCreatePen1")
	procGdipDeletePen       = modgdiplus.NewProc("GdipDeletePen")
	procGdipCreateSolidFill = modgdiplus.NewProc("GdipCreateSolidFill")
	procGdipDeleteBrush     = modgdiplus.NewProc("GdipDeleteBrush")
	procGdipDrawLineI       = modgdiplus.NewProc("GdipDrawLineI")
	procGdipDrawRectangleI  = modgdiplus.NewProc("GdipDrawRectangleI")
	procGdipDrawEllipseI    = modgdiplus.NewProc("GdipDrawEllipseI")
	procGdipDrawArcI        = modgdiplus.NewProc("GdipDrawArcI")
	procGdipFillRectangleI  = modgdiplus.NewProc("GdipFillRectangleI")
	procGdipFillEllipseI    = modgdiplus.NewProc("GdipFillEllipseI")
	procGdipFillPieI        = modgdiplus.NewProc("GdipFillPieI")
)

func init() {
	native.Register(Name, func() gdip.Native {
		if err := Load(); err != nil {
			gdip.Logger().Info("gdiplus: unavailable", "err", err)
			return nil
		}
		return New()
	})
}

// Load checks that gdiplus.dll and every entry point the backend uses can be
// resolved.
func Load() error {
	if err := modgdiplus.Load(); err != nil {
		return err
	}
	for _, p := range []*windows.LazyProc{
		procGdiplusStartup, procGdiplusShutdown,
		procGdipCreateFromHDC, procGdipDeleteGraphics,
		procGdipCreatePen1, procGdipDeletePen,
		procGdipCreateSolidFill, procGdipDeleteBrush,
		procGdipDrawLineI, procGdipDrawRectangleI, procGdipDrawEllipseI, procGdipDrawArcI,
		procGdipFillRectangleI, procGdipFillEllipseI, procGdipFillPieI,
	} {
		if err := p.Find(); err != nil {
			return err
		}
	}
	return nil
}

// startupInput is GdiplusStartupInput.
type startupInput struct {
	GdiplusVersion           uint32
	DebugEventCallback       uintptr
	SuppressBackgroundThread int32
	SuppressExternalCodecs   int32
}

// unitWorld is the GpUnit pens are created in.
const unitWorld = 0

// status converts a flat API return value. Calls that cannot be resolved
// panic inside LazyProc.Call and are reported by the bridge as exceptions.
func status(r uintptr) gdip.Status {
	return gdip.Status(uint32(r))
}

// f32 passes a REAL argument. On amd64 the syscall path mirrors the first
// four arguments into XMM registers and on 386 every argument is a stack
// slot, so the bit pattern is enough. arm64 does neither; see the build
// constraint.
func f32(v float32) uintptr {
	return uintptr(math.Float32bits(v))
}

func i32(v int32) uintptr {
	return uintptr(v)
}

// Startup implements gdip.Native.
func (b *Backend) Startup() (gdip.Object, gdip.Status) {
	var token uintptr
	in := startupInput{GdiplusVersion: 1}
	r, _, _ := procGdiplusStartup.Call(
		uintptr(unsafe.Pointer(&token)),
		uintptr(unsafe.Pointer(&in)),
		0,
	)
	return gdip.Object(token), status(r)
}

// Shutdown implements gdip.Native.
func (b *Backend) Shutdown(token gdip.Object) {
	procGdiplusShutdown.Call(uintptr(token))
}

// CreateFromHDC implements gdip.Native.
func (b *Backend) CreateFromHDC(ref gdip.SurfaceRef) (gdip.Object, gdip.Status) {
	var g uintptr
	r, _, _ := procGdipCreateFromHDC.Call(uintptr(ref), uintptr(unsafe.Pointer(&g)))
	return gdip.Object(g), status(r)
}

// DeleteGraphics implements gdip.Native.
func (b *Backend) DeleteGraphics(g gdip.Object) gdip.Status {
	r, _, _ := procGdipDeleteGraphics.Call(uintptr(g))
	return status(r)
}

// CreatePen implements gdip.Native.
func (b *Backend) CreatePen(argb uint32, width float32) (gdip.Object, gdip.Status) {
	var p uintptr
	r, _, _ := procGdipCreatePen1.Call(
		uintptr(argb), f32(width), unitWorld, uintptr(unsafe.Pointer(&p)))
	return gdip.Object(p), status(r)
}

// DeletePen implements gdip.Native.
func (b *Backend) DeletePen(p gdip.Object) gdip.Status {
	r, _, _ := procGdipDeletePen.Call(uintptr(p))
	return status(r)
}

// CreateSolidFill implements gdip.Native.
func (b *Backend) CreateSolidFill(argb uint32) (gdip.Object, gdip.Status) {
	var br uintptr
	r, _, _ := procGdipCreateSolidFill.Call(uintptr(argb), uintptr(unsafe.Pointer(&br)))
	return gdip.Object(br), status(r)
}

// DeleteBrush implements gdip.Native.
func (b *Backend) DeleteBrush(br gdip.Object) gdip.Status {
	r, _, _ := procGdipDeleteBrush.Call(uintptr(br))
	return status(r)
}

// DrawLine implements gdip.Native.
func (b *Backend) DrawLine(g, p gdip.Object, x1, y1, x2, y2 int32) gdip.Status {
	r, _, _ := procGdipDrawLineI.Call(uintptr(g), uintptr(p), i32(x1), i32(y1), i32(x2), i32(y2))
	return status(r)
}

// DrawRectangle implements gdip.Native.
func (b *Backend) DrawRectangle(g, p gdip.Object, x, y, w, h int32) gdip.Status {
	r, _, _ := procGdipDrawRectangleI.Call(uintptr(g), uintptr(p), i32(x), i32(y), i32(w), i32(h))
	return status(r)
}

// DrawEllipse implements gdip.Native.
func (b *Backend) DrawEllipse(g, p gdip.Object, x, y, w, h int32) gdip.Status {
	r, _, _ := procGdipDrawEllipseI.Call(uintptr(g), uintptr(p), i32(x), i32(y), i32(w), i32(h))
	return status(r)
}

// DrawArc implements gdip.Native.
func (b *Backend) DrawArc(g, p gdip.Object, x, y, w, h int32, start, sweep float32) gdip.Status {
	r, _, _ := procGdipDrawArcI.Call(uintptr(g), uintptr(p),
		i32(x), i32(y), i32(w), i32(h), f32(start), f32(sweep))
	return status(r)
}

// FillRectangle implements gdip.Native.
func (b *Backend) FillRectangle(g, br gdip.Object, x, y, w, h int32) gdip.Status {
	r, _, _ := procGdipFillRectangleI.Call(uintptr(g), uintptr(br), i32(x), i32(y), i32(w), i32(h))
	return status(r)
}

// FillEllipse implements gdip.Native.
func (b *Backend) FillEllipse(g, br gdip.Object, x, y, w, h int32) gdip.Status {
	r, _, _ := procGdipFillEllipseI.Call(uintptr(g), uintptr(br), i32(x), i32(y), i32(w), i32(h))
	return status(r)
}

// FillPie implements gdip.Native.
func (b *Backend) FillPie(g, br gdip.Object, x, y, w, h int32, start, sweep float32) gdip.Status {
	r, _, _ := procGdipFillPieI.Call(uintptr(g), uintptr(br),
		i32(x), i32(y), i32(w), i32(h), f32(start), f32(sweep))
	return status(r)
}

var _ gdip.Native = (*Backend)(nil)
