// Command gdipbridge builds the bridge as a C shared library:
//
//	go build -buildmode=c-shared -o gdipbridge.dll ./cmd/gdipbridge
//
// The generated header declares the functions below. The handle structs are
// declared in the preamble; each is {void *native; ptrdiff_t last_status},
// the same layout as the corresponding gdip handle, and is reinterpreted as
// such in place.
package main

/*
#include <stddef.h>
#include <stdint.h>

typedef struct {
  uint8_t r;
  uint8_t g;
  uint8_t b;
  uint8_t a;
} GDIPColor;

typedef struct {
  void *native_token;
  ptrdiff_t last_status;
} GDIPStartupToken;

typedef struct {
  void *native_graphics;
  ptrdiff_t last_status;
} GDIPGraphics;

typedef struct {
  void *native_pen;
  ptrdiff_t last_status;
} GDIPPen;

typedef struct {
  void *native_brush;
  ptrdiff_t last_status;
} GDIPBrush;

typedef void *GDIPSurfaceRef;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/gogpu/gdip"
	"github.com/gogpu/gdip/capi"
)

func main() {}

func color(c C.GDIPColor) gdip.Color {
	return gdip.Color{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b), A: uint8(c.a)}
}

func boolInt(ok bool) C.int {
	if ok {
		return 1
	}
	return 0
}

// Error strings handed to C are allocated once per message and never freed.
var (
	messagesMu sync.Mutex
	messages   = make(map[string]*C.char)
)

//export err_pointer
func err_pointer() *C.char {
	msg := capi.ErrPointer()
	messagesMu.Lock()
	defer messagesMu.Unlock()
	p, ok := messages[msg]
	if !ok {
		p = C.CString(msg)
		messages[msg] = p
	}
	return p
}

//export initialize_gdiplus
func initialize_gdiplus(token *C.GDIPStartupToken) C.int {
	return boolInt(capi.InitializeGdiplus((*gdip.StartupToken)(unsafe.Pointer(token))))
}

//export done_gdiplus
func done_gdiplus(token C.GDIPStartupToken) {
	capi.DoneGdiplus(*(*gdip.StartupToken)(unsafe.Pointer(&token)))
}

//export from_hdc
func from_hdc(hdc C.GDIPSurfaceRef, graphics *C.GDIPGraphics) C.int {
	return boolInt(capi.FromHDC(gdip.SurfaceRef(uintptr(hdc)), (*gdip.Surface)(unsafe.Pointer(graphics))))
}

//export done_graphics
func done_graphics(graphics C.GDIPGraphics) {
	capi.DoneGraphics(*(*gdip.Surface)(unsafe.Pointer(&graphics)))
}

//export create_pen
func create_pen(c C.GDIPColor, width C.uint32_t, pen *C.GDIPPen) C.int {
	return boolInt(capi.CreatePen(color(c), uint32(width), (*gdip.Pen)(unsafe.Pointer(pen))))
}

//export done_pen
func done_pen(pen C.GDIPPen) {
	capi.DonePen(*(*gdip.Pen)(unsafe.Pointer(&pen)))
}

//export create_brush
func create_brush(c C.GDIPColor, brush *C.GDIPBrush) C.int {
	return boolInt(capi.CreateBrush(color(c), (*gdip.Brush)(unsafe.Pointer(brush))))
}

//export done_brush
func done_brush(brush C.GDIPBrush) {
	capi.DoneBrush(*(*gdip.Brush)(unsafe.Pointer(&brush)))
}

func surface(g *C.GDIPGraphics) *gdip.Surface {
	return (*gdip.Surface)(unsafe.Pointer(g))
}

func pen(p *C.GDIPPen) *gdip.Pen {
	return (*gdip.Pen)(unsafe.Pointer(p))
}

func brush(b *C.GDIPBrush) *gdip.Brush {
	return (*gdip.Brush)(unsafe.Pointer(b))
}

//export draw_line
func draw_line(graphics *C.GDIPGraphics, p *C.GDIPPen, x1, y1, x2, y2 C.int) C.int {
	return boolInt(capi.DrawLine(surface(graphics), pen(p), int32(x1), int32(y1), int32(x2), int32(y2)))
}

//export draw_rectangle
func draw_rectangle(graphics *C.GDIPGraphics, p *C.GDIPPen, x, y C.int, width, height C.uint) C.int {
	return boolInt(capi.DrawRectangle(surface(graphics), pen(p), int32(x), int32(y), uint32(width), uint32(height)))
}

//export draw_arc
func draw_arc(graphics *C.GDIPGraphics, p *C.GDIPPen, rectleft, recttop C.int, rectwidth, rectheight C.uint, startAngle, endAngle C.float) C.int {
	return boolInt(capi.DrawArc(surface(graphics), pen(p), int32(rectleft), int32(recttop),
		uint32(rectwidth), uint32(rectheight), float32(startAngle), float32(endAngle)))
}

//export draw_ellipse
func draw_ellipse(graphics *C.GDIPGraphics, p *C.GDIPPen, rectleft, recttop C.int, rectwidth, rectheight C.uint) C.int {
	return boolInt(capi.DrawEllipse(surface(graphics), pen(p), int32(rectleft), int32(recttop),
		uint32(rectwidth), uint32(rectheight)))
}

//export fill_rectangle
func fill_rectangle(graphics *C.GDIPGraphics, b *C.GDIPBrush, x, y C.int, width, height C.uint) C.int {
	return boolInt(capi.FillRectangle(surface(graphics), brush(b), int32(x), int32(y), uint32(width), uint32(height)))
}

//export fill_arc
func fill_arc(graphics *C.GDIPGraphics, b *C.GDIPBrush, rectleft, recttop C.int, rectwidth, rectheight C.uint, startAngle, endAngle C.float) C.int {
	return boolInt(capi.FillArc(surface(graphics), brush(b), int32(rectleft), int32(recttop),
		uint32(rectwidth), uint32(rectheight), float32(startAngle), float32(endAngle)))
}

//export fill_ellipse
func fill_ellipse(graphics *C.GDIPGraphics, b *C.GDIPBrush, rectleft, recttop C.int, rectwidth, rectheight C.uint) C.int {
	return boolInt(capi.FillEllipse(surface(graphics), brush(b), int32(rectleft), int32(recttop),
		uint32(rectwidth), uint32(rectheight)))
}

//export create_canvas
func create_canvas(width, height C.uint, ref *C.GDIPSurfaceRef) C.int {
	return boolInt(capi.CreateCanvas(uint32(width), uint32(height), (*gdip.SurfaceRef)(unsafe.Pointer(ref))))
}

//export save_canvas
func save_canvas(ref C.GDIPSurfaceRef, path *C.char) C.int {
	return boolInt(capi.SaveCanvas(gdip.SurfaceRef(uintptr(ref)), C.GoString(path)))
}

//export done_canvas
func done_canvas(ref C.GDIPSurfaceRef) {
	capi.DoneCanvas(gdip.SurfaceRef(uintptr(ref)))
}
