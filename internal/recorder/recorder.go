// Package recorder provides a gdip.Native that records every forwarded call.
//
// Tests use it to check exactly which arguments the bridge hands to the
// native library, and to script native failures.
package recorder

import (
	"sync"

	"github.com/gogpu/gdip"
)

// Call is one forwarded native call.
type Call struct {
	Method string
	Args   []any
}

// Native is a recording gdip.Native. The zero value is not usable; call New.
type Native struct {
	mu     sync.Mutex
	calls  []Call
	fail   map[string]gdip.Status
	panics map[string]any
	nextID gdip.Object
	live   map[gdip.Object]string
}

// New returns an empty recorder.
func New() *Native {
	return &Native{
		fail:   make(map[string]gdip.Status),
		panics: make(map[string]any),
		live:   make(map[gdip.Object]string),
	}
}

// Fail makes every later call to method return s.
func (n *Native) Fail(method string, s gdip.Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fail[method] = s
}

// Panic makes every later call to method panic with v.
func (n *Native) Panic(method string, v any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.panics[method] = v
}

// Clear drops scripted failures and recorded calls.
func (n *Native) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = nil
	clear(n.fail)
	clear(n.panics)
}

// Calls returns a copy of the recorded calls.
func (n *Native) Calls() []Call {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Call(nil), n.calls...)
}

// Last returns the most recent call, or the zero Call.
func (n *Native) Last() Call {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.calls) == 0 {
		return Call{}
	}
	return n.calls[len(n.calls)-1]
}

// Live returns the number of objects created and not yet deleted.
func (n *Native) Live() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.live)
}

// record logs the call and returns its scripted status.
func (n *Native) record(method string, args ...any) gdip.Status {
	n.mu.Lock()
	n.calls = append(n.calls, Call{Method: method, Args: args})
	v, doPanic := n.panics[method]
	s := n.fail[method]
	n.mu.Unlock()
	if doPanic {
		panic(v)
	}
	return s
}

func (n *Native) create(kind, method string, args ...any) (gdip.Object, gdip.Status) {
	if s := n.record(method, args...); s != gdip.Ok {
		return 0, s
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	n.live[n.nextID] = kind
	return n.nextID, gdip.Ok
}

func (n *Native) remove(method string, o gdip.Object) gdip.Status {
	s := n.record(method, o)
	n.mu.Lock()
	delete(n.live, o)
	n.mu.Unlock()
	return s
}

func (n *Native) Name() string { return "recorder" }

func (n *Native) Startup() (gdip.Object, gdip.Status) {
	return n.create("token", "Startup")
}

func (n *Native) Shutdown(token gdip.Object) {
	n.remove("Shutdown", token)
}

func (n *Native) CreateFromHDC(ref gdip.SurfaceRef) (gdip.Object, gdip.Status) {
	return n.create("graphics", "CreateFromHDC", ref)
}

func (n *Native) DeleteGraphics(g gdip.Object) gdip.Status {
	return n.remove("DeleteGraphics", g)
}

func (n *Native) CreatePen(argb uint32, width float32) (gdip.Object, gdip.Status) {
	return n.create("pen", "CreatePen", argb, width)
}

func (n *Native) DeletePen(p gdip.Object) gdip.Status {
	return n.remove("DeletePen", p)
}

func (n *Native) CreateSolidFill(argb uint32) (gdip.Object, gdip.Status) {
	return n.create("brush", "CreateSolidFill", argb)
}

func (n *Native) DeleteBrush(b gdip.Object) gdip.Status {
	return n.remove("DeleteBrush", b)
}

func (n *Native) DrawLine(g, pen gdip.Object, x1, y1, x2, y2 int32) gdip.Status {
	return n.record("DrawLine", g, pen, x1, y1, x2, y2)
}

func (n *Native) DrawRectangle(g, pen gdip.Object, x, y, w, h int32) gdip.Status {
	return n.record("DrawRectangle", g, pen, x, y, w, h)
}

func (n *Native) DrawEllipse(g, pen gdip.Object, x, y, w, h int32) gdip.Status {
	return n.record("DrawEllipse", g, pen, x, y, w, h)
}

func (n *Native) DrawArc(g, pen gdip.Object, x, y, w, h int32, start, sweep float32) gdip.Status {
	return n.record("DrawArc", g, pen, x, y, w, h, start, sweep)
}

func (n *Native) FillRectangle(g, brush gdip.Object, x, y, w, h int32) gdip.Status {
	return n.record("FillRectangle", g, brush, x, y, w, h)
}

func (n *Native) FillEllipse(g, brush gdip.Object, x, y, w, h int32) gdip.Status {
	return n.record("FillEllipse", g, brush, x, y, w, h)
}

func (n *Native) FillPie(g, brush gdip.Object, x, y, w, h int32, start, sweep float32) gdip.Status {
	return n.record("FillPie", g, brush, x, y, w, h, start, sweep)
}

var _ gdip.Native = (*Native)(nil)
