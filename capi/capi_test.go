package capi

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/gdip"
	"github.com/gogpu/gdip/internal/recorder"
	"github.com/gogpu/gdip/native/software"
)

const nullMessage = "output pointer is null"

// useRecorder installs a fresh recorder and clears the error slot.
func useRecorder(t *testing.T) *recorder.Native {
	t.Helper()
	Reset()
	rec := recorder.New()
	Use(rec)
	t.Cleanup(Reset)
	return rec
}

// start initializes the library through the flat layer.
func start(t *testing.T) gdip.StartupToken {
	t.Helper()
	var tok gdip.StartupToken
	if !InitializeGdiplus(&tok) {
		t.Fatalf("InitializeGdiplus() failed: %s", ErrPointer())
	}
	t.Cleanup(func() { DoneGdiplus(tok) })
	return tok
}

func TestHandleLayout(t *testing.T) {
	word := unsafe.Sizeof(uintptr(0))
	sizes := map[string]uintptr{
		"StartupToken": unsafe.Sizeof(gdip.StartupToken{}),
		"Surface":      unsafe.Sizeof(gdip.Surface{}),
		"Pen":          unsafe.Sizeof(gdip.Pen{}),
		"Brush":        unsafe.Sizeof(gdip.Brush{}),
	}
	for name, size := range sizes {
		if size != 2*word {
			t.Errorf("sizeof(%s) = %d, want %d", name, size, 2*word)
		}
	}
	if unsafe.Sizeof(gdip.Color{}) != 4 {
		t.Errorf("sizeof(Color) = %d, want 4", unsafe.Sizeof(gdip.Color{}))
	}
	if unsafe.Sizeof(gdip.SurfaceRef(0)) != word {
		t.Errorf("sizeof(SurfaceRef) = %d, want %d", unsafe.Sizeof(gdip.SurfaceRef(0)), word)
	}
}

func TestErrPointer_NoFailureYet(t *testing.T) {
	useRecorder(t)
	if got := ErrPointer(); got != "no error" {
		t.Errorf("ErrPointer() = %q, want \"no error\"", got)
	}
	if err := LastError(); err != nil {
		t.Errorf("LastError() = %v, want nil", err)
	}
}

func TestCreatePen_ReleaseLeavesSlotUntouched(t *testing.T) {
	rec := useRecorder(t)
	start(t)

	// Leave a known failure in the slot first.
	if CreateBrush(gdip.Black, nil) {
		t.Fatal("CreateBrush(nil) succeeded")
	}
	before := LastError()

	for _, width := range []uint32{0, 1, 255, 1 << 16} {
		var p gdip.Pen
		if !CreatePen(gdip.RGBA(9, 8, 7, 6), width, &p) {
			t.Fatalf("CreatePen(width=%d) failed: %s", width, ErrPointer())
		}
		DonePen(p)
	}
	if LastError() != before {
		t.Errorf("slot changed by successful calls: %v -> %v", before, LastError())
	}
	// Only the start-up token is still alive.
	if rec.Live() != 1 {
		t.Errorf("Live() = %d, want 1", rec.Live())
	}
}

func TestCreate_NullOutput(t *testing.T) {
	tests := []struct {
		name string
		call func() bool
	}{
		{"InitializeGdiplus", func() bool { return InitializeGdiplus(nil) }},
		{"FromHDC", func() bool { return FromHDC(1, nil) }},
		{"CreatePen", func() bool { return CreatePen(gdip.RGBA(0, 0, 0, 0), 1, nil) }},
		{"CreateBrush", func() bool { return CreateBrush(gdip.Red, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := useRecorder(t)
			if tt.call() {
				t.Fatal("call with nil output succeeded")
			}
			if got := ErrPointer(); got != nullMessage {
				t.Errorf("ErrPointer() = %q, want %q", got, nullMessage)
			}
			if !errors.Is(LastError(), gdip.ErrNullPointer) {
				t.Errorf("LastError() = %v, want ErrNullPointer", LastError())
			}
			// Nothing reached the native library.
			if n := len(rec.Calls()); n != 0 {
				t.Errorf("%d native calls made, want 0", n)
			}
		})
	}
}

func TestSlot_OverwrittenOnlyByFailure(t *testing.T) {
	rec := useRecorder(t)
	start(t)

	rec.Panic("CreatePen", "boom")
	var p gdip.Pen
	if CreatePen(gdip.Black, 1, &p) {
		t.Fatal("CreatePen succeeded despite native panic")
	}
	if got := ErrPointer(); got != "GDI+ threw an exception" {
		t.Fatalf("ErrPointer() = %q, want exception message", got)
	}

	var br gdip.Brush
	if !CreateBrush(gdip.White, &br) {
		t.Fatalf("CreateBrush failed: %s", ErrPointer())
	}
	DoneBrush(br)
	if got := ErrPointer(); got != "GDI+ threw an exception" {
		t.Errorf("ErrPointer() after success = %q, want previous failure kept", got)
	}

	rec.Fail("CreateSolidFill", gdip.GenericError)
	if CreateBrush(gdip.White, &br) {
		t.Fatal("CreateBrush succeeded despite native status")
	}
	if got := ErrPointer(); got != "GDI+ function returned non-OK status" {
		t.Errorf("ErrPointer() = %q, want status message", got)
	}
	if br.Status() != gdip.GenericError {
		t.Errorf("brush status = %v, want GenericError", br.Status())
	}
}

func TestInitialize_StatusFailure(t *testing.T) {
	rec := useRecorder(t)
	rec.Fail("Startup", gdip.GenericError)

	var tok gdip.StartupToken
	if InitializeGdiplus(&tok) {
		t.Fatal("InitializeGdiplus succeeded")
	}
	if got := ErrPointer(); got != "GDI+ function returned non-OK status" {
		t.Errorf("ErrPointer() = %q", got)
	}
	if tok.Status() != gdip.GenericError {
		t.Errorf("token status = %v, want GenericError", tok.Status())
	}
}

func TestDraw_ForwardsSweep(t *testing.T) {
	rec := useRecorder(t)
	start(t)

	var g gdip.Surface
	var p gdip.Pen
	var br gdip.Brush
	if !FromHDC(0x10, &g) || !CreatePen(gdip.Black, 1, &p) || !CreateBrush(gdip.Black, &br) {
		t.Fatalf("setup failed: %s", ErrPointer())
	}
	defer DoneGraphics(g)
	defer DonePen(p)
	defer DoneBrush(br)

	rec.Clear()
	if !DrawArc(&g, &p, 1, 2, 30, 40, 200, 20) {
		t.Fatalf("DrawArc failed: %s", ErrPointer())
	}
	if !FillArc(&g, &br, 1, 2, 30, 40, -45, 45) {
		t.Fatalf("FillArc failed: %s", ErrPointer())
	}

	var got []float32
	for _, c := range rec.Calls() {
		got = append(got, c.Args[len(c.Args)-2].(float32), c.Args[len(c.Args)-1].(float32))
	}
	want := []float32{200, -180, -45, 90}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("start/sweep mismatch (-got +want):\n%s", diff)
	}
}

func TestDraw_NullHandles(t *testing.T) {
	useRecorder(t)
	start(t)

	var g gdip.Surface
	var p gdip.Pen
	var br gdip.Brush
	calls := map[string]func() bool{
		"DrawLine":      func() bool { return DrawLine(nil, &p, 0, 0, 1, 1) },
		"DrawRectangle": func() bool { return DrawRectangle(&g, nil, 0, 0, 1, 1) },
		"DrawArc":       func() bool { return DrawArc(nil, nil, 0, 0, 1, 1, 0, 90) },
		"DrawEllipse":   func() bool { return DrawEllipse(nil, &p, 0, 0, 1, 1) },
		"FillRectangle": func() bool { return FillRectangle(&g, nil, 0, 0, 1, 1) },
		"FillArc":       func() bool { return FillArc(nil, &br, 0, 0, 1, 1, 0, 90) },
		"FillEllipse":   func() bool { return FillEllipse(&g, nil, 0, 0, 1, 1) },
	}
	for name, call := range calls {
		if call() {
			t.Errorf("%s with nil handle succeeded", name)
			continue
		}
		if got := ErrPointer(); got != nullMessage {
			t.Errorf("%s: ErrPointer() = %q, want %q", name, got, nullMessage)
		}
	}
}

func TestDraw_FailureRecorded(t *testing.T) {
	rec := useRecorder(t)
	start(t)

	var g gdip.Surface
	var p gdip.Pen
	if !FromHDC(0x10, &g) || !CreatePen(gdip.Black, 1, &p) {
		t.Fatalf("setup failed: %s", ErrPointer())
	}
	rec.Fail("DrawEllipse", gdip.OutOfMemory)
	if DrawEllipse(&g, &p, 0, 0, 5, 5) {
		t.Fatal("DrawEllipse succeeded")
	}
	if !errors.Is(LastError(), gdip.ErrOutOfMemory) {
		t.Errorf("LastError() = %v, want ErrOutOfMemory", LastError())
	}
	if g.Status() != gdip.OutOfMemory {
		t.Errorf("surface status = %v, want OutOfMemory", g.Status())
	}
}

func TestScenario_Software(t *testing.T) {
	Reset()
	sw := software.New()
	Use(sw)
	t.Cleanup(Reset)
	start(t)

	var ref gdip.SurfaceRef
	if !CreateCanvas(10, 10, &ref) {
		t.Fatalf("CreateCanvas failed: %s", ErrPointer())
	}
	defer DoneCanvas(ref)

	var g gdip.Surface
	if !FromHDC(ref, &g) {
		t.Fatalf("FromHDC failed: %s", ErrPointer())
	}
	defer DoneGraphics(g)

	var br gdip.Brush
	if !CreateBrush(gdip.RGBA(255, 0, 0, 255), &br) {
		t.Fatalf("CreateBrush failed: %s", ErrPointer())
	}
	if !FillRectangle(&g, &br, 0, 0, 10, 10) {
		t.Fatalf("FillRectangle failed: %s", ErrPointer())
	}
	DoneBrush(br)
	if err := LastError(); err != nil {
		t.Errorf("LastError() = %v after scenario, want nil", err)
	}

	img, ok := sw.Snapshot(ref)
	if !ok {
		t.Fatal("Snapshot failed")
	}
	if r, _, _, a := img.At(5, 5).RGBA(); r != 0xffff || a != 0xffff {
		t.Errorf("pixel = %v, want opaque red", img.At(5, 5))
	}

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.bmp"} {
		path := filepath.Join(dir, name)
		if !SaveCanvas(ref, path) {
			t.Fatalf("SaveCanvas(%s) failed: %v", name, LastError())
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if SaveCanvas(ref, filepath.Join(dir, "missing", "out.png")) {
		t.Error("SaveCanvas into a missing directory succeeded")
	}
	if !errors.Is(LastError(), gdip.ErrStatus) {
		t.Errorf("LastError() = %v, want ErrStatus", LastError())
	}
}

func TestCreateCanvas_NeedsSoftware(t *testing.T) {
	useRecorder(t)

	var ref gdip.SurfaceRef
	if CreateCanvas(4, 4, &ref) {
		t.Fatal("CreateCanvas succeeded on the recorder backend")
	}
	if !errors.Is(LastError(), gdip.ErrUnsupported) {
		t.Errorf("LastError() = %v, want ErrUnsupported", LastError())
	}
	if CreateCanvas(4, 4, nil) {
		t.Fatal("CreateCanvas(nil) succeeded")
	}
	if got := ErrPointer(); got != nullMessage {
		t.Errorf("ErrPointer() = %q, want %q", got, nullMessage)
	}
}

func TestBridgeFromEnvironment(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("GDIP_BACKEND", "software")
	t.Setenv("GDIP_LOG_LEVEL", "off")

	tok := start(t)
	if !tok.Valid() {
		t.Fatal("token not valid")
	}
	b, err := bridge()
	if err != nil {
		t.Fatal(err)
	}
	if name := b.Native().Name(); name != software.Name {
		t.Errorf("backend = %q, want %q", name, software.Name)
	}
}

func TestBridgeFromEnvironment_BadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		op   string
	}{
		{"unknown backend", map[string]string{"GDIP_BACKEND": "metal"}, "NewNative"},
		{"bad log level", map[string]string{"GDIP_BACKEND": "software", "GDIP_LOG_LEVEL": "verbose"}, "NewLogger"},
		{"bad log format", map[string]string{"GDIP_LOG_LEVEL": "info", "GDIP_LOG_FORMAT": "xml"}, "NewLogger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var tok gdip.StartupToken
			if InitializeGdiplus(&tok) {
				t.Fatal("InitializeGdiplus succeeded with a bad configuration")
			}
			if got, want := ErrPointer(), "bridge configuration is invalid"; got != want {
				t.Errorf("ErrPointer() = %q, want %q", got, want)
			}
			var e *gdip.Error
			if !errors.As(LastError(), &e) || e.Kind != gdip.KindConfig || e.Op != tt.op {
				t.Errorf("LastError() = %v, want KindConfig from %s", LastError(), tt.op)
			}
		})
	}
}

func TestSlot_ConcurrentFailures(t *testing.T) {
	useRecorder(t)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			CreatePen(gdip.Black, 1, nil)
			_ = ErrPointer()
		}()
	}
	wg.Wait()
	if got := ErrPointer(); got != nullMessage {
		t.Errorf("ErrPointer() = %q, want %q", got, nullMessage)
	}
}
