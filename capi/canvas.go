package capi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gdip"
	"github.com/gogpu/gdip/native/software"
)

// softwareBackend returns the active backend if it is the software one.
func softwareBackend(op string) (*software.Backend, error) {
	b, err := bridge()
	if err != nil {
		return nil, err
	}
	sw, ok := b.Native().(*software.Backend)
	if !ok {
		return nil, &gdip.Error{Op: op, Kind: gdip.KindUnsupported,
			Err: fmt.Errorf("canvases need the software backend, active is %q", b.Native().Name())}
	}
	return sw, nil
}

// CreateCanvas creates an in-memory canvas on the software backend and
// writes its surface reference to out. The reference is bound with FromHDC.
func CreateCanvas(width, height uint32, out *gdip.SurfaceRef) bool {
	const op = "CreateCanvas"
	if out == nil {
		return fail(op, gdip.NullPointerError(op))
	}
	sw, err := softwareBackend(op)
	if err != nil {
		return fail(op, err)
	}
	ref, err := sw.NewCanvas(clampDim(width), clampDim(height))
	if err != nil {
		return fail(op, err)
	}
	*out = ref
	return true
}

// SaveCanvas writes a canvas to path, as BMP if the extension is .bmp and
// as PNG otherwise.
func SaveCanvas(ref gdip.SurfaceRef, path string) bool {
	const op = "SaveCanvas"
	sw, err := softwareBackend(op)
	if err != nil {
		return fail(op, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fail(op, ioError(op, err))
	}
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		err = sw.WriteBMP(ref, f)
	} else {
		err = sw.WritePNG(ref, f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fail(op, ioError(op, err))
	}
	return true
}

// ioError reports a host I/O failure as the GDI+ Win32Error status. Bridge
// errors pass through unchanged.
func ioError(op string, err error) error {
	var e *gdip.Error
	if errors.As(err, &e) {
		return e
	}
	return &gdip.Error{Op: op, Kind: gdip.KindStatus, Status: gdip.Win32Error, Err: err}
}

// DoneCanvas releases a canvas created by CreateCanvas.
func DoneCanvas(ref gdip.SurfaceRef) {
	if sw, err := softwareBackend("DoneCanvas"); err == nil {
		_ = sw.ReleaseCanvas(ref)
	}
}
