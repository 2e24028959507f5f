package capi

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gdip"
	// Backends register themselves with the native registry.
	_ "github.com/gogpu/gdip/native/gdiplus"
	_ "github.com/gogpu/gdip/native/software"
)

var (
	mu     sync.Mutex
	active *gdip.Bridge

	// lastErr is the process-wide error slot. It is overwritten by every
	// failure and never cleared by a success.
	lastErr atomic.Pointer[gdip.Error]
)

// Use installs a bridge over n for all later flat calls, replacing the one
// built from the environment.
func Use(n gdip.Native) {
	mu.Lock()
	defer mu.Unlock()
	active = gdip.New(n)
}

// Reset drops the active bridge and clears the error slot. The next call
// builds a new bridge from the environment.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	active = nil
	lastErr.Store(nil)
}

// bridge returns the active bridge, building it from the environment on
// first use.
func bridge() (*gdip.Bridge, error) {
	mu.Lock()
	defer mu.Unlock()
	if active != nil {
		return active, nil
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, configError("LoadConfig", err)
	}
	l, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return nil, configError("NewLogger", err)
	}
	if l != nil {
		gdip.SetLogger(l)
	}
	n, err := cfg.NewNative()
	if err != nil {
		return nil, configError("NewNative", err)
	}
	gdip.Logger().Info("capi: backend selected", "backend", n.Name())
	active = gdip.New(n)
	return active, nil
}

// configError reports that the bridge could not be built from the
// environment.
func configError(stage string, err error) error {
	return &gdip.Error{Op: stage, Kind: gdip.KindConfig, Err: err}
}

// fail records err in the error slot and returns false.
func fail(op string, err error) bool {
	var e *gdip.Error
	if !errors.As(err, &e) {
		e = &gdip.Error{Op: op, Kind: gdip.KindStatus, Status: gdip.GenericError, Err: err}
	}
	lastErr.Store(e)
	return false
}

// check records a non-nil err and reports whether the call succeeded.
func check(op string, err error) bool {
	if err != nil {
		return fail(op, err)
	}
	return true
}

// ErrPointer returns the message of the most recent failure, or "no error"
// if nothing has failed yet. The message names the failure kind only.
func ErrPointer() string {
	e := lastErr.Load()
	if e == nil {
		return gdip.KindNone.String()
	}
	return e.Kind.String()
}

// LastError returns the most recent failure with its full detail, or nil.
func LastError() error {
	if e := lastErr.Load(); e != nil {
		return e
	}
	return nil
}
