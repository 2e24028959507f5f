// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gdiplus provides a [gdip.Native] that calls the GDI+ flat API in
// gdiplus.dll.
//
// The backend is only functional on windows/amd64 and windows/386, where
// importing the package registers it under the name "gdiplus" if the DLL can
// be loaded. On other platforms the package compiles but registers nothing.
// REAL arguments are passed as raw bits through the syscall trampoline,
// which only reaches the float registers on those two architectures.
//
// Objects are the GpGraphics, GpPen and GpBrush pointers returned by GDI+
// and SurfaceRef is an HDC. Statuses are passed through unchanged.
package gdiplus

// Name is the registry name of the GDI+ backend.
const Name = "gdiplus"

// Backend is the GDI+ flat API. It is stateless; all state lives in
// gdiplus.dll.
type Backend struct{}

// New returns a GDI+ backend. Call [Load] first to find out
// whether gdiplus.dll is usable; otherwise the first call that cannot be
// resolved panics.
func New() *Backend {
	return &Backend{}
}

// Name implements gdip.Native.
func (b *Backend) Name() string { return Name }
