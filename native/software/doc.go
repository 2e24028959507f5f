// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software provides a pure Go [gdip.Native] backed by gg.
//
// It stands in for GDI+ where gdiplus.dll is unavailable. Surfaces are
// in-memory canvases created with [Backend.NewCanvas]; the returned
// reference is bound with [gdip.Bridge.BindSurface] exactly like an HDC.
// Pixels can be read back with [Backend.Snapshot] or encoded with
// [Backend.WritePNG] and [Backend.WriteBMP].
//
// Importing the package registers the backend under the name "software".
//
// As with GDI+, no object can be created before Startup and stroking or
// filling through a released object fails with InvalidParameter.
package software

import (
	"github.com/gogpu/gdip"
	"github.com/gogpu/gdip/native"
)

func init() {
	native.Register(Name, func() gdip.Native { return New() })
}
