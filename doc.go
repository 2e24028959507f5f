// Package gdip is a thin bridge over a native 2D graphics library with the
// shape of the GDI+ flat API.
//
// # Overview
//
// gdip adds no rendering of its own. It hands out opaque handles for the
// native objects (surfaces, pens, brushes and the library start-up token)
// and forwards each drawing call to exactly one native primitive. The native
// library is any [Native] implementation:
//
//   - native/gdiplus calls gdiplus.dll on Windows
//   - native/software renders into in-memory canvases using github.com/gogpu/gg
//
// # Quick Start
//
//	b := gdip.New(software.New())
//	tok, err := b.Startup()
//	if err != nil {
//	    return err
//	}
//	defer b.Shutdown(tok)
//
//	s := b.BindSurface(ref)
//	defer b.ReleaseSurface(&s)
//
//	br, err := b.CreateBrush(gdip.Red)
//	if err != nil {
//	    return err
//	}
//	defer b.ReleaseBrush(&br)
//
//	err = b.FillRectangle(&s, &br, gdip.R(0, 0, 10, 10))
//
// # Handles
//
// Each handle is a fixed two-word value: the native object and the status of
// the last operation made through it. The zero value is uninitialized. A
// handle is created by one Create/Bind/Startup call and released by exactly
// one matching Release/Shutdown call; using it after release is undefined.
//
// # Errors
//
// Every fallible call returns an *[Error]. Match its kind with errors.Is
// against [ErrException], [ErrStatus], [ErrNullPointer] or one of the
// extended kinds such as [ErrInvalidParameter]. There is no shared "last
// error" in this package; the flat C-callable layer in package capi keeps
// one for foreign callers.
//
// # Angles
//
// Arc and pie calls take a start and an inclusive end angle in degrees. The
// bridge forwards the sweep end - start, so an end before the start draws
// counterclockwise.
package gdip
