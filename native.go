package gdip

// Native is the native graphics library beneath the bridge.
//
// Method shapes follow the GDI+ flat API: every call returns a Status and
// objects travel as opaque Object values. Angles are in degrees, measured
// clockwise from the positive x axis, and arc calls take a sweep angle
// rather than an end angle.
//
// An implementation may panic on an internal fault; the Bridge recovers and
// reports it as [ErrException].
type Native interface {
	// Name identifies the implementation, e.g. "gdiplus" or "software".
	Name() string

	Startup() (Object, Status)
	Shutdown(token Object)

	CreateFromHDC(ref SurfaceRef) (Object, Status)
	DeleteGraphics(g Object) Status

	CreatePen(argb uint32, width float32) (Object, Status)
	DeletePen(p Object) Status

	CreateSolidFill(argb uint32) (Object, Status)
	DeleteBrush(b Object) Status

	DrawLine(g, pen Object, x1, y1, x2, y2 int32) Status
	DrawRectangle(g, pen Object, x, y, width, height int32) Status
	DrawEllipse(g, pen Object, x, y, width, height int32) Status
	DrawArc(g, pen Object, x, y, width, height int32, startAngle, sweepAngle float32) Status

	FillRectangle(g, brush Object, x, y, width, height int32) Status
	FillEllipse(g, brush Object, x, y, width, height int32) Status
	FillPie(g, brush Object, x, y, width, height int32, startAngle, sweepAngle float32) Status
}
