package gdip

// Point is an integer device-space point.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point { return Point{X: x, Y: y} }

// Rect is an integer device-space rectangle: origin plus unsigned size.
type Rect struct {
	X, Y          int32
	Width, Height uint32
}

// R is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func R(x, y int32, w, h uint32) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

// Empty reports whether r has zero area.
func (r Rect) Empty() bool { return r.Width == 0 || r.Height == 0 }

// Arc is an elliptical arc inside a bounding rectangle.
// Angles are in degrees; End is inclusive, so the sweep is End - Start.
type Arc struct {
	Bounds     Rect
	Start, End float32
}

// Sweep returns the sweep angle forwarded to the native library.
func (a Arc) Sweep() float32 { return a.End - a.Start }

// FullTurn is the end angle of a complete ellipse starting at zero.
const FullTurn float32 = 360
