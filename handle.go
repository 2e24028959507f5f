package gdip

// Object is the untyped native-object slot of a handle. Its value is
// meaningful only to the Native implementation that issued it.
type Object uintptr

// SurfaceRef is a native drawing-surface reference: an HDC for the GDI+
// backend, a canvas id for the software backend.
type SurfaceRef uintptr

// The handle types below share one layout, {uintptr, int}, which is the
// layout of the C structs {void *native; ptrdiff_t last_status}. The zero
// value of each is the Uninitialized state.

// Surface is a drawable target bound from a SurfaceRef.
type Surface struct {
	obj    Object
	status Status
}

// Pen is a stroke resource: color and width.
type Pen struct {
	obj    Object
	status Status
}

// Brush is a solid fill resource.
type Brush struct {
	obj    Object
	status Status
}

// StartupToken is the process-wide token issued by [Bridge.Startup].
type StartupToken struct {
	obj    Object
	status Status
}

// Status returns the outcome of the last operation made through s.
func (s *Surface) Status() Status { return s.status }

// Valid reports whether s holds a native object.
func (s *Surface) Valid() bool { return s.obj != 0 }

// Status returns the outcome of the last operation made through p.
func (p *Pen) Status() Status { return p.status }

// Valid reports whether p holds a native object.
func (p *Pen) Valid() bool { return p.obj != 0 }

// Status returns the outcome of the last operation made through b.
func (b *Brush) Status() Status { return b.status }

// Valid reports whether b holds a native object.
func (b *Brush) Valid() bool { return b.obj != 0 }

// Status returns the status of the start-up call that issued t.
func (t *StartupToken) Status() Status { return t.status }

// Valid reports whether t was issued by a successful start-up.
func (t *StartupToken) Valid() bool { return t.obj != 0 }
