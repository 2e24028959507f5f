package gdip

// DrawLines strokes one line per consecutive pair of points. A trailing
// unpaired point is ignored. Drawing stops at the first failure.
func (b *Bridge) DrawLines(s *Surface, p *Pen, points []Point) error {
	for i := 0; i+1 < len(points); i += 2 {
		p1, p2 := points[i], points[i+1]
		if err := b.DrawLine(s, p, p1.X, p1.Y, p2.X, p2.Y); err != nil {
			return err
		}
	}
	return nil
}

// DrawRectangles strokes each rectangle in turn.
func (b *Bridge) DrawRectangles(s *Surface, p *Pen, rects []Rect) error {
	for _, r := range rects {
		if err := b.DrawRectangle(s, p, r); err != nil {
			return err
		}
	}
	return nil
}

// DrawEllipses strokes each ellipse in turn.
func (b *Bridge) DrawEllipses(s *Surface, p *Pen, rects []Rect) error {
	for _, r := range rects {
		if err := b.DrawEllipse(s, p, r); err != nil {
			return err
		}
	}
	return nil
}

// DrawArcs strokes each arc in turn.
func (b *Bridge) DrawArcs(s *Surface, p *Pen, arcs []Arc) error {
	for _, a := range arcs {
		if err := b.DrawArc(s, p, a.Bounds, a.Start, a.End); err != nil {
			return err
		}
	}
	return nil
}

// FillRectangles fills each rectangle in turn.
func (b *Bridge) FillRectangles(s *Surface, br *Brush, rects []Rect) error {
	for _, r := range rects {
		if err := b.FillRectangle(s, br, r); err != nil {
			return err
		}
	}
	return nil
}

// FillEllipses fills each ellipse in turn.
func (b *Bridge) FillEllipses(s *Surface, br *Brush, rects []Rect) error {
	for _, r := range rects {
		if err := b.FillEllipse(s, br, r); err != nil {
			return err
		}
	}
	return nil
}

// FillArcs fills each pie slice in turn.
func (b *Bridge) FillArcs(s *Surface, br *Brush, arcs []Arc) error {
	for _, a := range arcs {
		if err := b.FillArc(s, br, a.Bounds, a.Start, a.End); err != nil {
			return err
		}
	}
	return nil
}
