package shape2d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Triangulate converts a shape into a flat triangle list, three vertices
// per triangle, in the fixed emission order the render pipeline relies
// on. It is pure and deterministic: the same shape always yields the
// same vertex sequence, and a failure yields no partial result.
//
// Gradient fills are rejected with ErrUnsupportedFill; parameters that
// cannot produce well-defined triangles are rejected with an error
// wrapping ErrInvalidGeometry.
func Triangulate(s Shape) ([]Vertex, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch sh := s.(type) {
	case Line:
		return triangulateLine(sh), nil
	case Rectangle:
		return triangulateRectangle(sh)
	case Circle:
		return triangulateCircle(sh)
	default:
		return nil, fmt.Errorf("%w: unknown shape type %T", ErrInvalidGeometry, s)
	}
}

// triangulateLine emits the stroked quad for a line segment as two
// triangles (6 vertices). The half-width offset swaps the direction
// vector's components rather than rotating it; the offsets on both axes
// deliberately share signs so the emitted quad matches the renderer's
// long-standing convention bit for bit.
func triangulateLine(l Line) []Vertex {
	v := l.P2.Sub(l.P1).Normalize()
	wx := l.Stroke.Width / 2 * v.Y
	wy := l.Stroke.Width / 2 * v.X

	z := float32(l.Z)
	angle, center := l.Rotation.Angle, l.Rotation.Center
	rgba8 := l.Stroke.Color.Bytes()

	return []Vertex{
		NewVertex(l.P1.X-wx, l.P1.Y+wy, z, angle, center, rgba8),
		NewVertex(l.P1.X+wx, l.P1.Y-wy, z, angle, center, rgba8),
		NewVertex(l.P2.X-wx, l.P2.Y+wy, z, angle, center, rgba8),
		NewVertex(l.P2.X-wx, l.P2.Y+wy, z, angle, center, rgba8),
		NewVertex(l.P1.X+wx, l.P1.Y-wy, z, angle, center, rgba8),
		NewVertex(l.P2.X+wx, l.P2.Y-wy, z, angle, center, rgba8),
	}
}

// triangulateRectangle emits the stroke frame and/or interior fill of an
// axis-aligned rectangle.
//
// The frame is four trapezoids (bottom, left, right, top, in that order)
// built from shared outer/inner corners, two triangles each, with no
// miter join. The fill covers only the inner rect, inset by the stroke
// width, so fill never paints under the frame.
func triangulateRectangle(r Rectangle) ([]Vertex, error) {
	outer := r.Rect
	inner := outer.inset(r.Stroke.Width)

	z := float32(r.Z)
	angle, center := r.Rotation.Angle, r.Rotation.Center

	var verts []Vertex
	if r.Stroke != StrokeNone {
		rgba8 := r.Stroke.Color.Bytes()
		verts = []Vertex{
			// Bottom
			NewVertex(outer.X1, outer.Y1, z, angle, center, rgba8),
			NewVertex(outer.X2, outer.Y1, z, angle, center, rgba8),
			NewVertex(inner.X1, inner.Y1, z, angle, center, rgba8),
			NewVertex(inner.X1, inner.Y1, z, angle, center, rgba8),
			NewVertex(outer.X2, outer.Y1, z, angle, center, rgba8),
			NewVertex(inner.X2, inner.Y1, z, angle, center, rgba8),
			// Left
			NewVertex(outer.X1, outer.Y1, z, angle, center, rgba8),
			NewVertex(inner.X1, inner.Y1, z, angle, center, rgba8),
			NewVertex(outer.X1, outer.Y2, z, angle, center, rgba8),
			NewVertex(outer.X1, outer.Y2, z, angle, center, rgba8),
			NewVertex(inner.X1, inner.Y1, z, angle, center, rgba8),
			NewVertex(inner.X1, inner.Y2, z, angle, center, rgba8),
			// Right
			NewVertex(inner.X2, inner.Y1, z, angle, center, rgba8),
			NewVertex(outer.X2, outer.Y1, z, angle, center, rgba8),
			NewVertex(outer.X2, outer.Y2, z, angle, center, rgba8),
			NewVertex(inner.X2, inner.Y1, z, angle, center, rgba8),
			NewVertex(inner.X2, inner.Y2, z, angle, center, rgba8),
			NewVertex(outer.X2, outer.Y2, z, angle, center, rgba8),
			// Top
			NewVertex(outer.X1, outer.Y2, z, angle, center, rgba8),
			NewVertex(outer.X2, outer.Y2, z, angle, center, rgba8),
			NewVertex(inner.X1, inner.Y2, z, angle, center, rgba8),
			NewVertex(inner.X1, inner.Y2, z, angle, center, rgba8),
			NewVertex(outer.X2, outer.Y2, z, angle, center, rgba8),
			NewVertex(inner.X2, inner.Y2, z, angle, center, rgba8),
		}
	}

	switch f := r.Fill.(type) {
	case nil, FillEmpty:
	case FillSolid:
		rgba8 := f.Color.Bytes()
		verts = append(verts,
			NewVertex(inner.X1, inner.Y1, z, angle, center, rgba8),
			NewVertex(inner.X2, inner.Y1, z, angle, center, rgba8),
			NewVertex(inner.X2, inner.Y2, z, angle, center, rgba8),
			NewVertex(inner.X1, inner.Y1, z, angle, center, rgba8),
			NewVertex(inner.X1, inner.Y2, z, angle, center, rgba8),
			NewVertex(inner.X2, inner.Y2, z, angle, center, rgba8),
		)
	case FillGradient:
		return nil, fmt.Errorf("%w: rectangle", ErrUnsupportedFill)
	}
	return verts, nil
}

// triangulateCircle emits the stroke ring and/or interior fan of a
// circle approximated by a regular polygon with c.Sides segments.
//
// The boundary is sampled at sides+1 points (first and last coincide) on
// an inner ring of radius radius-strokeWidth and, when stroked, an outer
// ring at the full radius. The stroke is one quad per segment between
// the rings; a solid fill fans from the circle center through
// consecutive inner-ring points, with one closing triangle from the last
// point back to the first.
//
// Circle vertices are stamped with zero rotation metadata (angle 0,
// center origin); the shape's own Rotation field does not reach them and
// the rotation stage leaves circles untouched.
func triangulateCircle(c Circle) ([]Vertex, error) {
	z := float32(c.Z)
	inner := circlePoints(c.Center, c.Radius-c.Stroke.Width, c.Sides)

	var verts []Vertex
	if c.Stroke != StrokeNone {
		// With a stroke, the outer ring sits at the full radius.
		outer := circlePoints(c.Center, c.Radius, c.Sides)
		rgba8 := c.Stroke.Color.Bytes()

		n := len(inner) - 1
		verts = make([]Vertex, 0, n*6)
		for i := 0; i < n; i++ {
			i0, i1 := inner[i], inner[i+1]
			o0, o1 := outer[i], outer[i+1]

			verts = append(verts,
				NewVertex(i0.X, i0.Y, z, 0, Point{}, rgba8),
				NewVertex(o0.X, o0.Y, z, 0, Point{}, rgba8),
				NewVertex(o1.X, o1.Y, z, 0, Point{}, rgba8),
				NewVertex(i0.X, i0.Y, z, 0, Point{}, rgba8),
				NewVertex(o1.X, o1.Y, z, 0, Point{}, rgba8),
				NewVertex(i1.X, i1.Y, z, 0, Point{}, rgba8),
			)
		}
	}

	switch f := c.Fill.(type) {
	case nil, FillEmpty:
	case FillSolid:
		rgba8 := f.Color.Bytes()
		center := NewVertex(c.Center.X, c.Center.Y, z, 0, Point{}, rgba8)
		ring := make([]Vertex, len(inner))
		for i, p := range inner {
			ring[i] = NewVertex(p.X, p.Y, z, 0, Point{}, rgba8)
		}
		for i := 0; i+1 < int(c.Sides); i++ {
			verts = append(verts, center, ring[i], ring[i+1])
		}
		// Seal the fan from the last distinct boundary point back to
		// the first, giving exactly c.Sides fill triangles.
		verts = append(verts, center, ring[c.Sides-1], ring[0])
	case FillGradient:
		return nil, fmt.Errorf("%w: circle", ErrUnsupportedFill)
	}
	return verts, nil
}

// circlePoints samples sides+1 boundary points of a circle at equal
// angular steps. The first and last points coincide so consecutive
// pairs cover the full boundary without a wraparound case.
func circlePoints(center Point, radius float32, sides uint32) []Point {
	pts := make([]Point, 0, sides+1)
	step := 2 * math32.Pi / float32(sides)
	for i := uint32(0); i <= sides; i++ {
		angle := float32(i) * step
		pts = append(pts, Point{
			X: center.X + radius*math32.Cos(angle),
			Y: center.Y + radius*math32.Sin(angle),
		})
	}
	return pts
}
