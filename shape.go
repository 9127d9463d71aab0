package shape2d

import "fmt"

// ZDepth is the layering key stamped on every output vertex. It is
// consumed verbatim by the renderer; shape2d never sorts by it.
type ZDepth float32

// Rotation describes a rotation by Angle radians about Center. It is not
// applied during triangulation: each output vertex is stamped with the
// angle/center pair and the vertex stage rotates all vertices of the
// shape uniformly.
type Rotation struct {
	Angle  float32
	Center Point
}

// RotationZero is a rotation by angle 0 about the origin.
var RotationZero = Rotation{}

// NewRotation creates a rotation by angle radians about center.
func NewRotation(angle float32, center Point) Rotation {
	return Rotation{Angle: angle, Center: center}
}

// Stroke describes the outline ring of a shape.
// Comparing against StrokeNone decides whether stroke geometry is
// emitted at all.
type Stroke struct {
	Width float32
	Color RGBA
}

// StrokeNone is the "no stroke" sentinel: zero width, transparent color.
var StrokeNone = Stroke{}

// NewStroke creates a stroke of the given width and color.
func NewStroke(width float32, color RGBA) Stroke {
	return Stroke{Width: width, Color: color}
}

// Fill describes the interior coverage of a closed shape. It is a closed
// sum: the only implementations are FillEmpty, FillSolid and
// FillGradient. A nil Fill is treated as FillEmpty.
type Fill interface {
	isFill()
}

// FillEmpty leaves the shape interior unfilled.
type FillEmpty struct{}

// FillSolid fills the shape interior with a single color.
type FillSolid struct {
	Color RGBA
}

// FillGradient is a two-color gradient fill. It is part of the data
// model for forward compatibility but the triangulator rejects it with
// ErrUnsupportedFill.
type FillGradient struct {
	Start, End RGBA
}

func (FillEmpty) isFill()    {}
func (FillSolid) isFill()    {}
func (FillGradient) isFill() {}

// Rect is an axis-aligned box. X1 < X2 and Y1 < Y2 are expected but not
// enforced; callers own that invariant.
type Rect struct {
	X1, Y1, X2, Y2 float32
}

// NewRect creates an axis-aligned box from its corner coordinates.
func NewRect(x1, y1, x2, y2 float32) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// inset returns the rect shrunk by d on all four sides.
func (r Rect) inset(d float32) Rect {
	return Rect{X1: r.X1 + d, Y1: r.Y1 + d, X2: r.X2 - d, Y2: r.Y2 - d}
}

// Shape is the closed sum of drawable primitives: Line, Rectangle and
// Circle. Shapes are immutable values; triangulation is a pure read.
type Shape interface {
	// Validate reports whether the shape's parameters can produce
	// well-defined geometry. Triangulate performs the same checks, but
	// validating at construction time catches bad parameters before
	// they reach a batch.
	Validate() error

	isShape()
}

// Line is a straight segment from P1 to P2, rendered as a quad of the
// stroke's width centered on the segment.
type Line struct {
	P1, P2   Point
	Z        ZDepth
	Rotation Rotation
	Stroke   Stroke
}

// Rectangle is an axis-aligned rectangle with an optional stroke frame
// and an optional interior fill. The fill covers only the area inset by
// the stroke width; it never overlaps the stroke ring.
type Rectangle struct {
	Rect     Rect
	Z        ZDepth
	Rotation Rotation
	Stroke   Stroke
	Fill     Fill
}

// Circle is a regular polygon approximation of a circle with Sides
// segments. The stroke ring spans radius-width to radius; a solid fill
// fan-triangulates the interior up to the inner ring.
type Circle struct {
	Center   Point
	Z        ZDepth
	Radius   float32
	Sides    uint32
	Rotation Rotation
	Stroke   Stroke
	Fill     Fill
}

func (Line) isShape()      {}
func (Rectangle) isShape() {}
func (Circle) isShape()    {}

// Validate checks the line's stroke width.
func (l Line) Validate() error {
	if l.Stroke.Width < 0 {
		return fmt.Errorf("%w: negative stroke width %v", ErrInvalidGeometry, l.Stroke.Width)
	}
	return nil
}

// Validate checks the rectangle's stroke width.
func (r Rectangle) Validate() error {
	if r.Stroke.Width < 0 {
		return fmt.Errorf("%w: negative stroke width %v", ErrInvalidGeometry, r.Stroke.Width)
	}
	return nil
}

// Validate checks the circle's side count, radius and stroke width.
// A zero radius is degenerate but well-defined (all points coincide).
func (c Circle) Validate() error {
	if c.Sides < 3 {
		return fmt.Errorf("%w: circle needs at least 3 sides, got %d", ErrInvalidGeometry, c.Sides)
	}
	if c.Radius < 0 {
		return fmt.Errorf("%w: negative radius %v", ErrInvalidGeometry, c.Radius)
	}
	if c.Stroke.Width < 0 {
		return fmt.Errorf("%w: negative stroke width %v", ErrInvalidGeometry, c.Stroke.Width)
	}
	return nil
}
