package shape2d

import (
	"errors"
	"testing"
)

func TestTriangulateLine(t *testing.T) {
	line := Line{
		P1:       Pt(0, 0),
		P2:       Pt(10, 0),
		Z:        0.5,
		Rotation: NewRotation(1.5, Pt(5, 0)),
		Stroke:   NewStroke(2, Red),
	}
	verts, err := Triangulate(line)
	if err != nil {
		t.Fatal(err)
	}
	if len(verts) != 6 {
		t.Fatalf("line produced %d vertices, want 6", len(verts))
	}

	// Horizontal line, half-width 1: the quad spans y in [-1, 1].
	wantPos := [][3]float32{
		{0, 1, 0.5},
		{0, -1, 0.5},
		{10, 1, 0.5},
		{10, 1, 0.5},
		{0, -1, 0.5},
		{10, -1, 0.5},
	}
	red := Red.Bytes()
	for i, v := range verts {
		for j := 0; j < 3; j++ {
			if !approxEq(v.Position[j], wantPos[i][j]) {
				t.Errorf("vertex %d position = %v, want %v", i, v.Position, wantPos[i])
				break
			}
		}
		if v.Color != red {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, red)
		}
		if v.Angle != 1.5 || v.Center != [2]float32{5, 0} {
			t.Errorf("vertex %d rotation = (%v, %v), want (1.5, [5 0])", i, v.Angle, v.Center)
		}
	}
}

func TestTriangulateRectangle(t *testing.T) {
	t.Run("fill only", func(t *testing.T) {
		verts, err := Triangulate(Rectangle{
			Rect: NewRect(0, 0, 10, 20),
			Fill: FillSolid{Color: Blue},
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(verts) != 6 {
			t.Fatalf("unstroked fill produced %d vertices, want 6", len(verts))
		}
		// Without a stroke the fill covers the full rect.
		wantPos := [][3]float32{
			{0, 0, 0}, {10, 0, 0}, {10, 20, 0},
			{0, 0, 0}, {0, 20, 0}, {10, 20, 0},
		}
		blue := Blue.Bytes()
		for i, v := range verts {
			if v.Position != wantPos[i] {
				t.Errorf("vertex %d position = %v, want %v", i, v.Position, wantPos[i])
			}
			if v.Color != blue {
				t.Errorf("vertex %d color = %v, want %v", i, v.Color, blue)
			}
		}
	})

	t.Run("stroke only", func(t *testing.T) {
		verts, err := Triangulate(Rectangle{
			Rect:   NewRect(0, 0, 10, 10),
			Stroke: NewStroke(1, White),
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(verts) != 24 {
			t.Fatalf("stroke frame produced %d vertices, want 24", len(verts))
		}
	})

	t.Run("stroke and fill", func(t *testing.T) {
		verts, err := Triangulate(Rectangle{
			Rect:   NewRect(0, 0, 10, 10),
			Stroke: NewStroke(2, White),
			Fill:   FillSolid{Color: Red},
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(verts) != 30 {
			t.Fatalf("stroke plus fill produced %d vertices, want 30", len(verts))
		}
		// Fill vertices sit on the rect inset by the stroke width.
		fill := verts[24:]
		for i, v := range fill {
			x, y := v.Position[0], v.Position[1]
			if x != 2 && x != 8 {
				t.Errorf("fill vertex %d x = %v, want 2 or 8", i, x)
			}
			if y != 2 && y != 8 {
				t.Errorf("fill vertex %d y = %v, want 2 or 8", i, y)
			}
		}
	})
}

func TestTriangulateCircleFill(t *testing.T) {
	// A 4-sided circle is a diamond with vertices on the axes.
	circle := Circle{
		Center: Pt(0, 0),
		Radius: 1,
		Sides:  4,
		Fill:   FillSolid{Color: Green},
	}
	verts, err := Triangulate(circle)
	if err != nil {
		t.Fatal(err)
	}
	if len(verts) != 12 {
		t.Fatalf("4-sided fill produced %d vertices, want 12", len(verts))
	}

	ring := [][2]float32{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for tri := 0; tri < 4; tri++ {
		c := verts[tri*3]
		if !approxEq(c.Position[0], 0) || !approxEq(c.Position[1], 0) {
			t.Errorf("triangle %d apex = %v, want circle center", tri, c.Position)
		}
		a := verts[tri*3+1]
		b := verts[tri*3+2]
		wantA := ring[tri]
		wantB := ring[(tri+1)%4]
		if !approxEq(a.Position[0], wantA[0]) || !approxEq(a.Position[1], wantA[1]) {
			t.Errorf("triangle %d first boundary point = %v, want %v", tri, a.Position, wantA)
		}
		if !approxEq(b.Position[0], wantB[0]) || !approxEq(b.Position[1], wantB[1]) {
			t.Errorf("triangle %d second boundary point = %v, want %v", tri, b.Position, wantB)
		}
	}
}

func TestTriangulateCircleStroke(t *testing.T) {
	circle := Circle{
		Center: Pt(5, 5),
		Z:      0.25,
		Radius: 4,
		Sides:  16,
		Stroke: NewStroke(1, White),
	}
	verts, err := Triangulate(circle)
	if err != nil {
		t.Fatal(err)
	}
	if want := 16 * 6; len(verts) != want {
		t.Fatalf("stroke ring produced %d vertices, want %d", len(verts), want)
	}
	for i, v := range verts {
		if v.Position[2] != 0.25 {
			t.Fatalf("vertex %d z = %v, want 0.25", i, v.Position[2])
		}
		// Every boundary point sits on the inner or outer ring.
		dx := v.Position[0] - 5
		dy := v.Position[1] - 5
		d := dx*dx + dy*dy
		onRing := func(want float32) bool {
			diff := d - want
			if diff < 0 {
				diff = -diff
			}
			return diff < 1e-3
		}
		if !onRing(9) && !onRing(16) {
			t.Fatalf("vertex %d squared distance = %v, want 9 or 16", i, d)
		}
	}
}

func TestTriangulateCircleIgnoresRotation(t *testing.T) {
	circle := Circle{
		Center:   Pt(1, 2),
		Radius:   3,
		Sides:    8,
		Rotation: NewRotation(2, Pt(1, 2)),
		Fill:     FillSolid{Color: White},
	}
	verts, err := Triangulate(circle)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range verts {
		if v.Angle != 0 || v.Center != [2]float32{0, 0} {
			t.Fatalf("vertex %d carries rotation (%v, %v), want none", i, v.Angle, v.Center)
		}
	}
}

func TestTriangulateGradientUnsupported(t *testing.T) {
	grad := FillGradient{Start: Red, End: Blue}
	shapes := []Shape{
		Rectangle{Rect: NewRect(0, 0, 1, 1), Fill: grad},
		Circle{Radius: 1, Sides: 8, Fill: grad},
	}
	for _, s := range shapes {
		verts, err := Triangulate(s)
		if !errors.Is(err, ErrUnsupportedFill) {
			t.Errorf("Triangulate(%T) error = %v, want ErrUnsupportedFill", s, err)
		}
		if verts != nil {
			t.Errorf("Triangulate(%T) returned vertices alongside an error", s)
		}
	}
}

func TestTriangulateInvalidGeometry(t *testing.T) {
	verts, err := Triangulate(Circle{Radius: 1, Sides: 2})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Triangulate error = %v, want ErrInvalidGeometry", err)
	}
	if verts != nil {
		t.Error("Triangulate returned vertices alongside an error")
	}
}

func TestTriangulateDeterministic(t *testing.T) {
	circle := Circle{
		Center: Pt(3, 4),
		Radius: 2,
		Sides:  32,
		Stroke: NewStroke(0.5, White),
		Fill:   FillSolid{Color: Red},
	}
	first, err := Triangulate(circle)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Triangulate(circle)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("runs produced %d and %d vertices", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("vertex %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func BenchmarkTriangulateCircle(b *testing.B) {
	circle := Circle{
		Center: Pt(0, 0),
		Radius: 1,
		Sides:  64,
		Stroke: NewStroke(1, White),
		Fill:   FillSolid{Color: White},
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Triangulate(circle); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTriangulateRectangle(b *testing.B) {
	rect := Rectangle{
		Rect:   NewRect(0, 0, 100, 100),
		Stroke: NewStroke(1, White),
		Fill:   FillSolid{Color: White},
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Triangulate(rect); err != nil {
			b.Fatal(err)
		}
	}
}
