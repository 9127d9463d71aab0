package shape2d

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestEncodeVerticesLayout(t *testing.T) {
	v := NewVertex(1, 2, 3, 0.5, Pt(4, 5), RGBA8{10, 20, 30, 40})
	data := EncodeVertices([]Vertex{v})

	if len(data) != VertexStride {
		t.Fatalf("encoded length = %d, want %d", len(data), VertexStride)
	}

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}
	if got := [3]float32{f32(0), f32(4), f32(8)}; got != [3]float32{1, 2, 3} {
		t.Errorf("position bytes = %v, want [1 2 3]", got)
	}
	if got := f32(12); got != 0.5 {
		t.Errorf("angle bytes = %v, want 0.5", got)
	}
	if got := [2]float32{f32(16), f32(20)}; got != [2]float32{4, 5} {
		t.Errorf("center bytes = %v, want [4 5]", got)
	}
	if got := [4]byte{data[24], data[25], data[26], data[27]}; got != [4]byte{10, 20, 30, 40} {
		t.Errorf("color bytes = %v, want [10 20 30 40]", got)
	}
}

func TestEncodeVerticesMultiple(t *testing.T) {
	verts := []Vertex{
		NewVertex(0, 0, 0, 0, Pt(0, 0), RGBA8{}),
		NewVertex(1, 1, 1, 1, Pt(1, 1), RGBA8{255, 255, 255, 255}),
	}
	data := EncodeVertices(verts)
	if len(data) != 2*VertexStride {
		t.Fatalf("encoded length = %d, want %d", len(data), 2*VertexStride)
	}
	// Second vertex starts exactly one stride in.
	if data[VertexStride+24] != 255 {
		t.Error("second vertex color not found at expected offset")
	}
}

func TestEncodeVerticesEmpty(t *testing.T) {
	if got := EncodeVertices(nil); len(got) != 0 {
		t.Errorf("EncodeVertices(nil) length = %d, want 0", len(got))
	}
}
