package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shape2d"
)

func TestVertexLayoutMatchesWireFormat(t *testing.T) {
	layouts := vertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("got %d vertex buffers, want 1", len(layouts))
	}

	l := layouts[0]
	if l.ArrayStride != shape2d.VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, shape2d.VertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", l.StepMode)
	}

	want := []struct {
		format   gputypes.VertexFormat
		offset   uint64
		location uint32
	}{
		{gputypes.VertexFormatFloat32x3, 0, 0},
		{gputypes.VertexFormatFloat32, 12, 1},
		{gputypes.VertexFormatFloat32x2, 16, 2},
		{gputypes.VertexFormatUnorm8x4, 24, 3},
	}
	if len(l.Attributes) != len(want) {
		t.Fatalf("got %d attributes, want %d", len(l.Attributes), len(want))
	}
	for i, w := range want {
		a := l.Attributes[i]
		if a.Format != w.format || uint64(a.Offset) != w.offset || uint32(a.ShaderLocation) != w.location {
			t.Errorf("attribute %d = %+v, want format %v offset %d location %d",
				i, a, w.format, w.offset, w.location)
		}
	}
}

func TestUniformsEncode(t *testing.T) {
	u := Uniforms{
		Ortho:     Ortho2D(100, 100),
		Transform: Mat4Identity(),
	}
	buf := u.encode()
	if len(buf) != frameUniformSize {
		t.Fatalf("encoded length = %d, want %d", len(buf), frameUniformSize)
	}

	var ortho, transform [mat4Size]byte
	u.Ortho.encode(ortho[:])
	u.Transform.encode(transform[:])
	for i := 0; i < mat4Size; i++ {
		if buf[i] != ortho[i] {
			t.Fatalf("ortho byte %d differs", i)
		}
		if buf[mat4Size+i] != transform[i] {
			t.Fatalf("transform byte %d differs", i)
		}
	}
}

func TestNewPipelineRejectsEmptyViewport(t *testing.T) {
	if _, err := NewPipeline(nil, nil, 0, 600); err == nil {
		t.Error("expected an error for zero width")
	}
	if _, err := NewPipeline(nil, nil, 800, 0); err == nil {
		t.Error("expected an error for zero height")
	}
}
