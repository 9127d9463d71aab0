package shape2d

// VertexBuffer is an opaque handle to an uploaded vertex buffer,
// referenced by the draw call that renders a batch.
type VertexBuffer interface {
	// VertexCount returns the number of vertices in the buffer.
	VertexCount() uint32
}

// Uploader turns triangulated vertices into a drawable vertex buffer.
// The gpu package provides the wgpu-backed implementation; tests and
// headless callers may substitute their own.
//
// Implementations must accept the exact byte layout described by
// VertexStride: triangulator output is already in wire order with no
// padding beyond what the format requires.
type Uploader interface {
	CreateVertexBuffer(verts []Vertex) (VertexBuffer, error)
}
