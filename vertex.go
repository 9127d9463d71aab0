package shape2d

import (
	"encoding/binary"
	"math"
)

// VertexStride is the byte size of one encoded Vertex.
// Layout per vertex, little-endian, no padding:
//
//	position (3 x f32) = 12 bytes
//	angle    (f32)     = 4 bytes
//	center   (2 x f32) = 8 bytes
//	color    (4 x u8)  = 4 bytes
//
// Total = 28 bytes per vertex. The gpu package declares the matching
// wgpu vertex buffer layout; the two must not drift apart.
const VertexStride = 28

// Vertex is a single GPU vertex. Fields appear in wire order.
type Vertex struct {
	Position [3]float32
	Angle    float32
	Center   [2]float32
	Color    RGBA8
}

// NewVertex creates a vertex at (x, y, z) stamped with the given
// rotation angle, center of rotation, and color.
func NewVertex(x, y, z, angle float32, center Point, color RGBA8) Vertex {
	return Vertex{
		Position: [3]float32{x, y, z},
		Angle:    angle,
		Center:   [2]float32{center.X, center.Y},
		Color:    color,
	}
}

// EncodeVertices serializes vertices into the packed byte layout
// accepted by the vertex upload path.
func EncodeVertices(verts []Vertex) []byte {
	buf := make([]byte, len(verts)*VertexStride)
	for i := range verts {
		verts[i].encode(buf[i*VertexStride:])
	}
	return buf
}

// encode writes the vertex into buf, which must hold VertexStride bytes.
func (v Vertex) encode(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Angle))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Center[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Center[1]))
	buf[24] = v.Color.R
	buf[25] = v.Color.G
	buf[26] = v.Color.B
	buf[27] = v.Color.A
}
