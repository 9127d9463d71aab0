package gpu

import (
	"encoding/binary"
	"math"
)

// Mat4 is a 4x4 matrix of float32 in column-major order, matching the
// memory layout of mat4x4<f32> in WGSL uniform buffers.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho2D returns an orthographic projection for a viewport of the
// given pixel size: left 0, right width, bottom 0, top height, near -1,
// far 1. It maps pixel coordinates to normalized device coordinates
// without perspective distortion.
func Ortho2D(width, height float32) Mat4 {
	return Mat4{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, -1, 0,
		-1, -1, 0, 1,
	}
}

// mat4Size is the byte size of one encoded Mat4.
const mat4Size = 64

// encode writes the matrix into buf as 16 little-endian float32 values.
// buf must hold at least mat4Size bytes.
func (m Mat4) encode(buf []byte) {
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}
