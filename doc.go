// Package shape2d converts declarative 2D primitives into GPU-ready
// triangle lists.
//
// # Overview
//
// shape2d is a small tessellation kit for the GoGPU ecosystem. Callers
// describe shapes (lines, rectangles, circles, each with an optional
// stroke and fill) as plain values, collect them in a Batch, and receive
// one contiguous vertex sequence suitable for a single draw call. No
// geometry processing is left for draw time.
//
// # Quick Start
//
//	batch := shape2d.NewBatch()
//	batch.Add(shape2d.Circle{
//	    Center: shape2d.Pt(320, 240),
//	    Radius: 64,
//	    Sides:  32,
//	    Stroke: shape2d.NewStroke(2, shape2d.White),
//	    Fill:   shape2d.FillSolid{Color: shape2d.Red},
//	})
//	verts, err := batch.Vertices()
//
// The companion gpu package uploads vertex data through wgpu and binds
// the matching render pipeline:
//
//	buf, err := batch.Finish(uploader)
//
// # Vertex format
//
// Every output vertex carries position (x, y, z), a rotation angle with
// its center of rotation, and an 8-bit RGBA color. Rotation is not baked
// into positions on the CPU; the vertex stage applies it using the
// stamped angle/center pair so that all vertices of a shape rotate
// uniformly.
//
// # Architecture
//
//   - Root package: geometry values, shapes, triangulator, batch
//   - gpu: vertex upload and render pipeline over gogpu/wgpu
package shape2d
