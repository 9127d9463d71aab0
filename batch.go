package shape2d

import (
	"fmt"
	"log/slog"
)

// Batch is an ordered collection of shapes triangulated together into
// one vertex buffer for a single draw call. Insertion order is draw
// order, which settles layering ties between shapes at equal depth.
//
// A Batch is exclusively owned by the frame that builds it and is not
// safe for shared concurrent use. Independent batches may be
// triangulated concurrently without coordination since shapes are
// immutable values.
type Batch struct {
	shapes   []Shape
	finished bool
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Singleton creates a batch holding a single shape.
func Singleton(s Shape) *Batch {
	b := NewBatch()
	b.Add(s)
	return b
}

// Add appends a shape to the batch, preserving insertion order.
func (b *Batch) Add(s Shape) {
	b.shapes = append(b.shapes, s)
}

// Len returns the number of shapes in the batch.
func (b *Batch) Len() int {
	return len(b.shapes)
}

// IsEmpty reports whether the batch holds no shapes.
func (b *Batch) IsEmpty() bool {
	return len(b.shapes) == 0
}

// Clear removes all shapes. The batch may be refilled and used again;
// Clear does not reset a finished batch.
func (b *Batch) Clear() {
	b.shapes = b.shapes[:0]
}

// Vertices triangulates every shape in insertion order and concatenates
// the results into one flat sequence. It is pure and may be called
// repeatedly without mutating the batch.
//
// If any shape fails to triangulate, Vertices fails for the whole batch
// and returns no partial result.
func (b *Batch) Vertices() ([]Vertex, error) {
	// Lower-bound estimate: every shape emits at least one quad.
	verts := make([]Vertex, 0, 6*len(b.shapes))

	for i, s := range b.shapes {
		vs, err := Triangulate(s)
		if err != nil {
			return nil, fmt.Errorf("batch shape %d: %w", i, err)
		}
		verts = append(verts, vs...)
	}
	return verts, nil
}

// Buffer triangulates the batch and uploads the vertices, returning the
// resulting buffer handle. Unlike Finish it does not consume the batch
// and may be called more than once.
func (b *Batch) Buffer(u Uploader) (VertexBuffer, error) {
	verts, err := b.Vertices()
	if err != nil {
		return nil, err
	}
	Logger().Debug("shape2d: uploading batch",
		slog.Int("shapes", len(b.shapes)),
		slog.Int("vertices", len(verts)))
	return u.CreateVertexBuffer(verts)
}

// Finish triangulates the batch, uploads the vertices, and marks the
// batch as consumed. Calling Finish a second time is a programmer error
// and returns ErrBatchFinished; it never silently no-ops.
func (b *Batch) Finish(u Uploader) (VertexBuffer, error) {
	if b.finished {
		return nil, ErrBatchFinished
	}
	buf, err := b.Buffer(u)
	if err != nil {
		return nil, err
	}
	b.finished = true
	return buf, nil
}
