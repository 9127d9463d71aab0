package gpu

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shape2d"
)

// Uploader creates drawable vertex buffers from triangulated shape
// vertices. It implements shape2d.Uploader over a wgpu HAL device and
// queue owned by the host.
type Uploader struct {
	device hal.Device
	queue  hal.Queue
}

// NewUploader creates an uploader for the given device and queue.
func NewUploader(device hal.Device, queue hal.Queue) *Uploader {
	return &Uploader{device: device, queue: queue}
}

// CreateVertexBuffer encodes vertices into the packed wire layout and
// uploads them into a new GPU vertex buffer.
func (u *Uploader) CreateVertexBuffer(verts []shape2d.Vertex) (shape2d.VertexBuffer, error) {
	data := shape2d.EncodeVertices(verts)

	buf, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "shape2d_vertices",
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	if len(data) > 0 {
		u.queue.WriteBuffer(buf, 0, data)
	}

	shape2d.Logger().Debug("gpu: vertex buffer uploaded",
		slog.Int("vertices", len(verts)),
		slog.Int("bytes", len(data)))

	return &VertexBuffer{buf: buf, count: uint32(len(verts))}, nil
}

var _ shape2d.Uploader = (*Uploader)(nil)

// VertexBuffer is an uploaded, drawable vertex buffer. It satisfies
// shape2d.VertexBuffer and is consumed by Pipeline.RecordDraws.
type VertexBuffer struct {
	buf   hal.Buffer
	count uint32
}

// VertexCount returns the number of vertices in the buffer.
func (b *VertexBuffer) VertexCount() uint32 {
	return b.count
}

// Destroy releases the underlying GPU buffer. Safe to call more than
// once.
func (b *VertexBuffer) Destroy(device hal.Device) {
	if b.buf != nil {
		device.DestroyBuffer(b.buf)
		b.buf = nil
	}
}
