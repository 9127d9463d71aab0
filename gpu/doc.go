// Package gpu connects shape2d to the GoGPU WebGPU stack.
//
// It provides two collaborators around the CPU-side triangulator:
//
//   - Uploader implements shape2d.Uploader over a wgpu HAL device and
//     queue, turning a vertex slice into a drawable GPU buffer.
//   - Pipeline owns the render pipeline that consumes those buffers:
//     the shape vertex layout, the per-frame orthographic projection and
//     transform uniforms, and the per-draw model transform.
//
// The package never creates a GPU device of its own. Hosts either pass
// hal.Device/hal.Queue directly, or hand in a gpucontext.DeviceProvider
// whose device exposes the HAL types (see NewPipelineFromHandle).
package gpu
