package gpu

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ErrInvalidDeviceHandle is returned when a device provider does not
// expose the wgpu HAL device and queue this package renders with.
var ErrInvalidDeviceHandle = errors.New("gpu: device handle does not expose wgpu HAL types")

// DeviceHandle provides GPU device access from the host application.
//
// This is the integration point between shape2d and GPU frameworks like
// gogpu: the host implements the provider and passes it in, and shape2d
// uses the shared device. shape2d RECEIVES the device from the host, it
// does NOT create one.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// shape2d-specific name while staying compatible with the gpucontext
// ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Useful in tests and in CPU-only paths where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns unknown adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

var _ DeviceHandle = NullDeviceHandle{}

// halFromHandle extracts the wgpu HAL device and queue from a device
// handle. The handle must implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue, the convention GPU hosts use to
// share their HAL objects.
func halFromHandle(handle DeviceHandle) (hal.Device, hal.Queue, error) {
	if handle == nil {
		return nil, nil, ErrInvalidDeviceHandle
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := handle.(halProvider)
	if !ok {
		return nil, nil, ErrInvalidDeviceHandle
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, ErrInvalidDeviceHandle
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, ErrInvalidDeviceHandle
	}
	return device, queue, nil
}

// NewPipelineFromHandle creates the shape render pipeline using the
// HAL device and queue shared by a host device handle.
func NewPipelineFromHandle(handle DeviceHandle, width, height uint32) (*Pipeline, error) {
	device, queue, err := halFromHandle(handle)
	if err != nil {
		return nil, err
	}
	return NewPipeline(device, queue, width, height)
}

// NewUploaderFromHandle creates an uploader using the HAL device and
// queue shared by a host device handle.
func NewUploaderFromHandle(handle DeviceHandle) (*Uploader, error) {
	device, queue, err := halFromHandle(handle)
	if err != nil {
		return nil, err
	}
	return NewUploader(device, queue), nil
}
