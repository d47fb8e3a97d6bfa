// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// Contexts RECEIVE the device from the host, they do NOT create one.
// DeviceHandle is an alias for gpucontext.DeviceProvider so any gpucontext
// host can be passed directly.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used by CPU-only contexts and tests.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports a software adapter with unknown name.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "null", Type: gpucontext.AdapterTypeSoftware}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// DefaultColorFormat is used when neither the camera nor the device
// names a color format.
const DefaultColorFormat = gputypes.TextureFormatBGRA8Unorm

// ResolveColorFormat returns the color format cam renders to: the camera's
// own format, else the device surface format, else DefaultColorFormat.
// handle may be nil.
func ResolveColorFormat(cam *Camera, handle DeviceHandle) gputypes.TextureFormat {
	if cam != nil && cam.ColorFormat != gputypes.TextureFormatUndefined {
		return cam.ColorFormat
	}
	if handle != nil {
		if f := handle.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			return f
		}
	}
	return DefaultColorFormat
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
