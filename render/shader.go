// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image/color"

// ShaderTagID names a shader pass (its light mode tag).
type ShaderTagID string

// String returns the tag name.
func (t ShaderTagID) String() string { return string(t) }

// Shader is a compiled shader known to a Context.
type Shader struct {
	// Name is the lookup name passed to Context.FindShader.
	Name string

	// Passes lists the pass tags the shader provides.
	Passes []ShaderTagID

	// Queue is the default render queue of materials using the shader.
	Queue RenderQueue
}

// HasPass reports whether the shader provides the tagged pass.
func (s *Shader) HasPass(tag ShaderTagID) bool {
	if s == nil {
		return false
	}
	for _, p := range s.Passes {
		if p == tag {
			return true
		}
	}
	return false
}

// Material binds a shader to per-object parameters.
type Material struct {
	Name   string
	Shader *Shader

	// Queue overrides the shader queue when non-zero.
	Queue RenderQueue

	// Color is the base color.
	Color color.RGBA
}

// NewMaterial creates a material using shader's default queue.
func NewMaterial(name string, shader *Shader) *Material {
	return &Material{Name: name, Shader: shader, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
}

// RenderQueue returns the effective queue of the material.
func (m *Material) RenderQueue() RenderQueue {
	if m.Queue != 0 {
		return m.Queue
	}
	if m.Shader != nil && m.Shader.Queue != 0 {
		return m.Shader.Queue
	}
	return QueueGeometry
}
