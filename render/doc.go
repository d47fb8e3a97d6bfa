// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the graphics boundary consumed by the forward
// pipeline.
//
// The pipeline never talks to a GPU API directly. It drives a Context, which
// culls, builds renderer lists, executes command buffers and submits frames.
// Platform backends implement Context; backend/soft is the CPU reference.
//
// # Core Types
//
//   - Context: culling, renderer lists, command execution, submission
//   - Camera: view/projection parameters borrowed for one render call
//   - CullingParameters / VisibilitySet: the view volume and what is inside it
//   - RendererListDesc / RendererList: filtered, sorted draws
//   - CommandBuffer: named command sequence with balanced sample scopes
//   - Shader / Material / ShaderTagID: what objects are shaded with
//
// # Renderer Lists
//
// BuildRendererList is the reference list builder. It filters visible
// renderers by queue range, layer and shader pass, applies an optional
// override material and sorts by distance:
//
//	desc := render.RendererListDesc{
//	    Visibility: vis,
//	    Drawing:    render.NewDrawingSettings(render.NewSortingSettings(cam), "SRPDefaultUnlit"),
//	    Filtering:  render.NewFilteringSettings(render.QueueRangeOpaque),
//	}
//	opaque := render.BuildRendererList(desc.WithPhase(render.SortCommonOpaque, render.QueueRangeOpaque))
//	transparent := render.BuildRendererList(desc.WithPhase(render.SortCommonTransparent, render.QueueRangeTransparent))
//
// # Contexts
//
// Backends register a factory by name:
//
//	import _ "github.com/gogpu/forward/backend/soft"
//
//	ctx, err := render.NewContext("soft")
//
// # Thread Safety
//
// Contexts and command buffers are NOT thread-safe. The registry is.
package render
