// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"sort"

	"github.com/gogpu/gputypes"
)

// RendererListKind distinguishes geometry lists from the built-in skybox pass.
type RendererListKind uint8

const (
	// RendererListGeometry draws visible renderers.
	RendererListGeometry RendererListKind = iota

	// RendererListSkybox draws the full-screen sky.
	RendererListSkybox
)

// String returns the kind name.
func (k RendererListKind) String() string {
	if k == RendererListSkybox {
		return "Skybox"
	}
	return "Geometry"
}

// DepthState is the depth test configuration of a renderer list.
type DepthState struct {
	Write   bool
	Compare gputypes.CompareFunction
}

// DrawCommand is one draw in a renderer list.
type DrawCommand struct {
	Renderable *Renderable

	// Material is the material actually drawn, after any override.
	Material *Material

	// Pass is the matched shader pass.
	Pass ShaderTagID

	// Distance is the distance from the camera origin.
	Distance float32
}

// RendererList is an ordered, filtered sequence of draws.
// It is immutable once built and is consumed by appending it to a
// CommandBuffer.
type RendererList struct {
	kind  RendererListKind
	depth DepthState
	draws []DrawCommand
}

// Kind returns the list kind.
func (l RendererList) Kind() RendererListKind { return l.kind }

// Depth returns the depth state the list is drawn with.
func (l RendererList) Depth() DepthState { return l.depth }

// Len returns the number of draws.
func (l RendererList) Len() int { return len(l.draws) }

// IsEmpty reports whether the list has no draws.
func (l RendererList) IsEmpty() bool { return len(l.draws) == 0 }

// At returns the i-th draw.
func (l RendererList) At(i int) DrawCommand { return l.draws[i] }

// Draws returns a copy of the draws in order.
func (l RendererList) Draws() []DrawCommand {
	return append([]DrawCommand(nil), l.draws...)
}

// RendererListDesc describes a renderer list to build.
type RendererListDesc struct {
	Visibility *VisibilitySet
	Drawing    DrawingSettings
	Filtering  FilteringSettings
}

// WithPhase derives the description of another draw phase that differs only
// in sort criteria and queue range. The receiver is not modified.
func (d RendererListDesc) WithPhase(criteria SortingCriteria, queues RenderQueueRange) RendererListDesc {
	d.Drawing = d.Drawing.WithSortingCriteria(criteria)
	d.Filtering.QueueRange = queues
	return d
}

// BuildRendererList builds the renderer list described by desc.
//
// Only renderers accepted by desc.Filtering whose shader provides one of the
// drawing passes are included. The first matching pass in registration
// order is used. Lists sorted SortCommonOpaque are ordered by ascending
// distance, SortCommonTransparent by descending distance, and SortNone keeps
// visibility order. Ties break on queue, then name.
//
// BuildRendererList has no side effects on the visibility set.
func BuildRendererList(desc RendererListDesc) RendererList {
	vis := desc.Visibility
	list := RendererList{
		kind:  RendererListGeometry,
		depth: depthStateFor(desc.Filtering.QueueRange),
		draws: make([]DrawCommand, 0, vis.Len()),
	}
	override := desc.Drawing.OverrideMaterial()

	for i := 0; i < vis.Len(); i++ {
		vr := vis.Renderer(i)
		r := vr.Renderable
		if !desc.Filtering.Accepts(r) {
			continue
		}
		pass, ok := desc.Drawing.matchPass(r.Material.Shader)
		if !ok {
			continue
		}
		m := r.Material
		if override != nil {
			m = override
		}
		list.draws = append(list.draws, DrawCommand{
			Renderable: r,
			Material:   m,
			Pass:       pass,
			Distance:   vr.Distance,
		})
	}

	sortDraws(list.draws, desc.Drawing.Sorting().Criteria)
	return list
}

// NewSkyboxRendererList creates the skybox pass for cam.
// A nil sky material yields an empty list.
func NewSkyboxRendererList(cam *Camera, sky *Material) RendererList {
	list := RendererList{
		kind: RendererListSkybox,
		// drawn at the far plane behind the opaque depth
		depth: DepthState{Write: false, Compare: gputypes.CompareFunctionLessEqual},
	}
	if sky == nil || cam == nil {
		return list
	}
	list.draws = []DrawCommand{{
		Renderable: &Renderable{Name: cam.Name + "/skybox", Material: sky},
		Material:   sky,
		Pass:       ShaderTagID(""),
	}}
	return list
}

func depthStateFor(r RenderQueueRange) DepthState {
	// transparent objects test against but never write depth
	if r == QueueRangeTransparent {
		return DepthState{Write: false, Compare: gputypes.CompareFunctionLessEqual}
	}
	return DepthState{Write: true, Compare: gputypes.CompareFunctionLessEqual}
}

func sortDraws(draws []DrawCommand, criteria SortingCriteria) {
	var farFirst bool
	switch criteria {
	case SortCommonOpaque:
		farFirst = false
	case SortCommonTransparent:
		farFirst = true
	default:
		return
	}
	sort.SliceStable(draws, func(i, j int) bool {
		a, b := draws[i], draws[j]
		if a.Distance != b.Distance {
			if farFirst {
				return a.Distance > b.Distance
			}
			return a.Distance < b.Distance
		}
		qa, qb := a.Renderable.Material.RenderQueue(), b.Renderable.Material.RenderQueue()
		if qa != qb {
			return qa < qb
		}
		return a.Renderable.Name < b.Renderable.Name
	})
}
