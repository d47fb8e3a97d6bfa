// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/go-gl/mathgl/mgl32"

// RenderQueue orders objects by drawing requirement.
// Values up to QueueGeometryLast are opaque.
type RenderQueue int

// Standard queue values.
const (
	QueueBackground   RenderQueue = 1000
	QueueGeometry     RenderQueue = 2000
	QueueAlphaTest    RenderQueue = 2450
	QueueGeometryLast RenderQueue = 2500
	QueueTransparent  RenderQueue = 3000
	QueueOverlay      RenderQueue = 4000

	queueMax RenderQueue = 5000
)

// RenderQueueRange is an inclusive range of render queues.
type RenderQueueRange struct {
	Lower RenderQueue
	Upper RenderQueue
}

// Predefined queue ranges.
var (
	QueueRangeOpaque      = RenderQueueRange{Lower: 0, Upper: QueueGeometryLast}
	QueueRangeTransparent = RenderQueueRange{Lower: QueueGeometryLast + 1, Upper: queueMax}
	QueueRangeAll         = RenderQueueRange{Lower: 0, Upper: queueMax}
)

// Contains reports whether q is inside the range.
func (r RenderQueueRange) Contains(q RenderQueue) bool {
	return q >= r.Lower && q <= r.Upper
}

// LayerMask selects renderable layers, one bit per layer.
type LayerMask uint32

// AllLayers selects every layer.
const AllLayers LayerMask = ^LayerMask(0)

// Contains reports whether layer is selected.
func (m LayerMask) Contains(layer uint8) bool {
	return layer < 32 && m&(1<<layer) != 0
}

// SortingCriteria selects how a renderer list is ordered.
type SortingCriteria uint8

const (
	// SortNone keeps visibility order.
	SortNone SortingCriteria = iota

	// SortCommonOpaque draws front-to-back so early depth rejection
	// discards hidden fragments before shading.
	SortCommonOpaque

	// SortCommonTransparent draws back-to-front for blending.
	// This is an approximation: intersecting or large transparent
	// geometry can still blend incorrectly.
	SortCommonTransparent
)

// String returns the criteria name.
func (s SortingCriteria) String() string {
	switch s {
	case SortNone:
		return "None"
	case SortCommonOpaque:
		return "CommonOpaque"
	case SortCommonTransparent:
		return "CommonTransparent"
	default:
		return "Unknown"
	}
}

// SortingSettings holds the sort criteria and the reference origin.
type SortingSettings struct {
	Criteria SortingCriteria
	Origin   mgl32.Vec3
}

// NewSortingSettings creates unsorted settings for cam.
func NewSortingSettings(cam *Camera) SortingSettings {
	return SortingSettings{Criteria: SortNone, Origin: cam.Position}
}

// FilteringSettings selects which visible renderers enter a list.
type FilteringSettings struct {
	QueueRange RenderQueueRange
	LayerMask  LayerMask
}

// NewFilteringSettings filters by queue range on all layers.
func NewFilteringSettings(r RenderQueueRange) FilteringSettings {
	return FilteringSettings{QueueRange: r, LayerMask: AllLayers}
}

// DefaultFilteringSettings accepts every queue and layer.
func DefaultFilteringSettings() FilteringSettings {
	return NewFilteringSettings(QueueRangeAll)
}

// Accepts reports whether the renderable passes the filter.
func (f FilteringSettings) Accepts(r *Renderable) bool {
	if r == nil || r.Material == nil {
		return false
	}
	return f.QueueRange.Contains(r.Material.RenderQueue()) && f.LayerMask.Contains(r.Layer)
}

// DrawingSettings holds the shader pass whitelist, sorting, and an
// optional override material.
//
// DrawingSettings is a value type. The With* methods return modified
// copies and never alias the pass list of the receiver.
type DrawingSettings struct {
	passes   []ShaderTagID
	sorting  SortingSettings
	override *Material
}

// NewDrawingSettings creates settings drawing the given passes.
func NewDrawingSettings(sorting SortingSettings, passes ...ShaderTagID) DrawingSettings {
	return DrawingSettings{
		passes:  append([]ShaderTagID(nil), passes...),
		sorting: sorting,
	}
}

// WithShaderPass returns a copy that also draws tag.
func (d DrawingSettings) WithShaderPass(tag ShaderTagID) DrawingSettings {
	passes := make([]ShaderTagID, len(d.passes), len(d.passes)+1)
	copy(passes, d.passes)
	d.passes = append(passes, tag)
	return d
}

// WithSortingCriteria returns a copy sorted by criteria.
func (d DrawingSettings) WithSortingCriteria(criteria SortingCriteria) DrawingSettings {
	d.sorting.Criteria = criteria
	return d
}

// WithOverrideMaterial returns a copy that draws every object with m.
func (d DrawingSettings) WithOverrideMaterial(m *Material) DrawingSettings {
	d.override = m
	return d
}

// ShaderPasses returns a copy of the pass whitelist in registration order.
func (d DrawingSettings) ShaderPasses() []ShaderTagID {
	return append([]ShaderTagID(nil), d.passes...)
}

// Sorting returns the sorting settings.
func (d DrawingSettings) Sorting() SortingSettings { return d.sorting }

// OverrideMaterial returns the override material, or nil.
func (d DrawingSettings) OverrideMaterial() *Material { return d.override }

// matchPass returns the first whitelisted pass the shader provides.
func (d DrawingSettings) matchPass(s *Shader) (ShaderTagID, bool) {
	for _, tag := range d.passes {
		if s.HasPass(tag) {
			return tag, true
		}
	}
	return "", false
}
