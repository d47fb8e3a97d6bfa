package soft

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/forward/render"
)

// Frame is the work submitted by one Submit call.
type Frame struct {
	// Camera is the name of the last camera set up before submission.
	Camera string

	// ColorFormat is the resolved color target format of that camera.
	ColorFormat gputypes.TextureFormat

	// Commands are the executed commands in execution order.
	Commands []render.Command

	// Executions is the number of ExecuteCommandBuffer calls.
	Executions int

	// Gizmos lists the gizmo subsets drawn for the camera.
	Gizmos []render.GizmoSubset

	// SceneViewGeometry is set when editor world geometry was emitted.
	SceneViewGeometry bool
}

// DrawLists returns the renderer lists drawn in the frame, in order.
func (f Frame) DrawLists() []render.RendererList {
	var lists []render.RendererList
	for _, c := range f.Commands {
		if d, ok := c.(render.DrawRendererListCommand); ok {
			lists = append(lists, d.List)
		}
	}
	return lists
}

// DrawCount returns the total number of draws in the frame.
func (f Frame) DrawCount() int {
	n := 0
	for _, l := range f.DrawLists() {
		n += l.Len()
	}
	return n
}

// Samples returns the names of sample scopes in begin order and reports
// whether every begin has a matching end.
func (f Frame) Samples() ([]string, bool) {
	var names, open []string
	for _, c := range f.Commands {
		switch s := c.(type) {
		case render.BeginSampleCommand:
			names = append(names, s.Name)
			open = append(open, s.Name)
		case render.EndSampleCommand:
			if len(open) == 0 || open[len(open)-1] != s.Name {
				return names, false
			}
			open = open[:len(open)-1]
		}
	}
	return names, len(open) == 0
}
