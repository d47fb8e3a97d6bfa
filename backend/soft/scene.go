package soft

import "github.com/gogpu/forward/render"

// Scene is the set of objects a soft context culls.
type Scene struct {
	Renderables []*render.Renderable
	Lights      []render.VisibleLight

	// Skybox is drawn by the skybox pass. Nil disables the sky.
	Skybox *render.Material
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends renderables to the scene.
func (s *Scene) Add(rs ...*render.Renderable) {
	s.Renderables = append(s.Renderables, rs...)
}

// AddLight appends a point light to the scene.
func (s *Scene) AddLight(l render.VisibleLight) {
	s.Lights = append(s.Lights, l)
}
