package soft

import (
	"sync"

	"github.com/gogpu/forward/render"
)

// Built-in shader names.
const (
	ShaderUnlit            = "Custom/Unlit"
	ShaderUnlitTransparent = "Custom/UnlitTransparent"
	ShaderSkybox           = "Skybox/Procedural"
	ShaderLegacyDiffuse    = "Legacy Shaders/Diffuse"
	ShaderInternalError    = "Hidden/InternalErrorShader"
)

// Pass tags of the built-in shaders.
const (
	TagUnlit       render.ShaderTagID = "SRPDefaultUnlit"
	TagForwardBase render.ShaderTagID = "ForwardBase"
	TagSkybox      render.ShaderTagID = "Skybox"
)

// BuiltinShaders returns fresh copies of the built-in shaders.
func BuiltinShaders() []*render.Shader {
	return []*render.Shader{
		{Name: ShaderUnlit, Passes: []render.ShaderTagID{TagUnlit}, Queue: render.QueueGeometry},
		{Name: ShaderUnlitTransparent, Passes: []render.ShaderTagID{TagUnlit}, Queue: render.QueueTransparent},
		{Name: ShaderSkybox, Passes: []render.ShaderTagID{TagSkybox}, Queue: render.QueueBackground},
		{Name: ShaderLegacyDiffuse, Passes: []render.ShaderTagID{TagForwardBase}, Queue: render.QueueGeometry},
		{Name: ShaderInternalError, Passes: []render.ShaderTagID{TagUnlit}, Queue: render.QueueGeometry},
	}
}

// shaderLibrary resolves shader names and counts lookups.
type shaderLibrary struct {
	mu    sync.Mutex
	table map[string]*render.Shader

	hits, misses uint64
}

func newShaderLibrary(shaders ...*render.Shader) *shaderLibrary {
	lib := &shaderLibrary{table: make(map[string]*render.Shader, len(shaders))}
	for _, s := range shaders {
		lib.table[s.Name] = s
	}
	return lib
}

// add registers s, replacing any shader with the same name.
func (l *shaderLibrary) add(s *render.Shader) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table[s.Name] = s
}

// find returns the named shader. A lookup that resolves counts as a hit.
func (l *shaderLibrary) find(name string) (*render.Shader, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.table[name]
	if !ok {
		l.misses++
		return nil, false
	}
	l.hits++
	return s, true
}

// stats returns hits, misses and the number of registered shaders.
func (l *shaderLibrary) stats() (hits, misses uint64, registered int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hits, l.misses, len(l.table)
}
