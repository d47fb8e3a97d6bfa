package forward

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/image/colornames"

	"github.com/gogpu/forward/render"
)

// ErrorShaderName is the engine built-in shader used to flag objects whose
// shader the pipeline cannot draw.
const ErrorShaderName = "Hidden/InternalErrorShader"

// ErrErrorShaderNotFound is returned when the context cannot provide
// ErrorShaderName. Rendering cannot flag unsupported shaders without it, so
// the failure is permanent for the process.
var ErrErrorShaderNotFound = errors.New("forward: error shader not found")

// legacyShaderTags are the pass tags of historical built-in pipelines.
// Objects drawn only by these passes are unsupported. Order does not matter:
// the error material replaces whatever the pass would have produced.
var legacyShaderTags = [...]render.ShaderTagID{
	"Always",
	"ForwardBase",
	"PrepassBase",
	"Vertex",
	"VertexLMRGBM",
	"VertexLM",
}

// LegacyShaderTags returns the unsupported pass tags.
func LegacyShaderTags() []render.ShaderTagID {
	return append([]render.ShaderTagID(nil), legacyShaderTags[:]...)
}

// errorMaterial is the process-wide material drawn over unsupported objects.
// It is built once on first use and never torn down.
var errorMaterial struct {
	once sync.Once
	mat  *render.Material
	err  error
}

// ErrorMaterial returns the shared error material, creating it from ctx on
// the first call. Every later call returns the same material, or the same
// error if creation failed.
func ErrorMaterial(ctx render.Context) (*render.Material, error) {
	errorMaterial.once.Do(func() {
		shader, ok := ctx.FindShader(ErrorShaderName)
		if !ok || shader == nil {
			errorMaterial.err = fmt.Errorf("%w: %q", ErrErrorShaderNotFound, ErrorShaderName)
			return
		}
		m := render.NewMaterial("Error", shader)
		m.Color = colornames.Magenta
		errorMaterial.mat = m
		Logger().Info("forward: error material created", slog.String("shader", shader.Name))
	})
	return errorMaterial.mat, errorMaterial.err
}

// unsupportedDrawing builds the drawing settings of the fallback pass: every
// legacy tag is registered as its own pass and the error material overrides
// the object material.
func unsupportedDrawing(cam *render.Camera, errMat *render.Material) render.DrawingSettings {
	drawing := render.NewDrawingSettings(render.NewSortingSettings(cam))
	for _, tag := range legacyShaderTags {
		drawing = drawing.WithShaderPass(tag)
	}
	return drawing.WithOverrideMaterial(errMat)
}
