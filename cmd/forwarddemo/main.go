// Command forwarddemo renders a small scene through the forward pipeline
// using the soft reference context and logs what each camera submitted.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"

	"github.com/gogpu/forward"
	"github.com/gogpu/forward/backend/soft"
	"github.com/gogpu/forward/render"
)

func main() {
	var (
		config  = flag.String("config", "", "pipeline asset TOML file")
		frames  = flag.Int("frames", 1, "number of frames to render")
		editor  = flag.Bool("editor", false, "add a scene view camera and editor hooks")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	forward.SetLogger(logger)

	asset := forward.DefaultAsset()
	if *config != "" {
		a, err := forward.LoadAssetFile(*config)
		if err != nil {
			log.Fatalf("Failed to load asset: %v", err)
		}
		asset = a
	}

	ctx, err := render.NewContext("soft")
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	sc := ctx.(*soft.Context)
	sc.SetScene(buildScene(sc))

	opts := []forward.Option{forward.WithAsset(asset)}
	cameras := forward.Cameras{mainCamera(), overlayCamera()}
	if *editor {
		opts = append(opts, forward.WithDebugHooks(forward.EditorHooks{}))
		cameras = append(cameras, sceneViewCamera())
	}
	pipeline, err := forward.NewPipeline(opts...)
	if err != nil {
		log.Fatalf("Failed to create pipeline: %v", err)
	}

	for i := 0; i < *frames; i++ {
		if err := pipeline.Render(ctx, &cameras); err != nil {
			log.Fatalf("Frame %d failed: %v", i, err)
		}
	}

	for i, f := range sc.Frames() {
		samples, balanced := f.Samples()
		logger.Info("frame submitted",
			slog.Int("submit", i),
			slog.String("camera", f.Camera),
			slog.String("format", f.ColorFormat.String()),
			slog.Int("lists", len(f.DrawLists())),
			slog.Int("draws", f.DrawCount()),
			slog.Any("samples", samples),
			slog.Bool("balanced", balanced),
			slog.Int("gizmos", len(f.Gizmos)))
	}
	st := sc.Stats()
	logger.Info("done",
		slog.Int("culls", st.Culls),
		slog.Int("renderer_lists", st.RendererLists),
		slog.Int("submits", st.Submits))
}

// buildScene creates three opaque cubes, two transparent panes and one
// object using a legacy shader.
func buildScene(ctx *soft.Context) *soft.Scene {
	shader := func(name string) *render.Shader {
		s, ok := ctx.FindShader(name)
		if !ok {
			log.Fatalf("Missing built-in shader %q", name)
		}
		return s
	}
	material := func(name, shaderName string, c color.RGBA) *render.Material {
		m := render.NewMaterial(name, shader(shaderName))
		m.Color = c
		return m
	}
	half := mgl32.Vec3{0.5, 0.5, 0.5}

	glassColor := colornames.Lightblue
	glassColor.A = 128

	red := material("Red", soft.ShaderUnlit, colornames.Red)
	green := material("Green", soft.ShaderUnlit, colornames.Green)
	glass := material("Glass", soft.ShaderUnlitTransparent, glassColor)
	legacy := material("Legacy", soft.ShaderLegacyDiffuse, colornames.Gray)

	sc := soft.NewScene()
	sc.Add(
		&render.Renderable{Name: "CubeNear", Bounds: render.BoundsFromCenter(mgl32.Vec3{0, 0, -3}, half), Material: red},
		&render.Renderable{Name: "CubeMid", Bounds: render.BoundsFromCenter(mgl32.Vec3{1, 0, -6}, half), Material: green},
		&render.Renderable{Name: "CubeFar", Bounds: render.BoundsFromCenter(mgl32.Vec3{-1, 0, -9}, half), Material: red},
		&render.Renderable{Name: "PaneNear", Bounds: render.BoundsFromCenter(mgl32.Vec3{0, 1, -4}, half), Material: glass},
		&render.Renderable{Name: "PaneFar", Bounds: render.BoundsFromCenter(mgl32.Vec3{0, 1, -8}, half), Material: glass},
		&render.Renderable{Name: "OldStatue", Bounds: render.BoundsFromCenter(mgl32.Vec3{2, 0, -5}, half), Material: legacy},
	)
	sc.AddLight(render.VisibleLight{Name: "Key", Position: mgl32.Vec3{0, 4, -4}, Range: 10, Color: colornames.White})
	sc.Skybox = render.NewMaterial("Sky", shader(soft.ShaderSkybox))
	return sc
}

func mainCamera() *render.Camera {
	cam := render.NewPerspectiveCamera("Main", 60, 16.0/9.0, 0.1, 100)
	cam.LookAt(mgl32.Vec3{0, 1, 2}, mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 1, 0})
	return cam
}

func overlayCamera() *render.Camera {
	cam := render.NewPerspectiveCamera("Overlay", 40, 16.0/9.0, 0.1, 20)
	cam.LookAt(mgl32.Vec3{4, 3, 0}, mgl32.Vec3{0, 0, -6}, mgl32.Vec3{0, 1, 0})
	return cam
}

func sceneViewCamera() *render.Camera {
	cam := render.NewPerspectiveCamera("SceneView", 60, 16.0/9.0, 0.1, 1000)
	cam.Type = render.CameraTypeSceneView
	cam.LookAt(mgl32.Vec3{0, 10, 10}, mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 1, 0})
	return cam
}
