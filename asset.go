package forward

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/forward/render"
)

// Asset defaults.
const (
	DefaultBufferName = "Render Camera"
	DefaultShaderTag  = render.ShaderTagID("SRPDefaultUnlit")
)

// ErrInvalidAsset is returned when an asset fails validation.
var ErrInvalidAsset = errors.New("forward: invalid asset")

// Asset is the pipeline configuration, usually loaded from a TOML file:
//
//	buffer_name = "Render Camera"
//	shader_tag  = "SRPDefaultUnlit"
//	clear_color = [0.0, 0.0, 0.0, 0.0]
//	disable_skybox = false
type Asset struct {
	// BufferName names the command buffer and its profiling sample scope.
	BufferName string `toml:"buffer_name"`

	// ShaderTag is the pass drawn for opaque and transparent objects.
	ShaderTag string `toml:"shader_tag"`

	// ClearColor is the RGBA color the camera target is cleared to.
	ClearColor [4]float64 `toml:"clear_color"`

	// DisableSkybox skips the skybox pass. The zero value draws the sky.
	DisableSkybox bool `toml:"disable_skybox"`
}

// DefaultAsset returns the default configuration: transparent black clear
// color, skybox on.
func DefaultAsset() Asset {
	return Asset{
		BufferName: DefaultBufferName,
		ShaderTag:  string(DefaultShaderTag),
	}
}

// LoadAsset decodes a TOML asset. Missing keys keep their defaults and
// unknown keys are rejected.
func LoadAsset(r io.Reader) (Asset, error) {
	a := DefaultAsset()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return Asset{}, fmt.Errorf("forward: decode asset: %w", err)
	}
	if err := a.Validate(); err != nil {
		return Asset{}, err
	}
	return a, nil
}

// LoadAssetFile reads a TOML asset from path.
func LoadAssetFile(path string) (Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, fmt.Errorf("forward: read asset: %w", err)
	}
	return LoadAsset(bytes.NewReader(data))
}

// Validate checks the asset for unusable values.
func (a Asset) Validate() error {
	if a.BufferName == "" {
		return fmt.Errorf("%w: empty buffer_name", ErrInvalidAsset)
	}
	if a.ShaderTag == "" {
		return fmt.Errorf("%w: empty shader_tag", ErrInvalidAsset)
	}
	for i, c := range a.ClearColor {
		if c < 0 || c > 1 {
			return fmt.Errorf("%w: clear_color[%d] = %g out of [0, 1]", ErrInvalidAsset, i, c)
		}
	}
	return nil
}

// Encode writes the asset as TOML.
func (a Asset) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(a)
}

// clearColor returns the clear color as a GPU color.
func (a Asset) clearColor() gputypes.Color {
	return gputypes.Color{R: a.ClearColor[0], G: a.ClearColor[1], B: a.ClearColor[2], A: a.ClearColor[3]}
}
