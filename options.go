package forward

// Option configures a CameraRenderer or Pipeline during creation.
//
// Example:
//
//	// Production defaults
//	p, err := forward.NewPipeline()
//
//	// Editor build with a configured asset
//	p, err := forward.NewPipeline(
//	    forward.WithAsset(asset),
//	    forward.WithDebugHooks(forward.EditorHooks{}),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for renderer creation.
type rendererOptions struct {
	asset Asset
	hooks DebugHooks
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		asset: DefaultAsset(),
		hooks: NopDebugHooks{},
	}
}

// WithAsset sets the pipeline configuration. The asset is validated when
// the renderer is created.
func WithAsset(a Asset) Option {
	return func(o *rendererOptions) {
		o.asset = a
	}
}

// WithDebugHooks sets the debug hooks run before submission.
// A nil value restores NopDebugHooks.
func WithDebugHooks(h DebugHooks) Option {
	return func(o *rendererOptions) {
		if h == nil {
			h = NopDebugHooks{}
		}
		o.hooks = h
	}
}

// WithCommandBufferName overrides the asset's command buffer name.
func WithCommandBufferName(name string) Option {
	return func(o *rendererOptions) {
		if name != "" {
			o.asset.BufferName = name
		}
	}
}
