package ribbon

// BuildOption configures a wall or ribbon build.
// Use functional options to customize per-call behavior.
//
// Example:
//
//	mesh := ribbon.BuildRibbon(points, style,
//		ribbon.WithTension(0.5),
//		ribbon.WithFeather(ribbon.FeatherConfig{
//			StartMode:   ribbon.FeatherShrink,
//			StartLength: 40,
//		}),
//	)
type BuildOption func(*buildOptions)

// buildOptions holds optional configuration for a build call.
type buildOptions struct {
	feather           *FeatherConfig
	opacityFeather    *OpacityFeatherConfig
	band              *VisibleBand
	tension           float64
	samplesPerSegment int
	closed            bool
	edgeMargin        float64
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		samplesPerSegment: 8,
	}
}

// WithFeather tapers the strip width near the path ends.
func WithFeather(f FeatherConfig) BuildOption {
	return func(o *buildOptions) {
		o.feather = &f
	}
}

// WithOpacityFeather ramps per-vertex alpha near the path ends.
func WithOpacityFeather(f OpacityFeatherConfig) BuildOption {
	return func(o *buildOptions) {
		o.opacityFeather = &f
	}
}

// WithVisibleBand remaps V coordinates into the texture's visible rows.
// Obtain the band from a BandCache or VisibleBandOf.
func WithVisibleBand(b VisibleBand) BuildOption {
	return func(o *buildOptions) {
		o.band = &b
	}
}

// WithTension sets the spline tension in [-1, 1]. Tension at or above
// 0.999 produces straight segments. Ribbon builds only.
func WithTension(t float64) BuildOption {
	return func(o *buildOptions) {
		o.tension = t
	}
}

// WithSamplesPerSegment sets how many samples each spline segment emits
// (minimum 2). Ribbon builds only.
func WithSamplesPerSegment(n int) BuildOption {
	return func(o *buildOptions) {
		o.samplesPerSegment = n
	}
}

// WithClosed treats the ribbon control polygon as a closed loop.
func WithClosed(closed bool) BuildOption {
	return func(o *buildOptions) {
		o.closed = closed
	}
}

// WithEdgeMargin remaps the fractional U range into
// [margin, 1-margin] to keep bilinear sampling away from repeat seams.
func WithEdgeMargin(margin float64) BuildOption {
	return func(o *buildOptions) {
		o.edgeMargin = margin
	}
}

// WallMesh is one built wall section: its geometry plus the samples and
// options that produced it, echoed back for caller introspection.
type WallMesh struct {
	Geometry MeshGeometry
	Samples  []Sample
	Loop     Loop
	Options  MeshOptions
}

// RibbonMesh is a built ribbon path with its samples and options echoed
// back.
type RibbonMesh struct {
	Geometry MeshGeometry
	Samples  []Sample
	Options  MeshOptions
}

// meshOptions assembles the per-sample mesh options from a style and the
// per-call build options.
func meshOptions(style Style, o buildOptions) MeshOptions {
	return MeshOptions{
		Join:           style.Join,
		MitreLimit:     style.MitreLimit,
		Feather:        o.feather,
		OpacityFeather: o.opacityFeather,
		Band:           o.band,
		LateralOffset:  style.TextureOffset.Y,
		UOffset:        style.TextureOffset.X,
		EdgeMargin:     o.edgeMargin,
		FlipHorizontal: style.FlipHorizontal,
		FlipVertical:   style.FlipVertical,
	}
}

// BuildWall carves the gap intervals out of the wall loops, samples each
// surviving section and assembles its strip geometry. Sections too short
// to render are skipped.
func BuildWall(loops []Loop, gaps []GapInterval, style Style, opts ...BuildOption) []WallMesh {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sections := ApplyGaps(loops, gaps)
	meshes := make([]WallMesh, 0, len(sections))
	for _, section := range sections {
		normalized := section.Normalize()
		if !normalized.Renderable() {
			Logger().Debug("skipping non-renderable wall section",
				"points", len(normalized.Points), "closed", normalized.Closed)
			continue
		}
		result := SamplePerimeter(normalized.Points, normalized.Closed,
			style.MaxSegmentLength, style.CornerSampleRadius)
		if len(result.Samples) < 2 {
			continue
		}
		mo := meshOptions(style, o)
		geom := BuildMesh(result.Samples, style.Width, style.TextureRepeatDistance, mo)
		meshes = append(meshes, WallMesh{
			Geometry: geom,
			Samples:  result.Samples,
			Loop:     normalized,
			Options:  mo,
		})
	}
	Logger().Debug("built wall meshes",
		"loops", len(loops), "gaps", len(gaps), "meshes", len(meshes))
	return meshes
}

// BuildRibbon samples a spline through the control points and assembles
// its strip geometry, including width and opacity feathering.
func BuildRibbon(controlPoints []ControlPoint, style Style, opts ...BuildOption) RibbonMesh {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	samples := SampleSpline(controlPoints, o.samplesPerSegment, o.tension, o.closed)
	mo := meshOptions(style, o)
	geom := BuildMesh(samples, style.Width, style.TextureRepeatDistance, mo)
	Logger().Debug("built ribbon mesh",
		"controlPoints", len(controlPoints), "samples", len(samples),
		"vertices", geom.VertexCount())
	return RibbonMesh{Geometry: geom, Samples: samples, Options: mo}
}
