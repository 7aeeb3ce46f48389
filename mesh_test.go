package ribbon

import (
	"math"
	"testing"
)

// straightSamples builds a simple horizontal sample chain of the given
// length with evenly spaced samples.
func straightSamples(length float64, count int) []Sample {
	samples := make([]Sample, count)
	for i := range samples {
		d := length * float64(i) / float64(count-1)
		samples[i] = Sample{
			Pos:             Pt(d, 0),
			Distance:        d,
			Tangent:         Pt(1, 0),
			WidthMultiplier: 1,
		}
	}
	return samples
}

func checkGeometryInvariants(t *testing.T, g MeshGeometry) {
	t.Helper()
	if len(g.Positions) != len(g.UVs) {
		t.Errorf("len(Positions) = %d, len(UVs) = %d, want equal",
			len(g.Positions), len(g.UVs))
	}
	if len(g.Positions) != 2*len(g.Alphas) {
		t.Errorf("len(Positions) = %d, want 2*len(Alphas) = %d",
			len(g.Positions), 2*len(g.Alphas))
	}
	vertexCount := uint32(g.VertexCount())
	for i, idx := range g.Indices {
		if idx >= vertexCount {
			t.Errorf("index[%d] = %d out of range (%d vertices)", i, idx, vertexCount)
		}
	}
	for i, v := range g.Positions {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Positions[%d] = %v", i, v)
		}
	}
	for i, v := range g.UVs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("UVs[%d] = %v", i, v)
		}
	}
}

func TestBuildMesh_DegenerateInput(t *testing.T) {
	if g := BuildMesh(nil, 20, 64, MeshOptions{}); !g.IsEmpty() {
		t.Errorf("nil samples produced %d vertices", g.VertexCount())
	}
	one := straightSamples(10, 2)[:1]
	if g := BuildMesh(one, 20, 64, MeshOptions{}); !g.IsEmpty() {
		t.Errorf("single sample produced %d vertices", g.VertexCount())
	}
}

func TestBuildMesh_StraightStrip(t *testing.T) {
	samples := straightSamples(100, 5)
	g := BuildMesh(samples, 20, 50, MeshOptions{})
	checkGeometryInvariants(t, g)

	if g.VertexCount() != 10 {
		t.Fatalf("vertices = %d, want 10", g.VertexCount())
	}
	if len(g.Indices) != 6*4 {
		t.Errorf("indices = %d, want %d", len(g.Indices), 6*4)
	}
	// Left edge at y=+10, right edge at y=-10 for an eastward tangent.
	if g.Positions[1] != 10 || g.Positions[3] != -10 {
		t.Errorf("first pair y = (%v,%v), want (10,-10)", g.Positions[1], g.Positions[3])
	}
	// U runs to length/repeat = 2 at the far end.
	lastU := g.UVs[len(g.UVs)-4]
	if math.Abs(lastU-2) > epsilon {
		t.Errorf("final U = %v, want 2", lastU)
	}
	// Full-height V with no band or flip.
	if g.UVs[1] != 0 || g.UVs[3] != 1 {
		t.Errorf("first pair V = (%v,%v), want (0,1)", g.UVs[1], g.UVs[3])
	}
	if g.TotalLength != 100 {
		t.Errorf("TotalLength = %v, want 100", g.TotalLength)
	}
}

func TestBuildMesh_SquareLoopScenario(t *testing.T) {
	// Square loop, width 20, mitre limit 4, sample spacing 20.
	result := SamplePerimeter(squarePoints, true, 20, 0)
	samples := result.Samples

	distinct := map[int]bool{}
	for _, s := range samples {
		if s.Corner != nil {
			distinct[s.Corner.VertexIndex] = true
		}
	}
	if len(distinct) != 4 {
		t.Fatalf("distinct corner samples = %d, want 4", len(distinct))
	}

	g := BuildMesh(samples, 20, 64, MeshOptions{Join: JoinMitre, MitreLimit: 4})
	checkGeometryInvariants(t, g)

	if want := 6 * (len(samples) - 1); len(g.Indices) != want {
		t.Errorf("indices = %d, want %d", len(g.Indices), want)
	}

	// Each corner's emitted vertex pair must be finite and within the
	// mitre bound of the sample position.
	halfWidth := 10.0
	bound := 4*halfWidth + 1e-9
	for i, s := range samples {
		if s.Corner == nil {
			continue
		}
		left := Pt(g.Positions[4*i], g.Positions[4*i+1])
		right := Pt(g.Positions[4*i+2], g.Positions[4*i+3])
		if !left.IsFinite() || !right.IsFinite() {
			t.Errorf("corner %d vertices not finite: %v %v", s.Corner.VertexIndex, left, right)
		}
		if d := left.Distance(s.Pos); d > bound {
			t.Errorf("corner %d left vertex %v from center, bound %v", s.Corner.VertexIndex, d, bound)
		}
		if d := right.Distance(s.Pos); d > bound {
			t.Errorf("corner %d right vertex %v from center, bound %v", s.Corner.VertexIndex, d, bound)
		}
	}
}

func TestBuildMesh_CornerUsesMitreOffset(t *testing.T) {
	// An L-shaped path: the corner sample's vertex pair must land on the
	// mitre diagonal, not the plain perpendicular.
	result := SamplePerimeter([]Point{{0, 0}, {100, 0}, {100, 100}}, false, 50, 0)
	samples := result.Samples
	g := BuildMesh(samples, 20, 64, MeshOptions{Join: JoinMitre, MitreLimit: 4})
	checkGeometryInvariants(t, g)

	cornerIdx := -1
	for i, s := range samples {
		if s.Corner != nil && s.Corner.VertexIndex == 1 {
			cornerIdx = i
		}
	}
	if cornerIdx < 0 {
		t.Fatal("no corner sample for vertex 1")
	}
	left := Pt(g.Positions[4*cornerIdx], g.Positions[4*cornerIdx+1])
	want := Pt(100, 0).Add(Pt(-10, 10)) // mitre offset for the 90-degree left turn
	if !pointsEqual(left, want, 1e-9) {
		t.Errorf("corner left vertex = %v, want %v", left, want)
	}
	if d := left.Distance(Pt(100, 0)); math.Abs(d-10*math.Sqrt2) > 1e-9 {
		t.Errorf("mitre distance = %v, want %v", d, 10*math.Sqrt2)
	}
}

func TestBuildMesh_BandRemap(t *testing.T) {
	samples := straightSamples(100, 3)
	band := VisibleBand{TopRow: 2, BottomRow: 5, TotalHeight: 8}
	g := BuildMesh(samples, 20, 50, MeshOptions{Band: &band})

	// V remaps into [2/8, 6/8].
	if g.UVs[1] != 0.25 || g.UVs[3] != 0.75 {
		t.Errorf("banded V = (%v,%v), want (0.25,0.75)", g.UVs[1], g.UVs[3])
	}
}

func TestBuildMesh_VerticalFlip(t *testing.T) {
	samples := straightSamples(100, 3)
	g := BuildMesh(samples, 20, 50, MeshOptions{FlipVertical: true})
	if g.UVs[1] != 1 || g.UVs[3] != 0 {
		t.Errorf("flipped V = (%v,%v), want (1,0)", g.UVs[1], g.UVs[3])
	}
}

func TestBuildMesh_HorizontalFlipAndOffset(t *testing.T) {
	samples := straightSamples(100, 3)
	g := BuildMesh(samples, 20, 50, MeshOptions{FlipHorizontal: true, UOffset: 3})

	if first := g.UVs[0]; math.Abs(first-3) > epsilon {
		t.Errorf("first U = %v, want 3", first)
	}
	last := g.UVs[len(g.UVs)-4]
	if math.Abs(last-1) > epsilon {
		t.Errorf("final U = %v, want offset-negated 1", last)
	}
}

func TestBuildMesh_EdgeMargin(t *testing.T) {
	samples := straightSamples(100, 3)
	g := BuildMesh(samples, 20, 50, MeshOptions{EdgeMargin: 0.1})

	// u=0 remaps to the margin, u=2 to 2+margin.
	if math.Abs(g.UVs[0]-0.1) > epsilon {
		t.Errorf("first U = %v, want 0.1", g.UVs[0])
	}
	last := g.UVs[len(g.UVs)-4]
	if math.Abs(last-2.1) > epsilon {
		t.Errorf("final U = %v, want 2.1", last)
	}
}

func TestBuildMesh_LateralOffsetShiftsCenterline(t *testing.T) {
	samples := straightSamples(100, 3)
	g := BuildMesh(samples, 20, 50, MeshOptions{LateralOffset: 5})
	checkGeometryInvariants(t, g)

	// Eastward tangent: normal is +y, so the whole strip shifts up by 5.
	if g.Positions[1] != 15 || g.Positions[3] != -5 {
		t.Errorf("shifted pair y = (%v,%v), want (15,-5)", g.Positions[1], g.Positions[3])
	}
}

func TestBuildMesh_WidthMultiplierAndFeather(t *testing.T) {
	samples := straightSamples(100, 5)
	for i := range samples {
		samples[i].WidthMultiplier = 2
	}
	feather := FeatherConfig{StartMode: FeatherShrink, StartLength: 50}
	g := BuildMesh(samples, 20, 50, MeshOptions{Feather: &feather})
	checkGeometryInvariants(t, g)

	// At distance 0 the shrink feather bottoms out at the width floor.
	if got := g.Positions[1]; math.Abs(got-10*minWidthMultiplier*2) > epsilon {
		t.Errorf("feathered start half-width = %v, want %v", got, 10*minWidthMultiplier*2)
	}
	// At distance 50 the feather is done: half-width = 10 * 2.
	if got := g.Positions[4*2+1]; math.Abs(got-20) > epsilon {
		t.Errorf("mid half-width = %v, want 20", got)
	}
}

func TestBuildMesh_OpacityFeatherAlpha(t *testing.T) {
	samples := straightSamples(100, 5)
	opacity := OpacityFeatherConfig{StartEnabled: true, StartLength: 50}
	g := BuildMesh(samples, 20, 50, MeshOptions{OpacityFeather: &opacity})

	wantAlphas := []float64{0, 0.5, 1, 1, 1}
	for i, want := range wantAlphas {
		if got := g.Alphas[2*i]; math.Abs(got-want) > epsilon {
			t.Errorf("alpha[%d] = %v, want %v", i, got, want)
		}
		if g.Alphas[2*i] != g.Alphas[2*i+1] {
			t.Errorf("pair alpha mismatch at %d", i)
		}
	}
}

func TestBuildMesh_ZeroRepeatSpacing(t *testing.T) {
	samples := straightSamples(100, 3)
	g := BuildMesh(samples, 20, 0, MeshOptions{})
	checkGeometryInvariants(t, g)
}

func TestBuildMesh_DegenerateTangentFallsBack(t *testing.T) {
	samples := straightSamples(100, 3)
	samples[1].Tangent = Pt(0, 0)
	g := BuildMesh(samples, 20, 50, MeshOptions{})
	checkGeometryInvariants(t, g)

	// The degenerate sample reuses the previous normal.
	if g.Positions[5] != 10 || g.Positions[7] != -10 {
		t.Errorf("fallback pair y = (%v,%v), want (10,-10)", g.Positions[5], g.Positions[7])
	}
}

func TestMeshGeometry_Bounds(t *testing.T) {
	samples := straightSamples(100, 3)
	g := BuildMesh(samples, 20, 50, MeshOptions{})

	b := g.Bounds()
	if !pointsEqual(b.Min, Pt(0, -10), epsilon) || !pointsEqual(b.Max, Pt(100, 10), epsilon) {
		t.Errorf("Bounds = %v..%v, want (0,-10)..(100,10)", b.Min, b.Max)
	}
	if got := (MeshGeometry{}).Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds = %v, want zero", got)
	}
}
