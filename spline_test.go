package ribbon

import (
	"math"
	"testing"
)

func TestSampleSpline_DegenerateInput(t *testing.T) {
	if got := SampleSpline(nil, 8, 0, false); got != nil {
		t.Errorf("nil input = %v, want nil", got)
	}
	if got := SampleSpline([]ControlPoint{Cp(0, 0)}, 8, 0, false); got != nil {
		t.Errorf("single point = %v, want nil", got)
	}
	if got := SampleSpline([]ControlPoint{Cp(0, 0), Cp(1, 0)}, 8, 0, true); got != nil {
		t.Errorf("closed two points = %v, want nil", got)
	}
}

func TestSampleSpline_LinearAtMaxTension(t *testing.T) {
	// Colinear control points at tension 1 must deviate from the chord by
	// less than 1e-6.
	points := []ControlPoint{Cp(0, 0), Cp(50, 0), Cp(100, 0)}
	samples := SampleSpline(points, 8, 1, false)

	if len(samples) == 0 {
		t.Fatal("no samples")
	}
	for i, s := range samples {
		if math.Abs(s.Pos.Y) >= 1e-6 {
			t.Errorf("sample %d deviates from chord: y = %v", i, s.Pos.Y)
		}
	}
	last := samples[len(samples)-1]
	if math.Abs(last.Distance-100) > 1e-9 {
		t.Errorf("total distance = %v, want 100", last.Distance)
	}
}

func TestSampleSpline_LinearCornerTagging(t *testing.T) {
	// A sharp right angle at max tension carries corner tags so the mesh
	// builder mitres it exactly.
	points := []ControlPoint{Cp(0, 0), Cp(100, 0), Cp(100, 100)}
	samples := SampleSpline(points, 4, 1, false)

	var tagged []int
	for _, s := range samples {
		if s.Corner != nil {
			tagged = append(tagged, s.Corner.VertexIndex)
		}
	}
	want := []int{0, 1, 2}
	if len(tagged) != len(want) {
		t.Fatalf("tagged corners = %v, want %v", tagged, want)
	}
	for i := range want {
		if tagged[i] != want[i] {
			t.Errorf("tagged[%d] = %d, want %d", i, tagged[i], want[i])
		}
	}
}

func TestSampleSpline_LinearSmoothVertexUntagged(t *testing.T) {
	// A 10-degree bend stays under the corner rule even in linear mode.
	points := []ControlPoint{
		Cp(0, 0),
		Cp(100, 0),
		Cp(100+100*math.Cos(10*math.Pi/180), 100*math.Sin(10*math.Pi/180)),
	}
	samples := SampleSpline(points, 4, 1, false)
	for _, s := range samples {
		if s.Corner != nil && s.Corner.VertexIndex == 1 {
			t.Errorf("smooth vertex 1 tagged as corner")
		}
	}
}

func TestSampleSpline_InterpolatesControlPoints(t *testing.T) {
	points := []ControlPoint{Cp(0, 0), Cp(50, 80), Cp(120, 30), Cp(200, 90)}
	samplesPerSegment := 6
	samples := SampleSpline(points, samplesPerSegment, 0, false)

	wantCount := 3*(samplesPerSegment-1) + 1
	if len(samples) != wantCount {
		t.Fatalf("samples = %d, want %d", len(samples), wantCount)
	}
	// Catmull-Rom interpolates: segment boundaries hit the control points.
	for i, cp := range points {
		got := samples[i*(samplesPerSegment-1)].Pos
		if !pointsEqual(got, cp.Point, 1e-9) {
			t.Errorf("control point %d sampled at %v, want %v", i, got, cp.Point)
		}
	}
}

func TestSampleSpline_ClosedWrapsToStart(t *testing.T) {
	points := []ControlPoint{Cp(0, 0), Cp(100, 0), Cp(50, 80)}
	samples := SampleSpline(points, 5, 0, true)

	if len(samples) == 0 {
		t.Fatal("no samples")
	}
	last := samples[len(samples)-1]
	if !pointsEqual(last.Pos, points[0].Point, 1e-9) {
		t.Errorf("closed spline ends at %v, want %v", last.Pos, points[0].Point)
	}
}

func TestSampleSpline_CoincidentControlPoints(t *testing.T) {
	// Duplicated control points must not produce NaN positions or
	// tangents thanks to the knot-step floor.
	points := []ControlPoint{Cp(0, 0), Cp(0, 0), Cp(100, 50), Cp(100, 50)}
	samples := SampleSpline(points, 6, 0, false)

	for i, s := range samples {
		if !s.Pos.IsFinite() {
			t.Errorf("sample %d position not finite: %v", i, s.Pos)
		}
		if !s.Tangent.IsFinite() {
			t.Errorf("sample %d tangent not finite: %v", i, s.Tangent)
		}
		if math.IsNaN(s.Distance) {
			t.Errorf("sample %d distance is NaN", i)
		}
	}
}

func TestSampleSpline_WidthResolution(t *testing.T) {
	tests := []struct {
		name      string
		start     ControlPoint
		end       ControlPoint
		wantStart float64
		wantEnd   float64
	}{
		{
			name:      "defaults to 1",
			start:     Cp(0, 0),
			end:       Cp(100, 0),
			wantStart: 1, wantEnd: 1,
		},
		{
			name:      "outgoing prefers right, incoming prefers left",
			start:     ControlPoint{Point: Pt(0, 0), WidthLeft: 3, WidthRight: 2},
			end:       ControlPoint{Point: Pt(100, 0), WidthLeft: 0.5, WidthRight: 4},
			wantStart: 2, wantEnd: 0.5,
		},
		{
			name:      "fallback to the other side",
			start:     ControlPoint{Point: Pt(0, 0), WidthLeft: 3},
			end:       ControlPoint{Point: Pt(100, 0), WidthRight: 4},
			wantStart: 3, wantEnd: 4,
		},
		{
			name:      "clamped to range",
			start:     ControlPoint{Point: Pt(0, 0), WidthRight: 100},
			end:       ControlPoint{Point: Pt(100, 0), WidthLeft: 0.001},
			wantStart: 5, wantEnd: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := SampleSpline([]ControlPoint{tt.start, tt.end}, 5, 0, false)
			if len(samples) != 5 {
				t.Fatalf("samples = %d, want 5", len(samples))
			}
			if got := samples[0].WidthMultiplier; math.Abs(got-tt.wantStart) > epsilon {
				t.Errorf("start width = %v, want %v", got, tt.wantStart)
			}
			if got := samples[4].WidthMultiplier; math.Abs(got-tt.wantEnd) > epsilon {
				t.Errorf("end width = %v, want %v", got, tt.wantEnd)
			}
			mid := samples[2].WidthMultiplier
			want := (tt.wantStart + tt.wantEnd) / 2
			if math.Abs(mid-want) > epsilon {
				t.Errorf("mid width = %v, want %v", mid, want)
			}
		})
	}
}

func TestSampleSpline_DistanceIsEuclidean(t *testing.T) {
	points := []ControlPoint{Cp(0, 0), Cp(60, 40), Cp(150, 10)}
	samples := SampleSpline(points, 10, 0.2, false)

	sum := 0.0
	for i := 1; i < len(samples); i++ {
		sum += samples[i].Pos.Distance(samples[i-1].Pos)
		if math.Abs(samples[i].Distance-sum) > 1e-9 {
			t.Fatalf("sample %d distance = %v, want running sum %v",
				i, samples[i].Distance, sum)
		}
	}
}
