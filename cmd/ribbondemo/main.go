// Command ribbondemo demonstrates the ribbon geometry engine.
//
// It builds a square wall loop with a door opening and a feathered spline
// ribbon, prints buffer statistics for both, and optionally dumps the
// full geometry as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meshform/ribbon"
)

func main() {
	var (
		width   = flag.Float64("width", 20, "strip width in world units")
		tension = flag.Float64("tension", 0, "spline tension in [-1,1]")
		output  = flag.String("output", "", "write geometry JSON to this file")
	)
	flag.Parse()

	style := ribbon.DefaultStyle().WithWidth(*width)

	walls := buildWallDemo(style)
	path := buildRibbonDemo(style, *tension)

	for i, w := range walls {
		printStats(fmt.Sprintf("wall[%d]", i), w.Geometry)
	}
	printStats("ribbon", path.Geometry)

	if *output != "" {
		dump := struct {
			Walls  []ribbon.WallMesh `json:"walls"`
			Ribbon ribbon.RibbonMesh `json:"ribbon"`
		}{walls, path}
		data, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode: %v", err)
		}
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			log.Fatalf("Failed to write: %v", err)
		}
		log.Printf("Geometry written to %s\n", *output)
	}
}

// buildWallDemo carves a door and a window out of a closed room loop.
func buildWallDemo(style ribbon.Style) []ribbon.WallMesh {
	outer := ribbon.LoopRef{ShapeIndex: 0, HoleIndex: -1}
	loop := ribbon.Loop{
		Points: []ribbon.Point{
			{X: 0, Y: 0}, {X: 400, Y: 0}, {X: 400, Y: 300}, {X: 0, Y: 300},
		},
		Closed: true,
		Ref:    &outer,
	}
	gaps := []ribbon.GapInterval{
		{Key: outer, CenterDistance: 200, HalfLength: 45},  // door
		{Key: outer, CenterDistance: 550, HalfLength: 30},  // window
	}
	return ribbon.BuildWall([]ribbon.Loop{loop}, gaps, style)
}

// buildRibbonDemo draws a feathered S-curve with varying width.
func buildRibbonDemo(style ribbon.Style, tension float64) ribbon.RibbonMesh {
	points := []ribbon.ControlPoint{
		ribbon.Cp(0, 0),
		{Point: ribbon.Pt(120, 80), WidthRight: 1.6},
		{Point: ribbon.Pt(240, -40), WidthLeft: 0.7},
		ribbon.Cp(360, 40),
	}
	return ribbon.BuildRibbon(points, style,
		ribbon.WithTension(tension),
		ribbon.WithSamplesPerSegment(12),
		ribbon.WithFeather(ribbon.FeatherConfig{
			StartMode:   ribbon.FeatherShrink,
			EndMode:     ribbon.FeatherShrink,
			StartLength: 40,
			EndLength:   40,
		}),
		ribbon.WithOpacityFeather(ribbon.OpacityFeatherConfig{
			StartEnabled: true,
			EndEnabled:   true,
			StartLength:  30,
			EndLength:    30,
		}),
		ribbon.WithEdgeMargin(0.01),
	)
}

func printStats(name string, g ribbon.MeshGeometry) {
	b := g.Bounds()
	log.Printf("%s: %d vertices, %d triangles, length %.1f, bounds (%.1f,%.1f)-(%.1f,%.1f)\n",
		name, g.VertexCount(), len(g.Indices)/3, g.TotalLength,
		b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}
