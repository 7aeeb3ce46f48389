// Package ribbon converts 2D polylines and splines into textured ribbon
// and wall strip meshes.
//
// # Overview
//
// ribbon is a pure Go geometry engine. It takes an ordered polyline or a
// tension-controlled spline (optionally with per-point width multipliers
// and arc-length gap cut-outs) and produces flat triangulated strip
// geometry: positions, distance-accurate texture coordinates, per-vertex
// alpha, and a triangle index list. Corners are mitred or bevelled, path
// ends can be feathered in width and opacity, and texture V coordinates
// can be remapped into the non-transparent band of the source texture.
//
// The engine is synchronous and allocation-only: it never touches the GPU,
// never loads textures on its own, and never retains state between calls.
// Rendering the produced geometry is the caller's job.
//
// # Quick Start
//
//	import "github.com/meshform/ribbon"
//
//	// A closed square wall loop with a door opening carved out.
//	loop := ribbon.Loop{
//		Points: []ribbon.Point{{0, 0}, {300, 0}, {300, 200}, {0, 200}},
//		Closed: true,
//		Ref:    &ribbon.LoopRef{ShapeIndex: 0, HoleIndex: -1},
//	}
//	door := ribbon.GapInterval{
//		Key:            ribbon.LoopRef{ShapeIndex: 0, HoleIndex: -1},
//		CenterDistance: 150,
//		HalfLength:     40,
//	}
//
//	meshes := ribbon.BuildWall(
//		[]ribbon.Loop{loop},
//		[]ribbon.GapInterval{door},
//		ribbon.DefaultStyle().WithWidth(20),
//	)
//	for _, m := range meshes {
//		upload(m.Geometry) // renderer-side, outside this package
//	}
//
// # Architecture
//
// The pipeline is a chain of small pure stages:
//   - Wall case: loops -> ApplyGaps -> NormalizePoints -> SamplePerimeter
//     -> BuildMesh
//   - Ribbon case: control points -> SampleSpline -> BuildMesh
//
// Corner samples carry the incoming/outgoing tangents so BuildMesh can
// reuse exact join offsets instead of naive perpendicular extrusion.
//
// # Textures
//
// The engine only needs a texture's pixel dimensions and, optionally, its
// visible row band (the vertical span of rows containing non-transparent
// pixels). DecodeTexture and BandCache cover that boundary; actual texture
// upload and sampling belong to the renderer.
package ribbon
