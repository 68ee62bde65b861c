package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/capholes/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// This file parses the svg fixtures and outputs hole outlines. This is not a
// full (or even correct) svg parser. It finds whatever the first polygon is,
// then converts that into a CCW outline in the z=0 plane. If anything goes
// wrong, it dies.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []r3.Vec {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]r3.Vec, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, r3.Vec{X: x, Y: y})
	}

	// SVG is y-down, so most outlines come in clockwise. Ensure CCW.
	if signedArea(points) < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	return points
}

var fixtureNames = []string{"hexagon", "star", "notch", "blob"}

// Shoelace area of an outline in the z=0 plane. Positive when CCW.
func signedArea(points []r3.Vec) float64 {
	var area float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// Flat ring around a hole outline, with links computed. Returns the mesh and
// an edge on the inner hole. Inner boundary edges are slot 2 of every odd
// triangle (see mesh.Ring).
func ringAround(outline []r3.Vec) (*mesh.Mesh, mesh.PolyEdge) {
	m := mesh.Ring(outline, 2)
	mesh.ComputeEdgeLinks(m)
	return m, mesh.PolyEdge{Tri: 1, Slot: 2}
}

// Sphere with five separated quads removed. Two of the holes are 2x2 blocks
// of quads, which also removes the vertex in their middle.
func sphereWithFiveHoles() *mesh.Mesh {
	const rings, segments = 10, 16
	sphere := mesh.UVSphere(rings, segments)
	removed := make(map[mesh.TriHandle]bool)
	removeQuad := func(r, j int) {
		for _, t := range mesh.SphereBand(rings, segments, r, j) {
			removed[t] = true
		}
	}
	removeQuad(2, 0)
	removeQuad(2, 6)
	removeQuad(5, 3)
	removeQuad(5, 4)
	removeQuad(6, 3)
	removeQuad(6, 4)
	removeQuad(5, 11)
	removeQuad(5, 12)
	removeQuad(6, 11)
	removeQuad(6, 12)
	removeQuad(8, 8)
	m := mesh.Filter(sphere, func(t mesh.TriHandle) bool { return !removed[t] })
	mesh.ComputeEdgeLinks(m)
	return m
}

// Sphere with its whole top cap removed, leaving one big hole.
func sphereWithOpenTop(rings, segments int) *mesh.Mesh {
	sphere := mesh.UVSphere(rings, segments)
	m := mesh.Filter(sphere, func(t mesh.TriHandle) bool { return int(t) >= segments })
	mesh.ComputeEdgeLinks(m)
	return m
}
