package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/capholes/dbg"
	"github.com/osuushi/capholes/mesh"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Padding around the outline so the labels fit
const dbgDrawPadding = 60

// Largest side of the drawn outline in pixels, padding excluded. Larger
// outlines are drawn at a reduced scale.
const dbgDrawMaxSize = 4096

// Draw the boundary of the hole that seed lies on to a PNG file. The outline
// is projected onto the plane that best fits it (Newell's method), and every
// vertex is labelled with its debug name. With catTo set, the image is also
// written to it as an inline image escape sequence (iTerm only).
func DrawPerimeter(store MeshStore, seed mesh.PolyEdge, path string, scale float64, catTo io.Writer) error {
	perimeter := WalkBoundary(store, seed)
	points := projectPerimeter(store, perimeter)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	if extent := math.Max(maxX-minX, maxY-minY); scale*extent > dbgDrawMaxSize {
		scale = dbgDrawMaxSize / extent
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is at the bottom left, then pad, scale and move to min
	toCanvas := gg.Identity().
		Translate(0, float64(height)).
		Scale(1, -1).
		Translate(dbgDrawPadding, dbgDrawPadding).
		Scale(scale, scale).
		Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, p := range points {
		x, y := toCanvas.TransformPoint(p.X, p.Y)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
	c.SetRGBA(0, 0.5, 0, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	edges := perimeter.Edges()
	for i, p := range points {
		x, y := toCanvas.TransformPoint(p.X, p.Y)
		c.SetRGB(1, 1, 0)
		c.DrawCircle(x, y, 3)
		c.Fill()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.Name(store.Tail(edges[i])), x, y-8, 0.5, 0)
	}

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving perimeter drawing to %s", path)
	}
	if catTo != nil {
		return errors.Wrap(imgcat.CatFile(path, catTo), "printing perimeter drawing")
	}
	return nil
}

// 2D coordinates of the tail vertex of every perimeter edge, in perimeter
// order.
func projectPerimeter(store MeshStore, perimeter *Perimeter) []r3.Vec {
	edges := perimeter.Edges()
	positions := make([]r3.Vec, len(edges))
	for i, e := range edges {
		positions[i] = store.Pos(store.Tail(e))
	}

	var normal r3.Vec
	for i, p := range positions {
		q := positions[(i+1)%len(positions)]
		normal = r3.Add(normal, r3.Cross(p, q))
	}
	if r3.Norm(normal) == 0 {
		normal = r3.Vec{Z: 1}
	}
	normal = r3.Unit(normal)

	// Any vector not parallel to the normal works as a seed for the basis
	helper := r3.Vec{X: 1}
	if math.Abs(normal.X) > 0.9 {
		helper = r3.Vec{Y: 1}
	}
	u := r3.Unit(r3.Cross(helper, normal))
	v := r3.Cross(normal, u)

	points := make([]r3.Vec, len(positions))
	for i, p := range positions {
		points[i] = r3.Vec{X: r3.Dot(p, u), Y: r3.Dot(p, v)}
	}
	return points
}
