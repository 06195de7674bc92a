package render

import (
	"fmt"

	"github.com/milk9111/wiggle/config"
	"github.com/milk9111/wiggle/geom"
)

// quadIndices are the two triangles of the textured quad.
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// QuadCorners returns the quad corners in model space, counter-clockwise
// from bottom-left, and their texture coordinates in [0,1].
func QuadCorners(half float64) (pos [4]geom.Vec2, uv [4]geom.Vec2) {
	pos = [4]geom.Vec2{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}
	uv = [4]geom.Vec2{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
		{X: 0, Y: 0},
	}
	return pos, uv
}

// ToScreen maps a model-space point (origin at the canvas centre, y up) to
// pixel coordinates.
func ToScreen(p, displacement, canvas geom.Vec2) geom.Vec2 {
	q := p.Add(displacement)
	return geom.Vec2{X: canvas.X/2 + q.X, Y: canvas.Y/2 - q.Y}
}

// PolylineMesh strokes the configured points and returns model-space
// vertices with their triangle indices.
func PolylineMesh(cfg config.PolylineConfig) ([]geom.Vec2, []uint16, error) {
	pts := make([]geom.Vec2, len(cfg.Points))
	for i, p := range cfg.Points {
		pts[i] = geom.V(p[0], p[1])
	}
	verts, err := geom.StrokeLimit(pts, cfg.Width, cfg.MiterLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("render: polyline: %w", err)
	}
	for i := range verts {
		verts[i] = verts[i].Mul(cfg.Scale)
	}
	return verts, geom.StrokeIndices(len(pts)), nil
}
