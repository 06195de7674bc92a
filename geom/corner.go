package geom

import "errors"

var (
	ErrTooFewPoints     = errors.New("geom: polyline needs at least 3 points")
	ErrNonPositiveWidth = errors.New("geom: stroke width must be positive")
	ErrTooManyPoints    = errors.New("geom: polyline exceeds 16-bit index range")
)

// DefaultMiterLimit bounds the miter length as a multiple of the half width.
// Joins sharper than that fall back to a plain perpendicular offset.
const DefaultMiterLimit = 10

const (
	epsilon         = 1e-6
	straightEpsilon = 1e-4
)

// CornerVertices returns the two stroke-edge vertices at u for the polyline
// corner t -> u -> v stroked with the given width, using a miter join.
//
// The first vertex lies to the right of the incoming edge, the second to the
// left. Degenerate joins (zero-length edges, straight lines, near reversals)
// produce a perpendicular offset of a single edge instead of NaN or Inf.
func CornerVertices(t, u, v Vec2, width float64) (Vec2, Vec2) {
	return CornerVerticesLimit(t, u, v, width, DefaultMiterLimit)
}

// CornerVerticesLimit is CornerVertices with an explicit miter limit.
func CornerVerticesLimit(t, u, v Vec2, width, miterLimit float64) (Vec2, Vec2) {
	r := width / 2
	a := t.Sub(u)
	b := v.Sub(u)
	la, lb := a.Len(), b.Len()
	if la <= epsilon || lb <= epsilon {
		return edgeOffset(t, u, v, r)
	}

	// |a|b + |b|a bisects the corner; dividing by |a||b| keeps the
	// straight-line test independent of edge lengths.
	sum := a.Mul(1 / la).Add(b.Mul(1 / lb))
	if sum.Len() <= straightEpsilon {
		return edgeOffset(t, u, v, r)
	}
	d := sum.Normalize()
	dPerp := d.Perp()

	tu := u.Sub(t)
	ltu := tu.Len()
	denom := tu.Dot(dPerp)
	if miterLimit < 1 {
		miterLimit = 1
	}
	// |denom|/ltu is the sine between the miter and the incoming edge; the
	// miter length is r over that sine.
	sin := denom / ltu
	if sin < 0 {
		sin = -sin
	}
	if sin*miterLimit < 1 {
		return edgeOffset(t, u, v, r)
	}

	shift := d.Mul(r * ltu * dPerp.Len() / denom)
	return u.Add(shift), u.Sub(shift)
}

// edgeOffset offsets u perpendicular to the incoming edge, or to the outgoing
// edge when the incoming one has no length.
func edgeOffset(t, u, v Vec2, r float64) (Vec2, Vec2) {
	dir := u.Sub(t).Normalize()
	if dir == (Vec2{}) {
		dir = v.Sub(u).Normalize()
	}
	shift := dir.RPerp().Mul(r)
	return u.Add(shift), u.Sub(shift)
}

// Stroke returns a right/left vertex pair for every point of the polyline,
// laid out as [right0, left0, right1, left1, ...]. Interior points use a
// miter join; the endpoints are squared off perpendicular to their edge.
func Stroke(points []Vec2, width float64) ([]Vec2, error) {
	return StrokeLimit(points, width, DefaultMiterLimit)
}

// StrokeLimit is Stroke with an explicit miter limit.
func StrokeLimit(points []Vec2, width, miterLimit float64) ([]Vec2, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}
	if 2*len(points) > 1<<16 {
		return nil, ErrTooManyPoints
	}
	if width <= 0 {
		return nil, ErrNonPositiveWidth
	}

	r := width / 2
	n := len(points)
	out := make([]Vec2, 0, 2*n)

	first := points[1].Sub(points[0]).Normalize().RPerp().Mul(r)
	out = append(out, points[0].Add(first), points[0].Sub(first))

	for i := 1; i < n-1; i++ {
		right, left := CornerVerticesLimit(points[i-1], points[i], points[i+1], width, miterLimit)
		out = append(out, right, left)
	}

	last := points[n-1].Sub(points[n-2]).Normalize().RPerp().Mul(r)
	out = append(out, points[n-1].Add(last), points[n-1].Sub(last))
	return out, nil
}

// StrokeIndices returns triangle indices covering a stroke of n points as
// produced by Stroke.
func StrokeIndices(n int) []uint16 {
	if n < 2 {
		return nil
	}
	out := make([]uint16, 0, 6*(n-1))
	for i := 0; i < n-1; i++ {
		r0 := uint16(2 * i)
		l0 := r0 + 1
		r1 := r0 + 2
		l1 := r0 + 3
		out = append(out, r0, l0, r1, l0, l1, r1)
	}
	return out
}
