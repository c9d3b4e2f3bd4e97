package drill

import "math"

// Point is a position in world coordinates (meters, Y negative below the
// surface).
type Point struct {
	X, Y float64
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// SegmentCircleIntersection tests the segment p0→p1 against the circle at c
// with radius r, solving the quadratic parametrization for t in [0,1]. The
// smaller root is tried first so that when the segment passes through the
// circle the reported point is the entry nearest p0, not the exit. A zero
// discriminant yields the single tangent point.
func SegmentCircleIntersection(p0, p1, c Point, r float64) (Point, bool) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	fx, fy := p0.X-c.X, p0.Y-c.Y

	a := dx*dx + dy*dy
	b := 2 * (fx*dx + fy*dy)
	cc := fx*fx + fy*fy - r*r

	disc := b*b - 4*a*cc
	if disc < 0 {
		return Point{}, false
	}
	sq := math.Sqrt(disc)

	// For a degenerate (zero-length) segment both roots are NaN and the
	// range check rejects them.
	for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if t >= 0 && t <= 1 {
			return Point{p0.X + t*dx, p0.Y + t*dy}, true
		}
	}
	return Point{}, false
}
