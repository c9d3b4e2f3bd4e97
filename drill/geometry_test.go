package drill

import (
	"math"
	"testing"
)

func TestSegmentCircleIntersection(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
		c      Point
		r      float64
		hit    bool
		want   Point
	}{
		{
			name: "clear miss",
			p0:   Point{0, 0}, p1: Point{200, 0},
			c: Point{100, -50}, r: 10,
			hit: false,
		},
		{
			name: "through the circle reports entry, not exit",
			p0:   Point{0, 0}, p1: Point{200, 0},
			c: Point{100, 0}, r: 50,
			hit: true, want: Point{50, 0},
		},
		{
			name: "tangent, zero discriminant",
			p0:   Point{0, 0}, p1: Point{200, 0},
			c: Point{100, -10}, r: 10,
			hit: true, want: Point{100, 0},
		},
		{
			name: "segment ends inside circle",
			p0:   Point{0, 0}, p1: Point{100, 0},
			c: Point{100, 0}, r: 20,
			hit: true, want: Point{80, 0},
		},
		{
			name: "segment starts inside, exit root accepted",
			p0:   Point{100, 0}, p1: Point{200, 0},
			c: Point{100, 0}, r: 20,
			hit: true, want: Point{120, 0},
		},
		{
			name: "circle beyond segment end",
			p0:   Point{0, 0}, p1: Point{50, 0},
			c: Point{100, 0}, r: 20,
			hit: false,
		},
		{
			name: "circle behind segment start",
			p0:   Point{50, 0}, p1: Point{200, 0},
			c: Point{0, 0}, r: 20,
			hit: false,
		},
		{
			name: "zero-length segment outside",
			p0:   Point{0, 0}, p1: Point{0, 0},
			c: Point{100, 0}, r: 20,
			hit: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, hit := SegmentCircleIntersection(tc.p0, tc.p1, tc.c, tc.r)
			if hit != tc.hit {
				t.Fatalf("hit = %v, want %v", hit, tc.hit)
			}
			if !hit {
				return
			}
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("point = (%.6f, %.6f), want (%.6f, %.6f)", got.X, got.Y, tc.want.X, tc.want.Y)
			}
		})
	}
}

func TestMissDistance(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		round Round
		want  float64
	}{
		{
			name:  "vertical shot misses by horizontal offset",
			angle: -90,
			round: Round{OriginX: 100, TargetX: 300, TargetY: -500},
			want:  200,
		},
		{
			name:  "oblique shot misses by vertical offset at target X",
			angle: -45,
			round: Round{OriginX: 100, TargetX: 300, TargetY: -500},
			// ray reaches -200 m at X=300, target sits at -500 m
			want: 300,
		},
		{
			name:  "oblique shot dead on",
			angle: -45,
			round: Round{OriginX: 100, TargetX: 300, TargetY: -200},
			want:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(1)
			g.Round = tc.round
			g.Angle = tc.angle
			got := g.MissDistance()
			if math.Abs(got-tc.want) > 1e-6 {
				t.Errorf("MissDistance() = %.6f, want %.6f", got, tc.want)
			}
		})
	}
}

func TestOneDegreeMiss(t *testing.T) {
	g := NewGame(1)
	g.Round.TargetY = -500
	want := math.Tan(math.Pi/180) * 500
	if got := g.OneDegreeMiss(); math.Abs(got-want) > 1e-9 {
		t.Errorf("OneDegreeMiss() = %.6f, want %.6f", got, want)
	}
}
