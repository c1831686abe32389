package chart

import (
	"image"
	"math"
	"testing"

	"gioui.org/f32"
)

func TestComputePlotRect(t *testing.T) {
	type testcase struct {
		name    string
		size    image.Point
		margins Margins
		rect    Rect
	}
	for _, tc := range []testcase{
		{
			name:    "default margins",
			size:    image.Pt(200, 100),
			margins: DefaultMargins,
			rect:    Rect{Min: f32.Pt(20, 10), Max: f32.Pt(180, 90)},
		},
		{
			name:    "asymmetric",
			size:    image.Pt(400, 200),
			margins: Margins{Left: .25, Top: 0, Right: .5, Bottom: .1},
			rect:    Rect{Min: f32.Pt(100, 0), Max: f32.Pt(200, 180)},
		},
		{
			name:    "no margins",
			size:    image.Pt(64, 32),
			margins: Margins{},
			rect:    Rect{Max: f32.Pt(64, 32)},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePlotRect(tc.size, tc.margins)
			if !pointsClose(got.Min, tc.rect.Min) || !pointsClose(got.Max, tc.rect.Max) {
				t.Errorf("expected rect %v, got %v", tc.rect, got)
			}
		})
	}
}

func TestComputePlotRectDegenerate(t *testing.T) {
	if r := ComputePlotRect(image.Point{}, DefaultMargins); !r.Empty() {
		t.Errorf("expected an empty rect for a zero viewport, got %v", r)
	}
	if r := ComputePlotRect(image.Pt(10, 10), Margins{Left: .5, Right: .5}); !r.Empty() {
		t.Errorf("expected an empty rect when margins consume the width, got %v", r)
	}
}

func TestComputeTransformCorners(t *testing.T) {
	type testcase struct {
		name string
		rect Rect
		x, y Range
	}
	for _, tc := range []testcase{
		{
			name: "unit",
			rect: Rect{Min: f32.Pt(20, 10), Max: f32.Pt(180, 90)},
			x:    Range{Min: 0, Max: 1},
			y:    Range{Min: 0, Max: 1},
		},
		{
			name: "negative data",
			rect: Rect{Min: f32.Pt(5, 5), Max: f32.Pt(605, 405)},
			x:    Range{Min: -50, Max: -10},
			y:    Range{Min: -1e-3, Max: 2e-3},
		},
		{
			name: "timestamps",
			rect: Rect{Min: f32.Pt(0, 0), Max: f32.Pt(1000, 500)},
			x:    Range{Min: 1.7e9, Max: 1.7e9 + 60},
			y:    Range{Min: 1e6, Max: 1e6 + 1},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tr := ComputeTransform(tc.rect, tc.x, tc.y)
			bottomLeft := tr.Apply(Point{X: tc.x.Min, Y: tc.y.Min})
			topRight := tr.Apply(Point{X: tc.x.Max, Y: tc.y.Max})
			if expected := f32.Pt(tc.rect.Min.X, tc.rect.Max.Y); !pointsClose(bottomLeft, expected) {
				t.Errorf("expected (min, min) to map to %v, got %v", expected, bottomLeft)
			}
			if expected := f32.Pt(tc.rect.Max.X, tc.rect.Min.Y); !pointsClose(topRight, expected) {
				t.Errorf("expected (max, max) to map to %v, got %v", expected, topRight)
			}
			mid := tr.Apply(Point{X: (tc.x.Min + tc.x.Max) / 2, Y: (tc.y.Min + tc.y.Max) / 2})
			center := f32.Pt((tc.rect.Min.X+tc.rect.Max.X)/2, (tc.rect.Min.Y+tc.rect.Max.Y)/2)
			if !pointsClose(mid, center) {
				t.Errorf("expected the midpoint to map to %v, got %v", center, mid)
			}
		})
	}
}

func TestComputeTransformDegenerate(t *testing.T) {
	rect := Rect{Min: f32.Pt(0, 0), Max: f32.Pt(100, 100)}
	tr := ComputeTransform(rect, Range{Min: 3, Max: 3}, Range{Min: -2, Max: -2})
	p := tr.Apply(Point{X: 3, Y: -2})
	if !finite(p.X) || !finite(p.Y) {
		t.Fatalf("expected a finite point for a collapsed range, got %v", p)
	}
	if !pointsClose(p, f32.Pt(50, 50)) {
		t.Errorf("expected a constant series to sit in the middle, got %v", p)
	}
}

func TestComputeLayoutSharesNiceBounds(t *testing.T) {
	var data PlotData
	if err := data.Set([]float64{0, 1, 2}, []float64{0, 4.5, 9}); err != nil {
		t.Fatalf("expected data to be accepted, got: %v", err)
	}
	l := ComputeLayout(image.Pt(200, 100), DefaultMargins, &data)
	if l.Segments != 5 {
		t.Fatalf("expected 5 segments, got %d", l.Segments)
	}
	if l.YRange != (Range{Min: 0, Max: 10}) {
		t.Errorf("expected nice y range [0, 10], got %v", l.YRange)
	}
	if len(l.Ticks) != l.Segments+1 {
		t.Fatalf("expected %d ticks, got %d", l.Segments+1, len(l.Ticks))
	}
	bottom := l.Transform.Apply(Point{X: 0, Y: l.Ticks[0]})
	top := l.Transform.Apply(Point{X: 0, Y: l.Ticks[len(l.Ticks)-1]})
	if !closeTo(float64(bottom.Y), float64(l.Rect.Max.Y), 1e-3) {
		t.Errorf("expected the lowest tick on the bottom edge %v, got %v", l.Rect.Max.Y, bottom.Y)
	}
	if !closeTo(float64(top.Y), float64(l.Rect.Min.Y), 1e-3) {
		t.Errorf("expected the highest tick on the top edge %v, got %v", l.Rect.Min.Y, top.Y)
	}
}

func TestComputeLayoutEmpty(t *testing.T) {
	l := ComputeLayout(image.Pt(200, 100), DefaultMargins, &PlotData{})
	if l.Segments != 0 || len(l.Ticks) != 0 {
		t.Errorf("expected no grid for empty data, got %d segments and %d ticks", l.Segments, len(l.Ticks))
	}
}

func pointsClose(a, b f32.Point) bool {
	const tolerance = 1e-3
	return math.Abs(float64(a.X-b.X)) <= tolerance && math.Abs(float64(a.Y-b.Y)) <= tolerance
}
