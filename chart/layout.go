package chart

import (
	"image"

	"gioui.org/f32"
)

// Rect is a rectangle in pixel space with y growing downward.
type Rect struct {
	Min, Max f32.Point
}

// Dx returns the width of r.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether r has no area. Inverted rectangles are empty.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// ComputePlotRect insets the viewport rectangle (0,0)-size by the margins.
// Left and right insets scale with the width, top and bottom with the
// height. A degenerate viewport yields a degenerate rectangle.
func ComputePlotRect(size image.Point, m Margins) Rect {
	w, h := float32(size.X), float32(size.Y)
	return Rect{
		Min: f32.Pt(m.Left*w, m.Top*h),
		Max: f32.Pt(w-m.Right*w, h-m.Bottom*h),
	}
}

// Transform maps data space onto pixel space.
//
// The origin is subtracted in float64 before the remaining affine map is
// applied in float32, so that large data values with small spans (such as
// timestamps) keep their precision.
type Transform struct {
	origin Point
	aff    f32.Affine2D
}

// ComputeTransform builds the map sending (x.Min, y.Min) to the bottom-left
// corner of r and (x.Max, y.Max) to its top-right corner. It is the
// composition translate(-x.Min, -y.Min), scale(1, -1),
// scale(r.Dx()/x.Span(), r.Dy()/y.Span()), translate(r.Min.X, r.Max.Y).
//
// Ranges with no span are widened with Range.Widen first.
func ComputeTransform(r Rect, x, y Range) Transform {
	x, y = x.Widen(), y.Widen()
	scale := f32.Pt(
		float32(float64(r.Dx())/x.Span()),
		float32(float64(r.Dy())/y.Span()),
	)
	aff := f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(1, -1)).
		Scale(f32.Point{}, scale).
		Offset(f32.Pt(r.Min.X, r.Max.Y))
	return Transform{
		origin: Point{X: x.Min, Y: y.Min},
		aff:    aff,
	}
}

// Apply maps p into pixel space.
func (t Transform) Apply(p Point) f32.Point {
	return t.aff.Transform(f32.Pt(float32(p.X-t.origin.X), float32(p.Y-t.origin.Y)))
}

// Layout is everything derived from the viewport size, the margins, and
// the data extents. A View caches one and rebuilds it only when one of
// those inputs changes.
type Layout struct {
	Rect Rect
	// XRange is the data extent mapped across the plot width.
	XRange Range
	// YRange is the extent mapped across the plot height. When Segments is
	// greater than one it is the rounded extent chosen by NiceLabels rather
	// than the raw data extent.
	YRange   Range
	Segments int
	// Ticks holds the y value of each horizontal grid line.
	Ticks     []float64
	Transform Transform
}

// ComputeLayout derives the plot rectangle and the transform shared by the
// grid and the trace.
func ComputeLayout(size image.Point, m Margins, data *PlotData) Layout {
	l := Layout{Rect: ComputePlotRect(size, m)}
	if data == nil || data.Empty() {
		return l
	}
	xRange, yRange := data.Ranges()
	l.XRange = xRange.Widen()
	l.YRange = yRange.Widen()
	segments, niceLow, niceHigh := NiceLabels(l.YRange.Min, l.YRange.Max)
	if segments > 1 {
		l.Segments = segments
		l.YRange = Range{Min: niceLow, Max: niceHigh}
		l.Ticks = ticksBetween(segments, niceLow, niceHigh)
	}
	l.Transform = ComputeTransform(l.Rect, l.XRange, l.YRange)
	return l
}
