package chart

import (
	"errors"
	"fmt"
)

// Point is a single sample in data space.
type Point struct {
	X, Y float64
}

// Range is a closed interval of data values.
type Range struct {
	Min, Max float64
}

// Span returns Max-Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Widen returns r unchanged if it has a positive span. A range collapsed
// onto a single value is widened to one unit centered on that value so
// that it can be mapped onto pixels.
func (r Range) Widen() Range {
	if r.Max > r.Min {
		return r
	}
	return Range{Min: r.Min - .5, Max: r.Max + .5}
}

// DataErrorKind classifies why plot data was rejected.
type DataErrorKind uint8

const (
	DimensionMismatch DataErrorKind = iota + 1
	EmptyInput
)

func (k DataErrorKind) String() string {
	switch k {
	case DimensionMismatch:
		return "dimension mismatch"
	case EmptyInput:
		return "empty input"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against a *DataError of the same kind.
var (
	ErrDimensionMismatch = errors.New("x/y size mismatch")
	ErrEmptyInput        = errors.New("x/y size is 0")
)

// DataError reports plot data that was rejected. XLen and YLen carry the
// lengths that were supplied.
type DataError struct {
	Kind       DataErrorKind
	XLen, YLen int
}

func (e *DataError) Error() string {
	switch e.Kind {
	case DimensionMismatch:
		return fmt.Sprintf("plot error: x/y size mismatch x=%d, y=%d", e.XLen, e.YLen)
	case EmptyInput:
		return "plot error: x/y size is 0. Use Clear instead"
	default:
		return "plot error: " + e.Kind.String()
	}
}

func (e *DataError) Unwrap() error {
	switch e.Kind {
	case DimensionMismatch:
		return ErrDimensionMismatch
	case EmptyInput:
		return ErrEmptyInput
	default:
		return nil
	}
}

// PlotData holds one series of samples along with the extent of its x and
// y values. The extents are computed once per Set rather than per draw.
type PlotData struct {
	points         []Point
	xRange, yRange Range
}

// Set replaces the stored series with the pairs (xs[i], ys[i]). It fails
// without modifying the stored data when the slices differ in length or
// are empty.
func (p *PlotData) Set(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return &DataError{Kind: DimensionMismatch, XLen: len(xs), YLen: len(ys)}
	}
	if len(xs) == 0 {
		return &DataError{Kind: EmptyInput}
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	xRange := scanRange(xs)
	yRange := scanRange(ys)

	p.points = points
	p.xRange = xRange
	p.yRange = yRange
	return nil
}

// Clear drops every point and resets both extents to the zero Range.
func (p *PlotData) Clear() {
	p.points = nil
	p.xRange = Range{}
	p.yRange = Range{}
}

// Len returns the number of stored points.
func (p *PlotData) Len() int {
	return len(p.points)
}

// Empty reports whether there are no points.
func (p *PlotData) Empty() bool {
	return len(p.points) == 0
}

// Points returns the stored points. The slice must not be modified.
func (p *PlotData) Points() []Point {
	return p.points
}

// Ranges returns the cached x and y extents.
func (p *PlotData) Ranges() (x, y Range) {
	return p.xRange, p.yRange
}

func scanRange(values []float64) Range {
	r := Range{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
	}
	return r
}
