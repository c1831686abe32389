package main

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/x/stroke"

	"git.sr.ht/~whereswaldon/chartview/chart"
)

// gioSurface draws chart primitives into a gio operation list. Pen widths
// are scaled from Dp to pixels.
type gioSurface struct {
	ops        *op.Ops
	size       image.Point
	pxPerDp    float32
	background color.NRGBA
	// segments is scratch space reused between strokes.
	segments []stroke.Segment
}

func (s *gioSurface) reset(gtx C, size image.Point, background color.NRGBA) {
	s.ops = gtx.Ops
	s.size = size
	s.pxPerDp = gtx.Metric.PxPerDp
	s.background = background
}

func (s *gioSurface) Clear() {
	paint.FillShape(s.ops, s.background, clip.Rect{Max: s.size}.Op())
}

func (s *gioSurface) FillRect(r chart.Rect, c color.NRGBA) {
	var p clip.Path
	p.Begin(s.ops)
	p.MoveTo(r.Min)
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.Close()
	paint.FillShape(s.ops, c, clip.Outline{Path: p.End()}.Op())
}

func (s *gioSurface) StrokeRect(r chart.Rect, pen chart.Pen) {
	s.segments = append(s.segments[:0],
		stroke.MoveTo(r.Min),
		stroke.LineTo(f32.Pt(r.Max.X, r.Min.Y)),
		stroke.LineTo(r.Max),
		stroke.LineTo(f32.Pt(r.Min.X, r.Max.Y)),
		stroke.LineTo(r.Min),
	)
	s.stroke(pen)
}

func (s *gioSurface) StrokeLine(a, b f32.Point, pen chart.Pen) {
	s.segments = append(s.segments[:0], stroke.MoveTo(a), stroke.LineTo(b))
	s.stroke(pen)
}

func (s *gioSurface) StrokePath(points []f32.Point, pen chart.Pen) {
	if len(points) < 2 {
		return
	}
	s.segments = append(s.segments[:0], stroke.MoveTo(points[0]))
	for _, pt := range points[1:] {
		s.segments = append(s.segments, stroke.LineTo(pt))
	}
	s.stroke(pen)
}

func (s *gioSurface) stroke(pen chart.Pen) {
	shape := stroke.Stroke{
		Path:  stroke.Path{Segments: s.segments},
		Width: pen.Width * s.pxPerDp,
	}.Op(s.ops)
	paint.FillShape(s.ops, pen.Color, shape)
}
