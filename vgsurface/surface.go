// Package vgsurface renders charts onto gonum vector graphics canvases,
// which allows a chart.View to be drawn without a window.
package vgsurface

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"

	"git.sr.ht/~whereswaldon/chartview/chart"
)

// Surface is a chart.Surface drawing onto a vg.Canvas. Chart coordinates
// have their origin at the top-left with y growing downward, while vg
// canvases grow upward from the bottom-left, so every point is flipped
// against the canvas height.
type Surface struct {
	canvas        vg.Canvas
	width, height vg.Length
	// Background is the color painted by Clear.
	Background color.Color
}

var _ chart.Surface = (*Surface)(nil)

// New wraps c, which must be width by height in size.
func New(c vg.Canvas, width, height vg.Length) *Surface {
	return &Surface{
		canvas:     c,
		width:      width,
		height:     height,
		Background: color.White,
	}
}

// NewImage returns a Surface backed by an in-memory raster of the given
// pixel size, along with the raster canvas so that its image can be read.
func NewImage(size image.Point) (*Surface, *vgimg.Canvas) {
	w, h := vg.Length(size.X), vg.Length(size.Y)
	// At 72 DPI one vg point is one pixel.
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))
	return New(c, w, h), c
}

func (s *Surface) pt(p f32.Point) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: s.height - vg.Length(p.Y)}
}

func (s *Surface) rectPath(r chart.Rect) vg.Path {
	var p vg.Path
	p.Move(s.pt(r.Min))
	p.Line(s.pt(f32.Pt(r.Max.X, r.Min.Y)))
	p.Line(s.pt(r.Max))
	p.Line(s.pt(f32.Pt(r.Min.X, r.Max.Y)))
	p.Close()
	return p
}

func (s *Surface) setPen(pen chart.Pen) {
	s.canvas.SetColor(pen.Color)
	s.canvas.SetLineWidth(vg.Length(pen.Width))
	s.canvas.SetLineDash(nil, 0)
}

func (s *Surface) Clear() {
	s.canvas.SetColor(s.Background)
	s.canvas.Fill(s.rectPath(chart.Rect{
		Max: f32.Pt(float32(s.width), float32(s.height)),
	}))
}

func (s *Surface) FillRect(r chart.Rect, c color.NRGBA) {
	s.canvas.SetColor(c)
	s.canvas.Fill(s.rectPath(r))
}

func (s *Surface) StrokeRect(r chart.Rect, pen chart.Pen) {
	s.setPen(pen)
	s.canvas.Stroke(s.rectPath(r))
}

func (s *Surface) StrokeLine(a, b f32.Point, pen chart.Pen) {
	var p vg.Path
	p.Move(s.pt(a))
	p.Line(s.pt(b))
	s.setPen(pen)
	s.canvas.Stroke(p)
}

func (s *Surface) StrokePath(points []f32.Point, pen chart.Pen) {
	if len(points) < 2 {
		return
	}
	var p vg.Path
	p.Move(s.pt(points[0]))
	for _, pt := range points[1:] {
		p.Line(s.pt(pt))
	}
	s.setPen(pen)
	s.canvas.Stroke(p)
}
