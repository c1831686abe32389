package main

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget/material"

	"git.sr.ht/~whereswaldon/chartview/chart"
)

// Chart embeds a chart.View in a gio layout, feeding it resize and timer
// events from the frame loop and drawing it each frame.
type Chart struct {
	view    *chart.View
	timer   frameTimer
	surface gioSurface
	// Background is painted behind the plot area.
	Background color.NRGBA
}

// NewChart returns a chart that calls invalidate when it needs a new frame
// outside of the normal frame cadence.
func NewChart(invalidate func()) *Chart {
	c := &Chart{
		Background: color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	}
	c.timer.invalidate = invalidate
	c.view = chart.NewView(&c.timer)
	return c
}

// View returns the chart's underlying view.
func (c *Chart) View() *chart.View {
	return c.view
}

// SetPlotData replaces the plotted series, see chart.View.SetPlotData.
func (c *Chart) SetPlotData(xs, ys []float64) error {
	return c.view.SetPlotData(xs, ys)
}

// Clear removes the plotted series.
func (c *Chart) Clear() {
	c.view.Clear()
}

// SetMargins replaces the margins if they are valid.
func (c *Chart) SetMargins(m chart.Margins) error {
	return c.view.SetMargins(m)
}

// Update processes the size of the chart and its debounce timer. It is
// called by Layout.
func (c *Chart) Update(gtx C, size image.Point) {
	if size != c.view.Size() {
		c.view.OnResize(size)
	}
	if c.timer.Update(gtx) {
		c.view.OnDebounceTimerFired()
	}
}

// Layout draws the chart filling the maximum constraints, labelling the
// grid lines with their values when th is non-nil.
func (c *Chart) Layout(gtx C, th *material.Theme) D {
	size := gtx.Constraints.Max
	c.Update(gtx, size)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	c.surface.reset(gtx, size, c.Background)
	c.view.OnRedrawRequested(&c.surface)
	if th != nil && c.view.State() == chart.Idle {
		c.layoutTickLabels(gtx, th)
	}
	return D{Size: size}
}

// layoutTickLabels writes each grid value to the left of its grid line.
func (c *Chart) layoutTickLabels(gtx C, th *material.Theme) {
	l := c.view.Layout()
	if len(l.Ticks) == 0 {
		return
	}
	gap := gtx.Dp(4)
	gtx.Constraints.Min = image.Point{}
	label := material.Caption(th, "")
	label.MaxLines = 1
	precision := tickPrecision(l.Ticks)
	for _, tick := range l.Ticks {
		label.Text = strconv.FormatFloat(tick, 'f', precision, 64)
		dims, call := rec(gtx, label.Layout)
		pos := l.Transform.Apply(chart.Point{X: l.XRange.Min, Y: tick})
		stack := op.Offset(image.Point{
			X: int(l.Rect.Min.X) - gap - dims.Size.X,
			Y: int(pos.Y) - dims.Size.Y/2,
		}).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
	}
}

// tickPrecision returns the number of decimal places needed to tell
// adjacent ticks apart.
func tickPrecision(ticks []float64) int {
	if len(ticks) < 2 {
		return 0
	}
	step := math.Abs(ticks[1] - ticks[0])
	precision := 0
	for math.Abs(step-math.Round(step)) > 1e-6 && precision < 6 {
		step *= 10
		precision++
	}
	return precision
}

func rec(gtx C, w layout.Widget) (D, op.CallOp) {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return dims, call
}
