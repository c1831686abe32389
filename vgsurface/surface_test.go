package vgsurface

import (
	"image"
	"image/color"
	"testing"

	"git.sr.ht/~whereswaldon/chartview/chart"
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func sizedView(t *testing.T, size image.Point) *chart.View {
	t.Helper()
	v := chart.NewView(nil)
	v.OnResize(size)
	v.OnDebounceTimerFired()
	return v
}

func TestSurfaceFrame(t *testing.T) {
	size := image.Pt(200, 100)
	s, c := NewImage(size)
	s.Background = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

	v := chart.NewView(nil)
	v.OnResize(size)
	if err := v.SetPlotData([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Fatalf("expected data to be accepted, got: %v", err)
	}
	v.Draw(s)

	img := c.Image()
	if b := img.Bounds(); b.Dx() != size.X || b.Dy() != size.Y {
		t.Fatalf("expected a %v raster, got %v", size, b.Size())
	}
	if got := nrgbaAt(img, 5, 5); got != s.Background {
		t.Errorf("expected background %v outside the plot, got %v", s.Background, got)
	}
	white := chart.DefaultStyle.PlotFill
	if got := nrgbaAt(img, 60, 30); got != white {
		t.Errorf("expected plot fill %v inside the plot, got %v", white, got)
	}
	if got := nrgbaAt(img, 100, 50); got != white {
		t.Errorf("expected no trace while resizing, got %v at the plot center", got)
	}
}

func TestSurfaceTrace(t *testing.T) {
	size := image.Pt(200, 100)
	s, c := NewImage(size)
	v := sizedView(t, size)
	xs := []float64{0, 10}
	ys := []float64{0, 10}
	if err := v.SetPlotData(xs, ys); err != nil {
		t.Fatalf("expected data to be accepted, got: %v", err)
	}
	v.Draw(s)

	// The diagonal trace passes through the plot center at (100, 50), where
	// no grid line lies since the ticks are 0, 2, 4, 6, 8 and 10.
	img := c.Image()
	found := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			px := nrgbaAt(img, 100+dx, 50+dy)
			if int(px.B)-int(px.R) > 20 {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected blue trace pixels near the plot center")
	}
	if got := nrgbaAt(img, 150, 66); got != chart.DefaultStyle.PlotFill {
		t.Errorf("expected untouched plot fill away from the trace, got %v", got)
	}
}
