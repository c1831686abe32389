package chart

import (
	"math"
	"math/rand"
	"testing"
)

func TestNiceLabels(t *testing.T) {
	type testcase struct {
		low, high float64
		segments  int
		niceLow   float64
		niceHigh  float64
	}
	for _, tc := range []testcase{
		{low: 0, high: 9, segments: 5, niceLow: 0, niceHigh: 10},
		{low: 0, high: 10, segments: 5, niceLow: 0, niceHigh: 10},
		{low: 0, high: 100, segments: 5, niceLow: 0, niceHigh: 100},
		{low: -3, high: 7, segments: 6, niceLow: -4, niceHigh: 8},
		{low: 0, high: 1, segments: 5, niceLow: 0, niceHigh: 1},
		{low: 0, high: 0.5, segments: 5, niceLow: 0, niceHigh: 0.5},
		{low: 1.7e9, high: 1.7e9 + 30, segments: 6, niceLow: 1.7e9, niceHigh: 1.7e9 + 30},
	} {
		segments, niceLow, niceHigh := NiceLabels(tc.low, tc.high)
		if segments != tc.segments {
			t.Errorf("[%v, %v] expected %d segments, got %d", tc.low, tc.high, tc.segments, segments)
		}
		if !closeTo(niceLow, tc.niceLow, 1e-9) || !closeTo(niceHigh, tc.niceHigh, 1e-9) {
			t.Errorf("[%v, %v] expected bounds [%v, %v], got [%v, %v]", tc.low, tc.high, tc.niceLow, tc.niceHigh, niceLow, niceHigh)
		}
	}
}

func TestNiceLabelsFallback(t *testing.T) {
	for _, r := range [][2]float64{
		{1, 1},
		{5, 1},
		{math.NaN(), 1},
		{0, math.Inf(1)},
		{-math.MaxFloat64, math.MaxFloat64},
		{1.7e308, math.MaxFloat64},
		{-math.MaxFloat64, -1.7e308},
	} {
		segments, niceLow, niceHigh := NiceLabels(r[0], r[1])
		if segments != FallbackSegments {
			t.Errorf("%v expected fallback of %d segments, got %d", r, FallbackSegments, segments)
		}
		if !sameFloat(niceLow, r[0]) || !sameFloat(niceHigh, r[1]) {
			t.Errorf("%v expected bounds to be unchanged, got [%v, %v]", r, niceLow, niceHigh)
		}
	}
}

func TestNiceLabelsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		scale := math.Pow(10, float64(rng.Intn(16)-8))
		low := (rng.Float64()*2 - 1) * scale * 10
		high := low + rng.Float64()*scale*10 + scale*1e-3

		segments, niceLow, niceHigh := NiceLabels(low, high)
		again, againLow, againHigh := NiceLabels(low, high)
		if segments != again || niceLow != againLow || niceHigh != againHigh {
			t.Fatalf("[%v, %v] expected identical results, got (%d %v %v) and (%d %v %v)",
				low, high, segments, niceLow, niceHigh, again, againLow, againHigh)
		}
		if segments > MaxSegments || segments < 1 {
			t.Fatalf("[%v, %v] expected between 1 and %d segments, got %d", low, high, MaxSegments, segments)
		}
		tolerance := (high - low) * 1e-9
		if niceLow > low+tolerance || niceHigh < high-tolerance {
			t.Fatalf("[%v, %v] expected nice bounds to enclose the range, got [%v, %v]", low, high, niceLow, niceHigh)
		}
		step := (niceHigh - niceLow) / float64(segments)
		if rem := math.Abs(niceLow/step - math.Round(niceLow/step)); rem > 1e-6 {
			t.Fatalf("[%v, %v] expected low bound to be a multiple of step %v, got %v", low, high, step, niceLow)
		}
	}
}

func TestTicks(t *testing.T) {
	ticks := Ticks(0, 9)
	expected := []float64{0, 2, 4, 6, 8, 10}
	if len(ticks) != len(expected) {
		t.Fatalf("expected %d ticks, got %d: %v", len(expected), len(ticks), ticks)
	}
	for i := range ticks {
		if !closeTo(ticks[i], expected[i], 1e-9) {
			t.Errorf("expected tick %d to be %v, got %v", i, expected[i], ticks[i])
		}
	}
}

func closeTo(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
