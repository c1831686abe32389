package chart

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// MaxSegments is the largest number of grid segments NiceLabels will
	// produce for a range.
	MaxSegments = 6
	// FallbackSegments is returned when no step fits within MaxSegments.
	FallbackSegments = 10
)

// niceMultipliers are tried smallest first so that the finest grid that
// still fits is preferred.
var niceMultipliers = [...]float64{0.2, 0.25, 0.5, 1.0, 2.0, 2.5, 5.0}

// NiceLabels rounds the range [low, high] outward to boundaries that are
// multiples of a human friendly step, and returns the number of steps
// between the rounded bounds. If no step fits within MaxSegments, or the
// range is empty or not finite, it returns FallbackSegments along with the
// bounds unchanged.
func NiceLabels(low, high float64) (segments int, niceLow, niceHigh float64) {
	span := high - low
	if !(span > 0) || !finite(low) || !finite(high) || !finite(span) {
		return FallbackSegments, low, high
	}
	magnitude := floor(math.Log10(span))
	for _, r := range niceMultipliers {
		step := r * math.Pow(10, magnitude)
		niceLow = floor(low/step) * step
		niceHigh = ceil(high/step) * step
		if !finite(niceLow) || !finite(niceHigh) {
			continue
		}
		segments = int(math.Round((niceHigh - niceLow) / step))
		if segments >= 1 && segments <= MaxSegments {
			return segments, niceLow, niceHigh
		}
	}
	return FallbackSegments, low, high
}

// Ticks returns the segments+1 evenly spaced boundaries chosen by
// NiceLabels for [low, high], lowest first.
func Ticks(low, high float64) []float64 {
	segments, niceLow, niceHigh := NiceLabels(low, high)
	return ticksBetween(segments, niceLow, niceHigh)
}

func ticksBetween(segments int, low, high float64) []float64 {
	if segments < 1 {
		return []float64{low}
	}
	step := (high - low) / float64(segments)
	ticks := make([]float64, segments+1)
	for i := range ticks {
		ticks[i] = low + float64(i)*step
	}
	// Pin the last tick so accumulated error never leaves it short.
	ticks[segments] = high
	return ticks
}

func ceil[T constraints.Float](a T) T {
	return T(math.Ceil(float64(a)))
}

func floor[T constraints.Float](a T) T {
	return T(math.Floor(float64(a)))
}

func finite[T constraints.Float](a T) bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
