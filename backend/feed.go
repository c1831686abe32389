package backend

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Waveform selects the function a Feed samples.
type Waveform uint8

const (
	Sine Waveform = iota
	Sawtooth
	Square
	RandomWalk
)

var waveformNames = [...]string{
	Sine:       "sine",
	Sawtooth:   "sawtooth",
	Square:     "square",
	RandomWalk: "walk",
}

func (w Waveform) String() string {
	if int(w) < len(waveformNames) {
		return waveformNames[w]
	}
	return "unknown"
}

// ParseWaveform returns the waveform with the given name, ignoring case.
func ParseWaveform(name string) (Waveform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range waveformNames {
		if n == name {
			return Waveform(i), nil
		}
	}
	return 0, fmt.Errorf("unknown waveform %q (want one of %s)", name, strings.Join(waveformNames[:], ", "))
}

// Period is the length in seconds of one cycle of the periodic waveforms.
const Period = 5.0

// Snapshot is a copy of a Feed's window taken after a new sample arrived.
// Seq increases with each snapshot a Feed takes.
type Snapshot struct {
	Seq    uint64
	Xs, Ys []float64
}

// Feed produces samples of a waveform against the seconds elapsed since
// it was created, retaining a bounded window of them.
type Feed struct {
	interval time.Duration
	waveform Waveform
	series   *Series
	start    time.Time
	paused   atomic.Bool
	seq      atomic.Uint64

	// rngLock guards rng.
	rngLock sync.Mutex
	rng     *rand.Rand
}

// NewFeed returns a feed sampling waveform every interval and retaining
// the newest window samples.
func NewFeed(interval time.Duration, window int, waveform Waveform) *Feed {
	return &Feed{
		interval: interval,
		waveform: waveform,
		series:   NewSeries(window),
		start:    time.Now(),
		rng:      rand.New(rand.NewSource(1)),
	}
}

// Waveform returns the sampled waveform.
func (f *Feed) Waveform() Waveform {
	return f.waveform
}

// SetPaused stops or resumes sampling.
func (f *Feed) SetPaused(paused bool) {
	f.paused.Store(paused)
}

// Paused reports whether sampling is stopped.
func (f *Feed) Paused() bool {
	return f.paused.Load()
}

// Reset drops the retained window. Sampling continues from the current
// time.
func (f *Feed) Reset() {
	f.series.Reset()
}

// Snapshot copies the retained window.
func (f *Feed) Snapshot() Snapshot {
	xs, ys := f.series.Snapshot()
	return Snapshot{
		Seq: f.seq.Add(1),
		Xs:  xs,
		Ys:  ys,
	}
}

func (f *Feed) value(x float64) float64 {
	phase := x / Period
	switch f.waveform {
	case Sawtooth:
		return 2 * (phase - math.Floor(phase+.5))
	case Square:
		if math.Sin(2*math.Pi*phase) >= 0 {
			return 1
		}
		return -1
	case RandomWalk:
		last, _ := f.series.Last()
		f.rngLock.Lock()
		defer f.rngLock.Unlock()
		return last.Y + f.rng.NormFloat64()*.1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// step samples the waveform at now.
func (f *Feed) step(now time.Time) (Sample, bool) {
	x := now.Sub(f.start).Seconds()
	sample := Sample{X: x, Y: f.value(x)}
	return sample, f.series.Insert(sample)
}

// Stream samples the waveform every interval until ctx is cancelled,
// emitting a snapshot after each accepted sample. Nothing is emitted while
// the feed is paused.
func (f *Feed) Stream(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				if f.Paused() {
					continue
				}
				if _, ok := f.step(t); !ok {
					continue
				}
				select {
				case out <- f.Snapshot():
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
