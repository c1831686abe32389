package chart

import (
	"image"
	"image/color"
	"time"

	"gioui.org/f32"
)

// Pen describes how a line is stroked. Width is in pixels.
type Pen struct {
	Color color.NRGBA
	Width float32
}

// Surface is the drawing target a View renders onto. Implementations must
// not retain the points slice passed to StrokePath beyond the call.
type Surface interface {
	// Clear erases everything previously drawn.
	Clear()
	FillRect(r Rect, c color.NRGBA)
	StrokeRect(r Rect, p Pen)
	StrokeLine(a, b f32.Point, p Pen)
	// StrokePath strokes straight segments joining consecutive points.
	StrokePath(points []f32.Point, p Pen)
}

// Style holds the colors and pens used by Draw.
type Style struct {
	PlotFill color.NRGBA
	Border   Pen
	Grid     Pen
	Trace    Pen
}

// DefaultStyle draws a white plot with a black border, grey grid lines,
// and a blue trace.
var DefaultStyle = Style{
	PlotFill: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Border:   Pen{Color: color.NRGBA{A: 0xff}, Width: 1},
	Grid:     Pen{Color: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, Width: 1},
	Trace:    Pen{Color: color.NRGBA{B: 0xff, A: 0xff}, Width: 1},
}

// DefaultResizeDebounce is how long a View waits after the last resize
// before rebuilding its layout and drawing data again.
const DefaultResizeDebounce = 100 * time.Millisecond

// Host is the windowing environment a View is embedded in.
type Host interface {
	// Schedule arranges for OnDebounceTimerFired to be invoked after d,
	// replacing any invocation still pending.
	Schedule(d time.Duration)
	// Invalidate requests that the View be redrawn.
	Invalidate()
}

// NopHost is a Host that never fires timers or redraws.
type NopHost struct{}

func (NopHost) Schedule(time.Duration) {}
func (NopHost) Invalidate()            {}

// State is the resize handling state of a View.
type State uint8

const (
	Idle State = iota
	Resizing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// View is a line chart of a single series. All of its methods must be
// invoked from the goroutine running the host's event loop.
type View struct {
	// Style may be changed at any time and applies to the next Draw.
	Style Style
	// Debounce is the delay requested from the Host after each resize.
	Debounce time.Duration

	host    Host
	margins Margins
	data    PlotData
	size    image.Point
	state   State
	layout  Layout
	// path is a scratch slice holding the transformed trace.
	path []f32.Point
}

// NewView returns a View with DefaultMargins and DefaultStyle. A nil host
// is replaced with NopHost.
func NewView(host Host) *View {
	if host == nil {
		host = NopHost{}
	}
	v := &View{
		Style:    DefaultStyle,
		Debounce: DefaultResizeDebounce,
		host:     host,
		margins:  DefaultMargins,
	}
	v.relayout()
	return v
}

// SetMargins replaces the margins if every field is within
// [MinMargin, MaxMargin]. Otherwise it returns a *ValidationError and the
// current margins are kept.
func (v *View) SetMargins(m Margins) error {
	if err := m.Validate(); err != nil {
		return err
	}
	v.margins = m
	v.relayout()
	return nil
}

// Margins returns the current margins.
func (v *View) Margins() Margins {
	return v.margins
}

// SetPlotData replaces the plotted series. On failure it returns a
// *DataError and the current series is kept.
func (v *View) SetPlotData(xs, ys []float64) error {
	if err := v.data.Set(xs, ys); err != nil {
		return err
	}
	v.relayout()
	return nil
}

// Clear removes the plotted series.
func (v *View) Clear() {
	v.data.Clear()
	v.relayout()
}

// Data returns the plotted series.
func (v *View) Data() *PlotData {
	return &v.data
}

// Size returns the viewport size most recently passed to OnResize.
func (v *View) Size() image.Point {
	return v.size
}

// State returns the current resize handling state.
func (v *View) State() State {
	return v.state
}

// Layout returns the cached layout used when not resizing.
func (v *View) Layout() Layout {
	return v.layout
}

// OnResize records the new viewport size and suppresses data drawing until
// the debounce timer fires. Each call restarts the timer.
func (v *View) OnResize(size image.Point) {
	v.size = size
	v.state = Resizing
	v.host.Schedule(v.Debounce)
}

// OnDebounceTimerFired rebuilds the layout for the current size and
// requests a redraw.
func (v *View) OnDebounceTimerFired() {
	v.state = Idle
	v.relayout()
	v.host.Invalidate()
}

// OnRedrawRequested draws the chart onto s.
func (v *View) OnRedrawRequested(s Surface) {
	v.Draw(s)
}

func (v *View) relayout() {
	v.layout = ComputeLayout(v.size, v.margins, &v.data)
}

// Draw renders the framed plot rectangle and, unless the view is resizing
// or has no data, the grid and the trace.
func (v *View) Draw(s Surface) {
	s.Clear()
	rect := v.layout.Rect
	if v.state == Resizing {
		// The cached layout is stale; only the frame follows the window.
		rect = ComputePlotRect(v.size, v.margins)
	}
	s.FillRect(rect, v.Style.PlotFill)
	s.StrokeRect(rect, v.Style.Border)
	if v.state == Resizing || v.data.Empty() {
		return
	}

	l := &v.layout
	if l.Segments > 1 {
		for _, tick := range l.Ticks {
			y := l.Transform.Apply(Point{X: l.XRange.Min, Y: tick}).Y
			s.StrokeLine(f32.Pt(rect.Min.X, y), f32.Pt(rect.Max.X, y), v.Style.Grid)
		}
	}

	v.path = v.path[:0]
	for _, p := range v.data.points {
		v.path = append(v.path, l.Transform.Apply(p))
	}
	s.StrokePath(v.path, v.Style.Trace)
}
