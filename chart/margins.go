package chart

import "fmt"

// The span every margin fraction must fall within.
const (
	MinMargin = 0.0
	MaxMargin = 0.5
)

// Margins are fractional insets applied to each side of the viewport before
// the plot rectangle is computed. Left and Right are fractions of the
// viewport width, Top and Bottom fractions of its height.
type Margins struct {
	Left, Top, Right, Bottom float32
}

// DefaultMargins is the inset a new View starts with.
var DefaultMargins = Margins{Left: .1, Top: .1, Right: .1, Bottom: .1}

// ValidationError reports a margin outside of [Min, Max].
type ValidationError struct {
	Field    string
	Value    float32
	Min, Max float32
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s margin %v outside of span [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// Validate checks the fields in the order left, top, right, bottom and
// returns a *ValidationError describing the first one out of span.
func (m Margins) Validate() error {
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"left", m.Left},
		{"top", m.Top},
		{"right", m.Right},
		{"bottom", m.Bottom},
	} {
		// Written so that NaN fails as well.
		if !(f.value >= MinMargin && f.value <= MaxMargin) {
			return &ValidationError{
				Field: f.name,
				Value: f.value,
				Min:   MinMargin,
				Max:   MaxMargin,
			}
		}
	}
	return nil
}
