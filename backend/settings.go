package backend

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/susji/tinyini"

	"git.sr.ht/~whereswaldon/chartview/chart"
)

// Settings configures the chart and the feed driving it.
type Settings struct {
	Margins  chart.Margins
	Debounce time.Duration
	Interval time.Duration
	Window   int
	Waveform Waveform
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Margins:  chart.DefaultMargins,
		Debounce: chart.DefaultResizeDebounce,
		Interval: 50 * time.Millisecond,
		Window:   200,
		Waveform: Sine,
	}
}

// LoadSettings reads INI formatted settings from r on top of base. The
// recognized keys are
//
//	[chart]
//	left, top, right, bottom = margin fraction in [0, 0.5]
//	debounce = duration such as 100ms
//
//	[feed]
//	interval = duration between samples
//	window = number of samples retained
//	waveform = sine, sawtooth, square or walk
//
// Every problem found is reported in the returned error.
func LoadSettings(r io.Reader, base Settings) (Settings, error) {
	sections, parseErrs := tinyini.Parse(r)
	var errs []error
	for _, err := range parseErrs {
		errs = append(errs, err)
	}
	if len(errs) != 0 {
		return base, fmt.Errorf("invalid settings: %w", errors.Join(errs...))
	}
	s := base
	for key, entries := range sections {
		switch {
		case key == "chart", key == "feed":
		case key == "":
			if len(entries) != 0 {
				errs = append(errs, errors.New("settings must be inside [chart] or [feed]"))
			}
		default:
			errs = append(errs, fmt.Errorf("unrecognized section [%s]", key))
		}
	}
	for key, pairs := range sections["chart"] {
		for _, pair := range pairs {
			var err error
			switch key {
			case "left":
				s.Margins.Left, err = parseMargin(pair.Value)
			case "top":
				s.Margins.Top, err = parseMargin(pair.Value)
			case "right":
				s.Margins.Right, err = parseMargin(pair.Value)
			case "bottom":
				s.Margins.Bottom, err = parseMargin(pair.Value)
			case "debounce":
				s.Debounce, err = parsePositiveDuration(pair.Value)
			default:
				err = errors.New("unrecognized key")
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("%d: chart.%s: %w", pair.Lineno, key, err))
			}
		}
	}
	for key, pairs := range sections["feed"] {
		for _, pair := range pairs {
			var err error
			switch key {
			case "interval":
				s.Interval, err = parsePositiveDuration(pair.Value)
			case "window":
				s.Window, err = strconv.Atoi(pair.Value)
				if err == nil && s.Window < 2 {
					err = errors.New("must be at least 2")
				}
			case "waveform":
				s.Waveform, err = ParseWaveform(pair.Value)
			default:
				err = errors.New("unrecognized key")
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("%d: feed.%s: %w", pair.Lineno, key, err))
			}
		}
	}
	if err := s.Margins.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) != 0 {
		return base, fmt.Errorf("invalid settings: %w", errors.Join(errs...))
	}
	return s, nil
}

// LoadSettingsFile reads settings from the file at path on top of base.
func LoadSettingsFile(path string, base Settings) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("failed opening settings: %w", err)
	}
	defer f.Close()
	s, err := LoadSettings(f, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parseMargin(value string) (float32, error) {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

func parsePositiveDuration(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err == nil && d <= 0 {
		err = errors.New("must be positive")
	}
	return d, err
}
