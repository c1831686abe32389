package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/x/explorer"

	"git.sr.ht/~whereswaldon/chartview/backend"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: plot a live synthetic signal
Usage:

 %[1]s [-config settings.ini] [-waveform sine|sawtooth|square|walk]

Settings given as flags override those in the config file. Chart settings
are reloaded whenever the config file changes.

`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	configPath := flag.String("config", "", "INI file with [chart] and [feed] settings")
	interval := flag.Duration("interval", 0, "Interval between samples (overrides config)")
	window := flag.Int("window", 0, "Number of samples plotted (overrides config)")
	waveform := flag.String("waveform", "", "Waveform to sample: sine, sawtooth, square or walk (overrides config)")
	flag.Parse()

	settings := backend.DefaultSettings()
	if *configPath != "" {
		var err error
		settings, err = backend.LoadSettingsFile(*configPath, settings)
		if err != nil {
			log.Fatalf("failed loading settings: %v", err)
		}
	}
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interval":
			if *interval <= 0 {
				flagErr = fmt.Errorf("-interval must be positive, got %v", *interval)
				return
			}
			settings.Interval = *interval
		case "window":
			if *window < 2 {
				flagErr = fmt.Errorf("-window must be at least 2, got %d", *window)
				return
			}
			settings.Window = *window
		case "waveform":
			w, err := backend.ParseWaveform(*waveform)
			if err != nil {
				flagErr = fmt.Errorf("-waveform: %w", err)
				return
			}
			settings.Waveform = w
		}
	})
	if flagErr != nil {
		log.Fatal(flagErr)
	}
	log.Printf("sampling %s every %v, plotting %d samples", settings.Waveform, settings.Interval, settings.Window)

	go func() {
		w := app.NewWindow(app.Title("chartview"))
		if err := loop(w, *configPath, settings); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, configPath string, settings backend.Settings) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := backend.NewSettingsSource(configPath, settings)
	if err := source.Watch(ctx); err != nil {
		log.Printf("settings will not be reloaded: %v", err)
	}
	feed := backend.NewFeed(settings.Interval, settings.Window, settings.Waveform)
	bundle := backend.NewBundle(feed, source)
	expl := explorer.NewExplorer(w)
	ws := backend.NewWindowState(ctx, bundle, w)

	c := NewChart(w.Invalidate)
	if err := c.SetMargins(settings.Margins); err != nil {
		return fmt.Errorf("failed applying margins: %w", err)
	}
	c.View().Debounce = settings.Debounce
	ui := NewUI(ws, expl, c)

	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
