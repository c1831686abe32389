package backend

import (
	"context"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
)

// WindowState is the per-window view of the application's backend.
type WindowState struct {
	Bundle
	Controller *stream.Controller
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, win.Invalidate),
	}
}

// Bundle holds the backend services shared by every window.
type Bundle struct {
	Feed     *Feed
	Settings *SettingsSource
}

func NewBundle(feed *Feed, settings *SettingsSource) Bundle {
	return Bundle{
		Feed:     feed,
		Settings: settings,
	}
}
