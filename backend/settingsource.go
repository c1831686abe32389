package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"

	"gioui.org/x/explorer"
	"github.com/fsnotify/fsnotify"
)

// Reload is the outcome of rereading settings. Seq increases with each
// reload so that consumers can tell new results from repeated ones. On
// failure Err is set and Settings holds the settings that stay in effect.
type Reload struct {
	Seq      uint64
	Source   string
	Settings Settings
	Err      error
}

// SettingsSource publishes settings reloaded from the config file whenever
// it is written, or from files the user opens.
type SettingsSource struct {
	path string

	// lock guards the fields below.
	lock    sync.Mutex
	current Settings
	latest  Reload
	// changed is closed and replaced whenever latest is updated.
	changed chan struct{}
}

// NewSettingsSource returns a source whose settings start as current. The
// path may be empty when no config file is in use, in which case Watch
// does nothing.
func NewSettingsSource(path string, current Settings) *SettingsSource {
	return &SettingsSource{
		path:    path,
		current: current,
		changed: make(chan struct{}),
	}
}

// Current returns the settings most recently loaded successfully.
func (s *SettingsSource) Current() Settings {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.current
}

func (s *SettingsSource) publish(source string, load func(base Settings) (Settings, error)) {
	s.lock.Lock()
	defer s.lock.Unlock()
	settings, err := load(s.current)
	if err == nil {
		s.current = settings
	}
	s.latest = Reload{
		Seq:      s.latest.Seq + 1,
		Source:   source,
		Settings: s.current,
		Err:      err,
	}
	close(s.changed)
	s.changed = make(chan struct{})
}

// Load reads settings from r on top of the current ones and publishes the
// result. It closes r.
func (s *SettingsSource) Load(source string, r io.ReadCloser) {
	defer r.Close()
	s.publish(source, func(base Settings) (Settings, error) {
		settings, err := LoadSettings(r, base)
		if err != nil {
			return base, fmt.Errorf("%s: %w", source, err)
		}
		return settings, nil
	})
}

// LoadFromFile asks the user to choose a settings file and loads it. It
// blocks until the user has chosen.
func (s *SettingsSource) LoadFromFile(expl *explorer.Explorer) error {
	file, err := expl.ChooseFile(".ini")
	if err != nil {
		if errors.Is(err, explorer.ErrUserDecline) {
			return nil
		}
		return fmt.Errorf("failed choosing settings file: %w", err)
	}
	s.Load("chosen file", file)
	return nil
}

func (s *SettingsSource) reloadFile() {
	s.publish(s.path, func(base Settings) (Settings, error) {
		return LoadSettingsFile(s.path, base)
	})
}

// Watch reloads the config file each time it is written until ctx is
// cancelled. The containing directory is watched so that editors which
// replace the file rather than rewrite it are noticed.
func (s *SettingsSource) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed watching %s: %w", s.path, err)
	}
	target := filepath.Clean(s.path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				s.reloadFile()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("settings watcher: %v", err)
			}
		}
	}()
	return nil
}

// Stream emits the latest reload, if any, and then each later one until
// ctx is cancelled. Only the newest reload is delivered when several
// happen before the consumer reads.
func (s *SettingsSource) Stream(ctx context.Context) <-chan Reload {
	out := make(chan Reload, 1)
	go func() {
		var seen uint64
		defer close(out)
		for {
			s.lock.Lock()
			latest, changed := s.latest, s.changed
			s.lock.Unlock()
			if latest.Seq != seen {
				seen = latest.Seq
				select {
				case out <- latest:
				case <-ctx.Done():
					return
				}
				continue
			}
			select {
			case <-changed:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
