package core

import (
	"log"
	"path/filepath"

	"github.com/automoto/burrow/config"
)

// WatchTuning reloads the tuning file at path whenever it changes on disk.
// Files that fail to parse or validate are logged and the current tuning stays.
// Close the returned watcher to stop.
func (s *Server) WatchTuning(path string) (*config.TuningWatcher, error) {
	path = filepath.Clean(path)
	w, err := config.NewTuningWatcher(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	go func() {
		events, errs := w.Events, w.Errors
		for events != nil || errs != nil {
			select {
			case name, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				if filepath.Clean(name) == path {
					_ = s.ReloadTuning(path)
				}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				log.Printf("[tuning] watcher error: %v", err)
			}
		}
	}()
	return w, nil
}

// ReloadTuning loads path and applies it to every player.
func (s *Server) ReloadTuning(path string) error {
	tuning, err := config.LoadTuning(path)
	if err != nil {
		log.Printf("[tuning] ignoring %s: %v", path, err)
		return err
	}
	s.SetTuning(*tuning)
	log.Printf("[tuning] reloaded %s (variant %s)", path, tuning.Variant)
	return nil
}
