// Package runconfig loads, saves, and hot-reloads the tunable parameters
// of an EA run: population size, selection pressure, evaluation budget,
// and operator settings, stored in a TOML file.
package runconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
)

// Config holds the tunable parameters of a single EA run.
type Config struct {
	PopulationSize   int     `toml:"population_size"`
	EvaluationBudget int     `toml:"evaluation_budget"`
	PBest            float64 `toml:"p_best"` // ECGA selection fraction
	TournamentSize   int     `toml:"tournament_size"`
	CrossoverRate    float64 `toml:"crossover_rate"` // uniform-crossover swap probability
	IncludeParents   bool    `toml:"tournament_include_parents"`
	Verbose          bool    `toml:"verbose"`
}

// Default returns the default run configuration.
func Default() Config {
	return Config{
		PopulationSize:   200,
		EvaluationBudget: 100_000,
		PBest:            0.3,
		TournamentSize:   3,
		CrossoverRate:    0.5,
		IncludeParents:   false,
		Verbose:          false,
	}
}

// Path returns the default config file path: the current directory first,
// then falling back to ~/.config/rustea/config.toml.
func Path() string {
	if _, err := os.Stat("./rustea.toml"); err == nil {
		return "./rustea.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./rustea.toml"
	}

	return filepath.Join(home, ".config", "rustea", "config.toml")
}

// Load reads a TOML config file. A missing file yields Default() with no
// error, falling back to defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return Default(), fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes a config to a TOML file, creating parent directories as
// needed.
func Save(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Shared wraps a Config with a mutex for safe concurrent access between
// the EA driver's worker goroutines and a config-reloading watcher.
type Shared struct {
	mu  sync.RWMutex
	cfg Config
}

// NewShared wraps an initial config value.
func NewShared(cfg Config) *Shared {
	return &Shared{cfg: cfg}
}

// Get returns a copy of the current config.
func (s *Shared) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg
}

// Update replaces the current config.
func (s *Shared) Update(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Watch starts watching path for writes and pushes freshly-loaded configs
// into sh whenever the file changes, until ctx-like stop is closed. It
// returns a function to stop the watcher. Parse errors are dropped
// silently; the previous config stays in effect.
func Watch(path string, sh *Shared, stop <-chan struct{}) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()

		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	go func() {
		for {
			select {
			case <-stop:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}

				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				if cfg, err := Load(path); err == nil {
					sh.Update(cfg)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher.Close, nil
}
