package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	flowgrid "github.com/grindlemire/go-flowgrid"
	"github.com/grindlemire/go-flowgrid/internal/debug"
	"github.com/grindlemire/go-flowgrid/pkg/fixture"
)

func isFixture(name string) bool {
	_, err := fixture.FormatForPath(name)
	return err == nil
}

// collectFixtures expands paths into fixture files. A path ending in /...
// is searched recursively; a directory is searched one level deep.
func collectFixtures(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		// Handle ./... recursive pattern
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isFixture(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isFixture(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
			continue
		}

		if !isFixture(path) {
			return nil, fmt.Errorf("%s is not a fixture (want .toml, .yaml or .yml)", path)
		}
		files = append(files, path)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no fixtures found")
	}
	return files, nil
}

// loaded is a fixture with its layout built.
type loaded struct {
	path    string
	fixture *fixture.Fixture
	layout  *flowgrid.Layout
	host    *flowgrid.StaticHost
}

// openDebugLog returns the FLOWGRID_DEBUG logger, or nil when unset. The
// returned function closes the log file.
func openDebugLog() (*slog.Logger, func(), error) {
	logger, err := debug.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { debug.Close() }, nil
}

// loadLayout reads the fixture at path and builds its layout. A nil logger
// leaves the package default in place.
func loadLayout(path string, logger *slog.Logger) (*loaded, error) {
	f, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}

	var extra []flowgrid.Option
	if logger != nil {
		extra = append(extra, flowgrid.WithLogger(logger.With("fixture", f.Name)))
	}

	l, host, err := f.Build(extra...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &loaded{path: path, fixture: f, layout: l, host: host}, nil
}
