package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flowgrid/pkg/fixture"
	"github.com/grindlemire/go-flowgrid/pkg/snapshot"
)

// runRender implements the render subcommand.
// Each fixture is written to <dir>/<name>.png.
func runRender(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	outDir := fs.String("o", ".", "Output directory")
	scale := fs.Float64("scale", 1, "Pixels per point")
	labels := fs.Bool("labels", false, "Draw index paths inside boxes")
	jobs := fs.Int("j", 4, "Fixtures rendered in parallel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobs < 1 {
		return fmt.Errorf("-j must be at least 1")
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectFixtures(paths)
	if err != nil {
		return err
	}

	if err := checkOutputNames(files); err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	logger, closeLog, err := openDebugLog()
	if err != nil {
		return err
	}
	defer closeLog()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*jobs)

	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := renderFixture(path, *outDir, logger, snapshot.WithScale(*scale), snapshot.WithLabels(*labels))
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(w, "%s -> %s\n", path, out)
			return nil
		})
	}
	return g.Wait()
}

// checkOutputNames fails when two fixtures would write the same PNG.
func checkOutputNames(files []string) error {
	seen := make(map[string]string, len(files))
	for _, path := range files {
		f, err := fixture.Load(path)
		if err != nil {
			return err
		}
		if prev, ok := seen[f.Name]; ok {
			return fmt.Errorf("fixtures %s and %s are both named %q", prev, path, f.Name)
		}
		seen[f.Name] = path
	}
	return nil
}

// renderFixture lays out one fixture and saves its snapshot. Each call
// owns its layout and renderer.
func renderFixture(path, outDir string, logger *slog.Logger, opts ...snapshot.Option) (string, error) {
	ld, err := loadLayout(path, logger)
	if err != nil {
		return "", err
	}

	r, err := snapshot.NewRenderer(opts...)
	if err != nil {
		return "", err
	}
	defer r.Close()

	attrs, size := snapshot.Capture(ld.layout)
	out := filepath.Join(outDir, ld.fixture.Name+".png")
	if err := r.SavePNG(out, attrs, size); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
