package flowgrid

import (
	"fmt"
	"log/slog"
	"math"
)

// Option is a functional option for configuring a Layout.
type Option func(*Layout) error

// WithDirection sets the scroll axis. Default is Vertical.
func WithDirection(d Direction) Option {
	return func(l *Layout) error {
		if !d.Valid() {
			return fmt.Errorf("unknown direction %d", uint8(d))
		}
		l.direction = d
		return nil
	}
}

// WithStickyHeaders pins each header to the top of the viewport while its
// section is scrolled through.
func WithStickyHeaders(enabled bool) Option {
	return func(l *Layout) error {
		l.stickyHeaders = enabled
		return nil
	}
}

// WithStickyHeaderOffset nudges where sticky headers come to rest, along
// the scroll axis.
func WithStickyHeaderOffset(offset float64) Option {
	return func(l *Layout) error {
		if err := checkFinite("sticky header offset", offset); err != nil {
			return err
		}
		l.stickyHeaderOffset = offset
		return nil
	}
}

// WithTopContentInset sets the inset added to the scroll offset when
// positioning sticky headers, typically the height of an overlaid bar.
func WithTopContentInset(inset float64) Option {
	return func(l *Layout) error {
		if err := checkFinite("top content inset", inset); err != nil {
			return err
		}
		l.topContentInset = inset
		return nil
	}
}

// WithStretchToEdge extends items that end within one point of the trailing
// edge so they touch it exactly.
func WithStretchToEdge(enabled bool) Option {
	return func(l *Layout) error {
		l.stretchToEdge = enabled
		return nil
	}
}

// WithShowHeaderWhenEmpty keeps headers and footers of sections that have
// no items. By default they are suppressed.
func WithShowHeaderWhenEmpty(enabled bool) Option {
	return func(l *Layout) error {
		l.showHeaderWhenEmpty = enabled
		return nil
	}
}

// WithLogger sets the logger for this Layout. By default the package logger
// from Logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Layout) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		l.logger = logger
		return nil
	}
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %v", name, v)
	}
	return nil
}
