// Package config resolves redaction options from an optional YAML file and
// REDACT_* environment variables, on top of the built-in defaults.
//
// Recognized keys (file key / environment variable):
//
//	outline_color  / REDACT_OUTLINE_COLOR   hex color, e.g. "#ffff00"
//	outline_width  / REDACT_OUTLINE_WIDTH   stroke width in pixels
//	fill_color     / REDACT_FILL_COLOR      hex color
//	blur_radius    / REDACT_BLUR_RADIUS     Gaussian blur radius
//	skip_unreadable / REDACT_SKIP_UNREADABLE  bool; log-and-skip unreadable images
//
// Environment variables override file values; anything unset keeps its
// default. Colors accept "#rgb"/"#rrggbb" hex plus a few common names.
package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/privacyfilters/redact/internal/redactor"
)

const envPrefix = "REDACT_"

// namedColors maps the color names accepted in config values.
var namedColors = map[string]color.RGBA{
	"yellow": {R: 255, G: 255, B: 0, A: 255},
	"black":  {R: 0, G: 0, B: 0, A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"red":    {R: 255, G: 0, B: 0, A: 255},
	"green":  {R: 0, G: 255, B: 0, A: 255},
	"blue":   {R: 0, G: 0, B: 255, A: 255},
}

// Load builds redactor options from defaults, the YAML file at path (skipped
// when path is empty) and REDACT_* environment variables, in that order of
// precedence.
func Load(path string) (redactor.Options, error) {
	opts := redactor.DefaultOptions()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return opts, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return opts, fmt.Errorf("failed to load environment: %w", err)
	}

	if s := k.String("outline_color"); s != "" {
		c, err := parseColor(s)
		if err != nil {
			return opts, fmt.Errorf("outline_color: %w", err)
		}
		opts.OutlineColor = c
	}
	if s := k.String("fill_color"); s != "" {
		c, err := parseColor(s)
		if err != nil {
			return opts, fmt.Errorf("fill_color: %w", err)
		}
		opts.FillColor = c
	}
	if k.Exists("outline_width") {
		opts.OutlineWidth = k.Float64("outline_width")
	}
	if k.Exists("blur_radius") {
		opts.BlurRadius = k.Float64("blur_radius")
	}
	if k.Exists("skip_unreadable") {
		opts.SkipUnreadable = k.Bool("skip_unreadable")
	}

	return opts, nil
}

// parseColor accepts a named color or a hex string like "#ffff00".
func parseColor(s string) (color.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
