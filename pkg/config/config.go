// Package config loads stackedcards settings from a TOML file.
//
// A missing file is not an error: [Load] returns [Default] settings. Keys that
// are absent from the file keep their default values, so a config file only
// needs the settings it changes:
//
//	[transform]
//	rotation = false
//
//	[deck]
//	colors = ["#ff3b30", "#007aff", "#34c759"]
package config

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackedcards/pkg/carousel"
	"github.com/matzehuels/stackedcards/pkg/deck"
	"github.com/matzehuels/stackedcards/pkg/errors"
	"github.com/matzehuels/stackedcards/pkg/progress"
	"github.com/matzehuels/stackedcards/pkg/transform"
)

const (
	appName  = "stackedcards"
	fileName = "config.toml"
)

// Config is the full application configuration.
type Config struct {
	Progress  Progress  `toml:"progress"`
	Transform Transform `toml:"transform"`
	View      View      `toml:"view"`
	Deck      Deck      `toml:"deck"`
	Debug     Debug     `toml:"debug"`
}

// Progress configures the progress calculator.
type Progress struct {
	Limit float64 `toml:"limit"`
	Clamp string  `toml:"clamp"` // "symmetric" or "upper"
}

// Transform configures the transform mapper.
type Transform struct {
	Scale              float64 `toml:"scale"`
	SymmetricScale     bool    `toml:"symmetric_scale"`
	Rotation           bool    `toml:"rotation"`
	MaxDegrees         float64 `toml:"max_degrees"`
	ExcessOffset       float64 `toml:"excess_offset"` // 0 = 8 with rotation, 10 without
	BackwardMultiplier float64 `toml:"backward_multiplier"`
	Focused            bool    `toml:"focused"`
	Pin                string  `toml:"pin"` // "past", "upcoming" or "none"
}

// View configures the rendered viewport.
type View struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	Padding       float64 `toml:"padding"`
	VPadding      float64 `toml:"vertical_padding"`
	ShowIndicator bool    `toml:"show_indicator"`
}

// Deck configures the cards.
type Deck struct {
	Colors []string `toml:"colors"`
}

// Debug configures diagnostics.
type Debug struct {
	Transforms bool `toml:"transforms"` // report every card transform
}

// Default returns the built-in configuration.
func Default() Config {
	tc := transform.DefaultConfig()
	return Config{
		Progress: Progress{
			Limit: progress.DefaultLimit,
			Clamp: progress.ClampSymmetric.String(),
		},
		Transform: Transform{
			Scale:              tc.ScaleAmount,
			SymmetricScale:     tc.SymmetricScale,
			Rotation:           tc.RotationEnabled,
			MaxDegrees:         tc.MaxDegrees,
			BackwardMultiplier: tc.BackwardMultiplier,
			Focused:            tc.Focused,
			Pin:                tc.Pin.String(),
		},
		View: View{
			Width:    390,
			Height:   400,
			Padding:  88,
			VPadding: 16,
		},
		Deck: Deck{
			Colors: append([]string(nil), deck.DefaultColors...),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/stackedcards/config.toml, falling back
// to ~/.config/stackedcards/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration at path. An empty path uses DefaultPath.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	cfg, err = Decode(string(data))
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	return cfg, nil
}

// Decode parses TOML on top of the defaults and validates the result.
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes cfg to path, creating parent directories.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create config directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return f.Close()
}

// Validate checks value ranges and enum names.
func (c Config) Validate() error {
	if !positive(c.Progress.Limit) {
		return errors.New(errors.ErrCodeInvalidConfig, "progress.limit must be positive, got %v", c.Progress.Limit)
	}
	if _, err := progress.ParseClampMode(c.Progress.Clamp); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "progress.clamp")
	}
	if _, err := transform.ParsePinMode(c.Transform.Pin); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "transform.pin")
	}
	// A limit * scale of 1 or more collapses cards at the clamp boundary.
	if !finite(c.Transform.Scale) || c.Transform.Scale < 0 || c.Transform.Scale*c.Progress.Limit >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "transform.scale must be in [0, 1/limit), got %v", c.Transform.Scale)
	}
	if !finite(c.Transform.MaxDegrees) || !finite(c.Transform.ExcessOffset) || !finite(c.Transform.BackwardMultiplier) {
		return errors.New(errors.ErrCodeInvalidConfig, "transform values must be finite numbers")
	}
	if !positive(c.View.Width) || !positive(c.View.Height) {
		return errors.New(errors.ErrCodeInvalidConfig, "view.width and view.height must be positive")
	}
	if c.View.Padding < 0 || c.View.VPadding < 0 || 2*c.View.Padding >= c.View.Width {
		return errors.New(errors.ErrCodeInvalidConfig, "view.padding must be non-negative and leave room for the card")
	}
	if len(c.Deck.Colors) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "deck.colors must not be empty")
	}
	for _, col := range c.Deck.Colors {
		if err := errors.ValidateHexColor(col); err != nil {
			return err
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// TransformConfig converts the transform section.
func (c Config) TransformConfig() transform.Config {
	pin, _ := transform.ParsePinMode(c.Transform.Pin)
	return transform.Config{
		ScaleAmount:        c.Transform.Scale,
		SymmetricScale:     c.Transform.SymmetricScale,
		RotationEnabled:    c.Transform.Rotation,
		MaxDegrees:         c.Transform.MaxDegrees,
		ExcessOffset:       c.Transform.ExcessOffset,
		BackwardMultiplier: c.Transform.BackwardMultiplier,
		Focused:            c.Transform.Focused,
		Pin:                pin,
	}
}

// CarouselOptions converts the progress, transform and debug sections.
func (c Config) CarouselOptions() carousel.Options {
	clamp, _ := progress.ParseClampMode(c.Progress.Clamp)
	return carousel.Options{
		Limit:     c.Progress.Limit,
		Clamp:     clamp,
		Transform: c.TransformConfig(),
		Debug:     c.Debug.Transforms,
	}
}

// Viewport converts the view section.
func (c Config) Viewport() carousel.Viewport {
	return carousel.Viewport{
		Width:    c.View.Width,
		Height:   c.View.Height,
		Padding:  c.View.Padding,
		VPadding: c.View.VPadding,
	}
}

// NewDeck builds the configured deck.
func (c Config) NewDeck() (*deck.Deck, error) {
	return deck.New(c.Deck.Colors...)
}
