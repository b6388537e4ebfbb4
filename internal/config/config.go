// Package config reads dial theme files.
//
// A theme is a TOML document selecting a band and overriding any of the
// visual parameters of the dial:
//
//	preset = "fm"
//	scroll_enabled = true
//
//	[range]
//	start = 87.5
//	end = 108
//	step = 0.1
//	format = "decimal"
//
//	[style]
//	tick_pitch = 6
//	label_size = 9
//	main_color = "#000000"
//	indicator_color = "#ff0000"
//
// Keys left out keep the value the dial already has.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/tejashwikalptaru/radiodial/internal/dial"
	"github.com/tejashwikalptaru/radiodial/internal/domain"
)

// DialConfig is the root of a theme file.
type DialConfig struct {
	Preset        string       `toml:"preset,omitempty"`
	ScrollEnabled *bool        `toml:"scroll_enabled,omitempty"`
	Range         *RangeConfig `toml:"range,omitempty"`
	Style         StyleConfig  `toml:"style"`
}

// RangeConfig overrides the preset band.
type RangeConfig struct {
	Start  float64 `toml:"start"`
	End    float64 `toml:"end"`
	Step   float64 `toml:"step"`
	Format string  `toml:"format,omitempty"`
}

// StyleConfig overrides visual parameters. Colors are "#rrggbb" or "#rrggbbaa".
type StyleConfig struct {
	TickPitch          *float64 `toml:"tick_pitch,omitempty"`
	MainMargin         *float64 `toml:"main_margin,omitempty"`
	IntermediateMargin *float64 `toml:"intermediate_margin,omitempty"`
	LabelMargin        *float64 `toml:"label_margin,omitempty"`
	IndicatorMargin    *float64 `toml:"indicator_margin,omitempty"`
	LabelSize          *float64 `toml:"label_size,omitempty"`

	MainColor         string `toml:"main_color,omitempty"`
	IntermediateColor string `toml:"intermediate_color,omitempty"`
	LabelColor        string `toml:"label_color,omitempty"`
	IndicatorColor    string `toml:"indicator_color,omitempty"`
}

// Load reads and validates the theme file at path.
func Load(path string) (DialConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return DialConfig{}, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return DialConfig{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses and validates a theme. Unknown keys are rejected.
func Decode(r io.Reader) (DialConfig, error) {
	var cfg DialConfig
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return DialConfig{}, fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return DialConfig{}, fmt.Errorf("%w: line %d column %d: %s", domain.ErrInvalidConfig, row, col, decodeErr.Error())
		}
		return DialConfig{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return DialConfig{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg DialConfig) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}

// Default returns the theme matching the stock dial look.
func Default() DialConfig {
	s := dial.DefaultStyle()
	enabled := true
	return DialConfig{
		Preset:        domain.PresetFM.String(),
		ScrollEnabled: &enabled,
		Style: StyleConfig{
			TickPitch:          &s.TickPitch,
			MainMargin:         &s.MainMargin,
			IntermediateMargin: &s.IntermediateMargin,
			LabelMargin:        &s.LabelMargin,
			IndicatorMargin:    &s.IndicatorMargin,
			LabelSize:          &s.LabelFont.Size,
			MainColor:          FormatColor(s.MainTickColor),
			IntermediateColor:  FormatColor(s.IntermediateTickColor),
			LabelColor:         FormatColor(s.LabelColor),
			IndicatorColor:     FormatColor(s.IndicatorColor),
		},
	}
}

// Validate checks every field without touching a dial.
func (c DialConfig) Validate() error {
	if c.Preset != "" {
		if _, err := domain.ParsePreset(c.Preset); err != nil {
			return err
		}
	}

	if c.Range != nil {
		format, err := domain.ParseLabelFormat(c.Range.Format)
		if err != nil {
			return err
		}
		rng := domain.FrequencyRange{Start: c.Range.Start, End: c.Range.End, Step: c.Range.Step, Format: format}
		if err := rng.Validate(); err != nil {
			return err
		}
	}

	lengths := []struct {
		field string
		value *float64
	}{
		{"style.tick_pitch", c.Style.TickPitch},
		{"style.main_margin", c.Style.MainMargin},
		{"style.intermediate_margin", c.Style.IntermediateMargin},
		{"style.label_margin", c.Style.LabelMargin},
		{"style.indicator_margin", c.Style.IndicatorMargin},
	}
	for _, l := range lengths {
		if l.value != nil && *l.value < 0 {
			return domain.NewValidationError(l.field, *l.value, "must not be negative", domain.ErrInvalidConfig)
		}
	}
	if c.Style.LabelSize != nil && *c.Style.LabelSize <= 0 {
		return domain.NewValidationError("style.label_size", *c.Style.LabelSize, "must be positive", domain.ErrInvalidConfig)
	}

	colors := map[string]string{
		"style.main_color":         c.Style.MainColor,
		"style.intermediate_color": c.Style.IntermediateColor,
		"style.label_color":        c.Style.LabelColor,
		"style.indicator_color":    c.Style.IndicatorColor,
	}
	for field, value := range colors {
		if value == "" {
			continue
		}
		if _, err := ParseColor(value); err != nil {
			return domain.NewValidationError(field, value, err.Error(), domain.ErrInvalidColor)
		}
	}
	return nil
}

// Apply pushes the theme onto d through its public setters: band first, then
// style, then the scroll flag.
func (c DialConfig) Apply(d *dial.Dial) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Preset != "" {
		preset, _ := domain.ParsePreset(c.Preset)
		d.ApplyPreset(preset)
	}
	if c.Range != nil {
		if err := d.SetRange(c.Range.Start, c.Range.End, c.Range.Step); err != nil {
			return err
		}
		format, _ := domain.ParseLabelFormat(c.Range.Format)
		d.SetLabelFormat(format)
	}

	d.SetStyle(c.Style.apply(d.Style()))

	if c.ScrollEnabled != nil {
		d.SetScrollEnabled(*c.ScrollEnabled)
	}
	return nil
}

// apply returns s with the configured overrides. The config must be valid.
func (sc StyleConfig) apply(s dial.Style) dial.Style {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.TickPitch, sc.TickPitch)
	set(&s.MainMargin, sc.MainMargin)
	set(&s.IntermediateMargin, sc.IntermediateMargin)
	set(&s.LabelMargin, sc.LabelMargin)
	set(&s.IndicatorMargin, sc.IndicatorMargin)
	if sc.LabelSize != nil {
		s.LabelFont.Size = *sc.LabelSize
		s.HighlightFont.Size = *sc.LabelSize
	}

	if c, err := ParseColor(sc.MainColor); err == nil {
		s.MainTickColor = c
	}
	if c, err := ParseColor(sc.IntermediateColor); err == nil {
		s.IntermediateTickColor = c
	}
	if c, err := ParseColor(sc.LabelColor); err == nil {
		s.LabelColor = c
	}
	if c, err := ParseColor(sc.IndicatorColor); err == nil {
		s.IndicatorColor = c
	}
	return s
}
