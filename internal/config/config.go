// Package config loads the settings shared by the chartview commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/midbel/chartview"
	"github.com/spf13/viper"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultFormat   = "svg"
	DefaultAddr     = ":8080"
	DefaultTheme    = ThemeCategory10
	DefaultLogLevel = "info"
)

const (
	ThemeCategory10 = "category10"
	ThemeTableau10  = "tableau10"
	ThemeGenerated  = "generated"
)

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

type Config struct {
	Kind     string   `mapstructure:"kind"`
	Title    string   `mapstructure:"title"`
	Palette  []string `mapstructure:"palette"`
	Theme    string   `mapstructure:"theme"`
	Width    float64  `mapstructure:"width"`
	Height   float64  `mapstructure:"height"`
	Format   []string `mapstructure:"format"`
	Output   string   `mapstructure:"output"`
	Addr     string   `mapstructure:"addr"`
	LogLevel string   `mapstructure:"log-level"`
}

type OptionError struct {
	Option string
	Value  any
	Err    error
}

func (e OptionError) Error() string {
	return fmt.Sprintf("option %s: invalid value %v: %s", e.Option, e.Value, e.Err)
}

func (e OptionError) Unwrap() error {
	return e.Err
}

// Load reads the configuration file if given, then the environment
// (CHARTVIEW_*) and finally the overrides, usually coming from flags.
func Load(file string, overrides map[string]any) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix("CHARTVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("kind", chartview.Bar.String())
	v.SetDefault("title", "")
	v.SetDefault("palette", []string{})
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("width", DefaultWidth)
	v.SetDefault("height", DefaultHeight)
	v.SetDefault("format", []string{DefaultFormat})
	v.SetDefault("output", "")
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("log-level", DefaultLogLevel)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config %s: %w", file, err)
			}
		}
	}
	for k, x := range overrides {
		v.Set(k, x)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.Format = splitList(cfg.Format)
	cfg.Palette = splitList(cfg.Palette)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := chartview.ParseKind(c.Kind); err != nil {
		return OptionError{Option: "kind", Value: c.Kind, Err: err}
	}
	if c.Width <= 0 {
		return OptionError{Option: "width", Value: c.Width, Err: chartview.ErrInvalidConfiguration}
	}
	if c.Height <= 0 {
		return OptionError{Option: "height", Value: c.Height, Err: chartview.ErrInvalidConfiguration}
	}
	if len(c.Format) == 0 {
		return OptionError{Option: "format", Value: c.Format, Err: chartview.ErrInvalidConfiguration}
	}
	for _, f := range c.Format {
		if f != FormatSVG && f != FormatPNG {
			return OptionError{Option: "format", Value: f, Err: chartview.ErrInvalidConfiguration}
		}
	}
	if _, err := c.GetPalette(); err != nil {
		return OptionError{Option: "palette", Value: c.Palette, Err: err}
	}
	return nil
}

// GetPalette gives the explicit palette when set or the palette of the theme.
func (c Config) GetPalette() (chartview.Palette, error) {
	if len(c.Palette) > 0 {
		p := make(chartview.Palette, len(c.Palette))
		for i := range c.Palette {
			p[i] = chartview.Color(c.Palette[i])
		}
		return p, p.Validate()
	}
	switch strings.ToLower(c.Theme) {
	case ThemeCategory10, "":
		return chartview.Category10, nil
	case ThemeTableau10:
		return chartview.Tableau10, nil
	case ThemeGenerated:
		return chartview.GeneratePalette(12), nil
	default:
		return nil, fmt.Errorf("%s: unknown theme: %w", c.Theme, chartview.ErrInvalidConfiguration)
	}
}

// Apply pushes the kind, the title and the palette of the configuration to
// the chart.
func (c Config) Apply(ch *chartview.Chart) error {
	kind, err := chartview.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	palette, err := c.GetPalette()
	if err != nil {
		return err
	}
	if err := ch.SetKind(kind); err != nil {
		return err
	}
	if err := ch.SetPalette(palette); err != nil {
		return err
	}
	ch.SetTitle(c.Title)
	return nil
}

func splitList(list []string) []string {
	var res []string
	for _, str := range list {
		for _, s := range strings.Split(str, ",") {
			if s = strings.TrimSpace(s); s != "" {
				res = append(res, s)
			}
		}
	}
	return res
}
