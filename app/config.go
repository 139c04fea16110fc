package main

import (
	"io"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/funkybooboo/ugrep/internal/grep"
	"github.com/funkybooboo/ugrep/internal/logging"
)

const (
	colorAlways = "always"
	colorNever  = "never"
	colorAuto   = "auto"
)

// Config holds the settings resolved from flags, UGREP_* environment
// variables and an optional config file, in that order of precedence.
type Config struct {
	MaxLineLength int
	Color         string
	LogLevel      string
}

func loadConfig(conf *viper.Viper) (Config, error) {
	if file := conf.GetString("config"); file != "" {
		conf.SetConfigFile(file)
		if err := conf.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", file)
		}
	}

	cfg := Config{
		MaxLineLength: conf.GetInt("max-line-length"),
		Color:         conf.GetString("color"),
		LogLevel:      conf.GetString("log-level"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.MaxLineLength <= 0 || c.MaxLineLength > grep.MaxLineLengthLimit {
		return errors.Wrapf(ErrUsage, "max-line-length must be between 1 and %d, got %d",
			grep.MaxLineLengthLimit, c.MaxLineLength)
	}
	switch c.Color {
	case colorAlways, colorNever, colorAuto:
	default:
		return errors.Wrapf(ErrUsage, "color must be one of always, never, auto, got %q", c.Color)
	}
	if !slices.Contains(logging.Levels, c.LogLevel) {
		return errors.Wrapf(ErrUsage, "unknown log-level %q", c.LogLevel)
	}
	return nil
}

// highlighter picks the markers for matches written to out. In auto mode
// colour is used only when out is a terminal.
func (c Config) highlighter(out io.Writer) grep.Highlighter {
	switch c.Color {
	case colorAlways:
		return grep.Red
	case colorNever:
		return grep.Plain
	}
	if f, ok := out.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		return grep.Red
	}
	return grep.Plain
}
