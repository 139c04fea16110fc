package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/funkybooboo/ugrep/internal/grep"
	"github.com/funkybooboo/ugrep/internal/logging"
	"github.com/funkybooboo/ugrep/internal/regex"
)

// ErrUsage is the cause of every error about how ugrep was invoked.
var ErrUsage = errors.New("usage: ugrep <pattern> [input-file]")

// fileError reports an input file that could not be opened.
type fileError struct {
	name string
	err  error
}

func (e *fileError) Error() string {
	return fmt.Sprintf("Can't open input file: %s: %v", e.name, e.err)
}

func (e *fileError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	conf := viper.New()

	cmd := &cobra.Command{
		Use:   "ugrep <pattern> [input-file]",
		Short: "Print lines matching a pattern with the matches highlighted",
		Long: `
ugrep reads input-file, or standard input when it is omitted, and prints every
line that contains a match for pattern. Matched text is shown in red.

Patterns support literals, '.', '^', '$', bracket lists such as [abc], grouping
with ( ), alternation with |, and the quantifiers *, + and ?. Start the pattern
after -- if it begins with '-'.
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return ErrUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(conf)
			if err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
	}

	addFlags(cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(ErrUsage, err.Error())
	})

	if err := conf.BindPFlags(cmd.Flags()); err != nil {
		panic(errors.Wrap(err, "binding flags"))
	}
	conf.SetEnvPrefix("UGREP")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.Int("max-line-length", grep.DefaultMaxLineLength,
		"Longest input line accepted, in bytes. Longer lines abort the run.")
	flags.String("color", colorAlways,
		"Highlight matches: always, never, or auto (only when writing to a terminal).")
	flags.String("log-level", "warn",
		"Diagnostics written to stderr: "+strings.Join(logging.Levels, ", ")+".")
	flags.String("config", "",
		"Configuration file. Overridden by UGREP_* environment variables and flags.")
}

func run(cmd *cobra.Command, cfg Config, args []string) error {
	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return errors.Wrap(ErrUsage, err.Error())
	}
	defer func() { _ = log.Sync() }()

	plog := log.Named("parse")
	pattern, err := regex.Parse(args[0])
	if err != nil {
		plog.Debug("rejected", zap.String("pattern", args[0]), zap.Error(err))
		return err
	}
	plog.Debug("parsed", zap.String("pattern", pattern.String()))
	if ce := plog.Check(zap.DebugLevel, "tree"); ce != nil {
		ce.Write(zap.String("ast", "\n"+regex.Dump(pattern)))
	}

	in := cmd.InOrStdin()
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			return &fileError{name: args[1], err: err}
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	g := grep.New(pattern, grep.Options{
		MaxLineLength: cfg.MaxLineLength,
		Highlighter:   cfg.highlighter(out),
		Logger:        log,
	})
	if _, err := g.Run(in, out); err != nil {
		log.Named("main").Debug("aborted", zap.Error(err))
		return err
	}
	return nil
}
