package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeanpaul/roster/internal/config"
	"github.com/jeanpaul/roster/internal/headless"
	"github.com/jeanpaul/roster/internal/logging"
	"github.com/jeanpaul/roster/internal/prompt"
	"github.com/jeanpaul/roster/internal/roster"
	"github.com/jeanpaul/roster/internal/session"
	"github.com/jeanpaul/roster/internal/store"
	"github.com/jeanpaul/roster/internal/tui"
)

const (
	ExitSuccess = 0
	ExitError   = 1   // bad config, failed save, unexpected failure
	ExitAborted = 130 // prompt interrupted or input closed
)

type options struct {
	configPath string
	dataFile   string
	verbose    bool
	headless   bool
}

type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func main() {
	os.Exit(execute(os.Args[1:], streams{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}))
}

func execute(args []string, s streams) int {
	cmd := newRootCmd(s)
	cmd.SetArgs(args)
	cmd.SetOut(s.out)
	cmd.SetErr(s.errOut)
	return exitCode(cmd.Execute(), s.errOut)
}

func newRootCmd(s streams) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Maintain a roster of student records",
		Long: `roster guides you through a menu to add, edit, remove and list student
records. Every change is written to the roster file immediately.

When stdin is not a terminal (or --headless is given) prompts are read line by
line, so a session can be scripted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, s)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: search ., $XDG_CONFIG_HOME/roster, ~/.config/roster)")
	cmd.Flags().StringVar(&opts.dataFile, "data", "", "roster file (default \""+store.DefaultPath+"\")")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "line-based prompts even on a terminal")

	return cmd
}

func run(ctx context.Context, opts options, s streams) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.dataFile != "" {
		cfg.DataFile = opts.dataFile
	}
	if opts.headless {
		cfg.Headless = true
	}

	level := cfg.Level()
	if opts.verbose {
		level = zapcore.DebugLevel
	}
	logger, err := logging.New(logging.Options{Level: level, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	js := store.New(cfg.DataFile, logger)
	r := roster.New(js.Load(), js)
	logger.Debug("session starting", zap.String("data_file", cfg.DataFile), zap.Bool("headless", cfg.Headless))

	return session.New(r, newPrompter(cfg.Headless, s), s.out, logger).Run(ctx)
}

// newPrompter uses the TUI only when stdin is an interactive terminal.
func newPrompter(forceHeadless bool, s streams) prompt.Prompter {
	if f, ok := s.in.(*os.File); ok && !forceHeadless {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return tui.NewPrompter(s.in, s.out)
		}
	}
	return headless.New(s.in, s.out)
}

func exitCode(err error, errOut io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	var perr *roster.PersistError
	switch {
	case errors.Is(err, prompt.ErrAborted):
		fmt.Fprintln(errOut, tui.ErrorStyle.Render("Aborted."))
		return ExitAborted
	case errors.As(err, &perr):
		fmt.Fprintln(errOut, tui.ErrorStyle.Render("error: failed to save students: "+perr.Err.Error()))
		return ExitError
	default:
		fmt.Fprintln(errOut, tui.ErrorStyle.Render("error: "+err.Error()))
		return ExitError
	}
}
