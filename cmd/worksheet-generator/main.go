package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	worksheets "github.com/julianandrews/worksheet-generator"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args, DefaultDeps()))
}

// realMain contains the testable entry point logic.
func realMain(args []string, deps *Dependencies) int {
	if len(args) > 1 && args[1] == "doctor" {
		return runDoctorCmd(args[2:], deps)
	}

	flags, err := parseFlags(args, deps.Stderr)
	if err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(deps.Stdout, "worksheet-generator %s\n", Version)
		return ExitSuccess
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(deps.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg := DefaultConfig()
	configDir := ""
	if flags.configPath != "" {
		loaded, path, err := LoadConfig(flags.configPath)
		if err != nil {
			fmt.Fprintln(deps.Stderr, err)
			return exitCodeFor(err)
		}
		cfg = loaded
		configDir = filepath.Dir(path)
		if flags.verbose {
			fmt.Fprintf(deps.Stderr, "Loaded config %s\n", path)
		}
	}

	opts, err := resolveOptions(flags, cfg, configDir)
	if err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return exitCodeFor(err)
	}

	if opts.Verbose {
		fmt.Fprintf(deps.Stderr, "Generating %s from %d page(s) with %s\n",
			opts.Format, len(opts.Pages), opts.Engine)
	}

	svc, err := worksheets.New(
		worksheets.WithEngine(opts.Engine),
		worksheets.WithWorkers(opts.Workers),
	)
	if err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return exitCodeFor(err)
	}
	defer func() { _ = svc.Close() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, svc, worksheets.NewLPPrinter(), deps); err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return exitCodeFor(err)
	}

	return ExitSuccess
}
