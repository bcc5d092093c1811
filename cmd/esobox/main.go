// Command esobox runs esoteric-language programs.
//
//	esobox [flags] <LANGUAGE> <FILE>
//	esobox [flags] <LANGUAGE> -- <ARGS>...
//
// In the first form the source is read from FILE ("-" for stdin) and the
// program reads its input from stdin. In the second form the source is read
// from stdin and the program input is ARGS separated by NUL bytes.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/esobox/api"
	"github.com/sarchlab/esobox/config"
	"github.com/sarchlab/esobox/core"
	"github.com/sarchlab/esobox/verify"
	"github.com/tebeka/atexit"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var (
	errUsage     = errors.New("usage")
	errLintFatal = errors.New("lint found issues that fail every run")
)

type options struct {
	configPath string
	trace      bool
	cycles     bool
	lint       bool
	dumpBlocks bool
	dumpState  bool

	lang string
	file string
	args []string
	pipe bool
}

func main() {
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })

	atexit.Exit(run(os.Args[1:], os.Stdin, out, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	setupLogging(stderr, opts.trace)

	if err := execute(opts, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "esobox: %v\n", err)
		return exitFail
	}

	return exitOK
}

func parseArgs(argv []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("esobox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Load language profiles from a YAML or TOML file")
	fs.BoolVar(&opts.trace, "trace", false, "Log every executed block as JSON to stderr")
	fs.BoolVar(&opts.cycles, "cycles", false, "Print the number of executed blocks to stderr")
	fs.BoolVar(&opts.lint, "lint", false, "Report static issues before running")
	fs.BoolVar(&opts.dumpBlocks, "dump-blocks", false, "Print the compiled block graph to stderr")
	fs.BoolVar(&opts.dumpState, "dump-state", false, "Print the tape around the cursor when a run fails")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  esobox [options] <LANGUAGE> <FILE>\n")
		fmt.Fprintf(stderr, "  esobox [options] <LANGUAGE> -- <ARGS>...\n\n")
		fmt.Fprintf(stderr, "With FILE, the source is read from FILE (\"-\" for stdin) and input from stdin.\n")
		fmt.Fprintf(stderr, "With --, the source is read from stdin and input is ARGS separated by NUL bytes.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return opts, err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return opts, errUsage
	}

	opts.lang = rest[0]
	if rest[1] == "--" {
		opts.pipe = true
		opts.args = rest[2:]
		return opts, nil
	}

	if len(rest) > 2 {
		fmt.Fprintf(stderr, "esobox: unexpected arguments after %s: %s\n",
			rest[1], strings.Join(rest[2:], " "))
		fs.Usage()
		return opts, errUsage
	}
	opts.file = rest[1]

	return opts, nil
}

func setupLogging(stderr io.Writer, trace bool) {
	level := slog.LevelWarn
	if trace {
		level = api.LevelTrace
	}

	handler := slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

func execute(opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	profile, err := lookupProfile(opts)
	if err != nil {
		return err
	}

	source, input, err := loadSource(opts, stdin)
	if err != nil {
		return err
	}

	if opts.lint || opts.dumpBlocks {
		prog, err := core.Compile(source)
		if err != nil {
			return err
		}

		if opts.dumpBlocks {
			fmt.Fprint(stderr, prog.String())
		}

		if opts.lint {
			issues := verify.RunLint(prog, profile.Tape)
			verify.WriteReport(stderr, issues)
			if verify.HasFatal(issues) {
				return errLintFatal
			}
		}
	}

	if !opts.cycles && !opts.trace && !opts.dumpState {
		return core.Run(source, input, stdout, profile.Tape)
	}

	return simulate(opts, profile, source, input, stdout, stderr)
}

// simulate runs the program through the driver, which ticks once per block
// so that cycles and traces can be reported.
func simulate(
	opts options,
	profile config.Profile,
	source string,
	input io.Reader,
	stdout, stderr io.Writer,
) error {
	driver := api.MakeDriverBuilder().
		WithTape(profile.Tape).
		Build("Driver")

	if err := driver.Load(source, input, stdout); err != nil {
		return err
	}

	res, err := driver.Run()

	if opts.cycles {
		fmt.Fprintf(stderr, "esobox: %d blocks in %.0f ns\n",
			res.Blocks, float64(res.Time*1e9))
	}

	if err != nil && opts.dumpState {
		core.PrintState(stderr, driver.State())
	}

	return err
}

func lookupProfile(opts options) (config.Profile, error) {
	registry := config.NewRegistry()

	if opts.configPath != "" {
		f, err := config.LoadFile(opts.configPath)
		if err != nil {
			return config.Profile{}, err
		}

		if err := registry.Apply(f); err != nil {
			return config.Profile{}, err
		}
	}

	profile, err := registry.Lookup(opts.lang)
	if err != nil {
		return config.Profile{}, fmt.Errorf("%w (known: %s)",
			err, strings.Join(registry.Names(), ", "))
	}

	return profile, nil
}

// loadSource returns the program source and the reader the program takes
// its input from.
func loadSource(opts options, stdin io.Reader) (string, io.Reader, error) {
	if opts.pipe {
		source, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read source: %w", err)
		}
		return string(source), strings.NewReader(strings.Join(opts.args, "\x00")), nil
	}

	if opts.file == "-" {
		source, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read source: %w", err)
		}
		return string(source), strings.NewReader(""), nil
	}

	source, err := os.ReadFile(opts.file)
	if err != nil {
		return "", nil, err
	}

	return string(source), stdin, nil
}
