package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/dmitrymomot/validkit/pkg/config"
	"github.com/dmitrymomot/validkit/pkg/environment"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/requestid"
)

// Global is shared with every command after the flags are parsed.
type Global struct {
	Logger *slog.Logger
	Config AppConfig
	Env    environment.Environment
	Stdin  io.Reader
	Stdout io.Writer
}

// CLI is the root command.
type CLI struct {
	EnvFile []string `name:"env-file" help:"Additional .env files to load" type:"path"`
	Verbose bool     `short:"v" help:"Log at debug level"`

	Check CheckCmd `cmd:"" help:"Validate a YAML or JSON file of records"`
	Serve ServeCmd `cmd:"" help:"Serve the validation HTTP API"`
}

// AfterApply loads the configuration and builds the logger once the flags
// are known.
func (c *CLI) AfterApply(g *Global, stderr *stderrWriter) error {
	if len(c.EnvFile) > 0 {
		if err := config.LoadEnv(c.EnvFile...); err != nil {
			return err
		}
	}
	if err := config.Load(&g.Config); err != nil {
		return err
	}

	g.Env = environment.Parse(g.Config.AppEnv)
	opts := []logger.Option{
		logger.WithEnvironment(g.Env, g.Config.ServiceName),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	}
	if g.Config.LogLevel != "" {
		level, err := logger.ParseLevel(g.Config.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if g.Config.LogFormat != "" {
		format, err := logger.ParseFormat(g.Config.LogFormat)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	if c.Verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	g.Logger = logger.New(opts...)
	return nil
}

// stderrWriter lets the diagnostic writer be bound separately from stdout.
type stderrWriter struct{ io.Writer }

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	g := &Global{Stdin: stdin, Stdout: stdout}
	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name("validkit"),
		kong.Description("Validate records and report every violation at once."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
		kong.Bind(g, &stderrWriter{stderr}),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help or a usage error already printed its output.
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "validkit: %v\n", err)
		return 2
	}

	if err := kctx.Run(); err != nil {
		if !errors.Is(err, ErrInvalidRecords) {
			g.Logger.Error("command failed", logger.Error(err))
		}
		fmt.Fprintf(stderr, "validkit: %v\n", err)
		return 1
	}
	return 0
}
