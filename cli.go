package acctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mashiike/slogutils"
)

type CLI struct {
	GlobalOption

	LogLevel  string `help:"Log level" default:"info" enum:"debug,info,warn,error"`
	LogFormat string `help:"Log format" default:"text" enum:"text,json"`

	Call       CallOption       `cmd:"" help:"Call an operation with flat parameters."`
	Render     RenderOption     `cmd:"" help:"Render the request an operation would send."`
	Diff       DiffOption       `cmd:"" help:"Diff the local request and the remote resource."`
	Init       InitOption       `cmd:"" help:"Write a params file from the remote resource."`
	Describe   DescribeOption   `cmd:"" help:"Describe the parameters of an operation."`
	Operations OperationsOption `cmd:"" help:"List known operations."`
	Version    struct{}         `cmd:"" help:"Show version."`
}

func (c *CLI) Run(ctx context.Context) error {
	k := kong.Parse(c, kong.Vars{"version": fmt.Sprintf("%s %s", AppName, Version)}, kong.Name(AppName))
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return err
	}
	opts := slogutils.MiddlewareOptions{
		ModifierFuncs: map[slog.Level]slogutils.ModifierFunc{
			slog.LevelDebug: slogutils.Color(color.FgBlack),
			slog.LevelInfo:  nil,
			slog.LevelWarn:  slogutils.Color(color.FgYellow),
			slog.LevelError: slogutils.Color(color.FgRed, color.Bold),
		},
		Writer: os.Stderr,
		HandlerOptions: &slog.HandlerOptions{
			Level: logLevel,
		},
	}
	var logger *slog.Logger
	switch c.LogFormat {
	case "text":
		logger = slog.New(slogutils.NewMiddleware(
			slog.NewTextHandler,
			opts,
		))
	case "json":
		logger = slog.New(slogutils.NewMiddleware(
			slog.NewJSONHandler,
			opts,
		))
	default:
		return fmt.Errorf("unknown log format: %s", c.LogFormat)
	}
	slog.SetDefault(logger)
	cmd := strings.Split(k.Command(), " ")[0]
	if cmd == "version" {
		fmt.Printf("%s %s\n", AppName, Version)
		return nil
	}
	app, err := New(ctx, &c.GlobalOption)
	if err != nil {
		return err
	}
	return withExitCode(c.dispatch(ctx, app, cmd))
}

func (c *CLI) dispatch(ctx context.Context, app *App, cmd string) error {
	switch cmd {
	case "call":
		return app.Call(ctx, &c.Call)
	case "render":
		return app.Render(ctx, &c.Render)
	case "diff":
		return app.Diff(ctx, &c.Diff)
	case "init":
		return app.Init(ctx, &c.Init)
	case "describe":
		return app.Describe(ctx, &c.Describe)
	case "operations":
		return app.Operations(ctx, &c.Operations)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// withExitCode gives rejected parameters and selectors their own exit code.
func withExitCode(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	var verrs ValidationErrors
	var ferr *FieldError
	if errors.As(err, &verrs) || errors.As(err, &ferr) {
		return &ExitError{Code: ExitCodeValidation, Err: err}
	}
	return err
}
