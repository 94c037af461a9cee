package acctl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Songmu/prompter"
	"github.com/itchyny/gojq"
)

type CallOption struct {
	ParamsOption `embed:""`

	Select          string        `short:"s" help:"Output selector: * for the whole response, a response field, or ^Param to echo an input"`
	Query           string        `short:"q" help:"jq query applied to the selected output"`
	DryRun          bool          `name:"dry-run" help:"build and print the request without calling the service" default:"false"`
	Force           bool          `name:"force" help:"call mutating operations without confirmation" default:"false"`
	Wait            bool          `name:"wait" help:"wait until the resource is ready after the call" default:"false"`
	WaitDuration    time.Duration `name:"wait-duration" help:"maximum duration to wait until the resource is ready" default:"30m"`
	PollingInterval time.Duration `name:"polling-interval" help:"polling interval to check the resource status" default:"5s"`
	Timeout         time.Duration `name:"timeout" help:"timeout of the remote call, 0 means none" default:"0s"`
}

func (app *App) Call(ctx context.Context, opt *CallOption) error {
	op, params, inv, err := app.prepare(ctx, &opt.ParamsOption, opt.Timeout)
	if err != nil {
		return err
	}
	var sel *Selector
	if opt.Select != "" {
		s, err := ParseSelector(opt.Select)
		if err != nil {
			return err
		}
		sel = &s
	}
	in := InvokeInput{Operation: op, Params: params, Selector: sel}

	if opt.DryRun || (op.Mutating && !opt.Force) {
		dry := in
		dry.DryRun = true
		res, err := inv.Invoke(ctx, dry)
		if err != nil {
			return err
		}
		if opt.DryRun {
			slog.WarnContext(ctx, "dry run: the request was not sent", "operation", op.Name)
			return app.printValue(ctx, res.Request, opt.Query)
		}
		bs, err := json.MarshalIndent(res.Request, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(app.stderr, "%s: %s\n", op.Name, string(bs))
		if !prompter.YN(fmt.Sprintf("Are you sure you want to call %s?", op.Name), false) {
			slog.InfoContext(ctx, "call cancelled by user", "operation", op.Name)
			return nil
		}
	}

	res, err := inv.Invoke(ctx, in)
	if err != nil {
		return err
	}
	app.DumpIfVerbose(ctx, op.Name+" request", res.Request)
	slog.InfoContext(ctx, "called operation", "operation", op.Name)
	if opt.Wait {
		w, err := newStatusWaiter(inv, app.catalog, op, res, opt.WaitDuration, opt.PollingInterval)
		if err != nil {
			return err
		}
		if err := w.Wait(ctx); err != nil {
			return fmt.Errorf("wait for %s: %w", op.Name, err)
		}
	}
	return app.printValue(ctx, res.Value, opt.Query)
}

// printValue writes v as indented JSON, or raw when it is a string. A jq
// query, when given, is applied first and each result is written.
func (app *App) printValue(ctx context.Context, v any, query string) error {
	if query == "" {
		return app.writeValue(v)
	}
	q, err := gojq.Parse(query)
	if err != nil {
		return fmt.Errorf("failed to parse query: %s %w", query, err)
	}
	jv, err := toJSONValue(v)
	if err != nil {
		return err
	}
	iter := q.RunWithContext(ctx, jv)
	for {
		r, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, ok := r.(error); ok {
			return fmt.Errorf("query %s: %w", query, err)
		}
		if err := app.writeValue(r); err != nil {
			return err
		}
	}
}

func (app *App) writeValue(v any) error {
	if s, ok := v.(string); ok {
		fmt.Fprintln(app.stdout, s)
		return nil
	}
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(app.stdout, string(bs))
	return nil
}
