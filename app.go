// Package acctl calls Amazon Bedrock AgentCore operations from flat named
// parameters, driven by declarative operation models.
package acctl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Songmu/prompter"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/google/go-jsonnet"
	"github.com/mattn/go-isatty"
)

const AppName = "acctl"

type App struct {
	catalog *Catalog
	caller  Caller
	vm      *jsonnet.VM

	verbose bool
	stdout  io.Writer
	stderr  io.Writer
	stdin   io.Reader
}

type GlobalOption struct {
	Models  []string          `name:"model" help:"Additional operation model file, repeatable" env:"ACCTL_MODELS" json:"models,omitempty"`
	TFState string            `help:"Terraform state file URL (s3://... or local path)" env:"ACCTL_TFSTATE" json:"tfstate,omitempty"`
	ExtStr  map[string]string `help:"Set external string variable for Jsonnet VM" env:"ACCTL_EXTSTR" json:"ext_strs,omitempty"`
	ExtCode map[string]string `help:"Set external code variable for Jsonnet VM" env:"ACCTL_EXTCODE" json:"ext_codes,omitempty"`
	Verbose bool              `name:"verbose" short:"v" help:"enable verbose logging" default:"false" json:"verbose,omitempty"`
}

// ParamsOption selects an operation and supplies its flat parameters.
// Values from the params file come first; --param flags override them.
type ParamsOption struct {
	Operation       string   `arg:"" help:"Operation name, e.g. CreateAgentRuntime"`
	Param           []string `short:"p" sep:"none" help:"Parameter as NAME=VALUE, repeatable"`
	ParamsFile      string   `short:"f" help:"Params file (.json, .jsonnet, .yaml, .yml, or - for STDIN)" env:"ACCTL_PARAMS_FILE"`
	MissingRequired string   `help:"What to do when a required parameter is missing" default:"fail" enum:"fail,warn"`
	AliasConflict   string   `help:"What to do when aliases bind one field to different values" default:"reject" enum:"reject,last-wins"`
}

func New(ctx context.Context, opts *GlobalOption) (*App, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewWithClient(
		ctx,
		opts,
		awsCfg,
		bedrockagentcorecontrol.NewFromConfig(awsCfg),
		bedrockagentcore.NewFromConfig(awsCfg),
		ecr.NewFromConfig(awsCfg),
		sts.NewFromConfig(awsCfg),
	)
}

func NewWithClient(
	ctx context.Context,
	opts *GlobalOption,
	awsCfg aws.Config,
	ctrlClient BedrockAgentCoreControlClient,
	client BedrockAgentCoreClient,
	ecrClient ECRClient,
	stsClient STSClient,
) (*App, error) {
	catalog, err := LoadCatalog(opts.Models...)
	if err != nil {
		return nil, err
	}
	caller := newSDKCaller(ctrlClient, client)
	supported := make(map[string]bool)
	for _, t := range caller.Targets() {
		supported[t] = true
	}
	for _, op := range catalog.Operations() {
		if !supported[op.Target] {
			slog.WarnContext(ctx, "operation has no SDK binding and cannot be called", "operation", op.Name, "target", op.Target)
		}
	}
	return &App{
		catalog: catalog,
		caller:  caller,
		vm:      MakeVM(ctx, stsClient, ecrClient, awsCfg, opts),
		verbose: opts.Verbose,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		stdin:   os.Stdin,
	}, nil
}

func (app *App) SetOutput(stdout, stderr io.Writer) {
	app.stdout = stdout
	app.stderr = stderr
}

func (app *App) SetInput(stdin io.Reader) {
	app.stdin = stdin
}

func (app *App) Catalog() *Catalog {
	return app.catalog
}

// DumpIfVerbose writes v as indented JSON to stderr in verbose mode.
func (app *App) DumpIfVerbose(ctx context.Context, name string, v any) {
	if !app.verbose {
		return
	}
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.WarnContext(ctx, "failed to dump value", "name", name, "error", err)
		return
	}
	fmt.Fprintf(app.stderr, "%s: %s\n", name, string(bs))
}

// prepare resolves the operation and its parameters and returns an invoker
// configured with the requested policies.
func (app *App) prepare(ctx context.Context, opt *ParamsOption, timeout time.Duration) (*OperationDescriptor, *ParameterSet, *Invoker, error) {
	op, err := app.catalog.Get(opt.Operation)
	if err != nil {
		return nil, nil, nil, err
	}
	params, err := app.loadParams(ctx, opt)
	if err != nil {
		return nil, nil, nil, err
	}
	missing, err := ParseMissingRequiredPolicy(opt.MissingRequired)
	if err != nil {
		return nil, nil, nil, err
	}
	conflict, err := ParseAliasConflictPolicy(opt.AliasConflict)
	if err != nil {
		return nil, nil, nil, err
	}
	inv := &Invoker{
		Caller:          app.caller,
		MissingRequired: missing,
		AliasConflict:   conflict,
		Timeout:         timeout,
	}
	return op, params.Expand(op.Request), inv, nil
}

func (app *App) loadParams(ctx context.Context, opt *ParamsOption) (*ParameterSet, error) {
	params := NewParameterSet()
	if opt.ParamsFile != "" {
		fromFile, err := app.LoadParamsFile(ctx, opt.ParamsFile)
		if err != nil {
			return nil, err
		}
		params.Merge(fromFile)
	}
	fromFlags, err := ParseParamFlags(opt.Param)
	if err != nil {
		return nil, err
	}
	params.Merge(fromFlags)
	return params, nil
}

// LoadParamsFile reads flat parameters from a JSON, Jsonnet or YAML file.
// "-" reads a JSON or YAML document from STDIN.
func (app *App) LoadParamsFile(ctx context.Context, path string) (*ParameterSet, error) {
	var bs []byte
	var err error
	if path == "-" {
		if f, ok := app.stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			fmt.Fprintln(app.stderr, "Enter parameters as a JSON or YAML object into STDIN. (Type Ctrl-D to close.)")
		}
		bs, err = io.ReadAll(app.stdin)
		if err != nil {
			return nil, fmt.Errorf("read params from STDIN: %w", err)
		}
	} else {
		slog.DebugContext(ctx, "loading params file", "file", path)
		bs, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file %s: %w", path, err)
		}
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jsonnet", ".libsonnet":
		jsonStr, err := app.vm.EvaluateAnonymousSnippet(path, string(bs))
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate jsonnet: %w", err)
		}
		bs = []byte(jsonStr)
	case ".json", ".yaml", ".yml", "":
	default:
		return nil, fmt.Errorf("unsupported params file format: %s", ext)
	}
	params, err := decodeParamsDocument(bs)
	if err != nil {
		return nil, fmt.Errorf("params file %s: %w", path, err)
	}
	return params, nil
}

func (app *App) saveFile(ctx context.Context, path string, b []byte, mode os.FileMode, force bool) error {
	slog.DebugContext(ctx, "writing file", "file", path, "mode", mode)
	if _, err := os.Stat(path); err == nil {
		ok := force || prompter.YN(fmt.Sprintf("Overwrite existing file %s?", path), false)
		if !ok {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}
	}
	return os.WriteFile(path, b, mode)
}
