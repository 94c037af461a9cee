package acctl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aereal/jsondiff"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"
	"github.com/fatih/color"
	"github.com/itchyny/gojq"
)

type DiffOption struct {
	ParamsOption `embed:""`

	Ignore   string `help:"ignore diff by jq query" default:""`
	ExitCode bool   `help:"exit with code 2 if there are differences" default:"false"`
}

func coloredDiff(src string) string {
	var b strings.Builder
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(line, "-") {
			b.WriteString(color.RedString(line) + "\n")
		} else if strings.HasPrefix(line, "+") {
			b.WriteString(color.GreenString(line) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Diff compares the request an operation would send with the current remote
// state of the same resource.
func (app *App) Diff(ctx context.Context, opt *DiffOption) error {
	op, params, inv, err := app.prepare(ctx, &opt.ParamsOption, 0)
	if err != nil {
		return err
	}
	local, err := inv.Invoke(ctx, InvokeInput{Operation: op, Params: params, DryRun: true})
	if err != nil {
		return err
	}
	current, err := fetchCurrent(ctx, inv, app.catalog, op, params)
	if err != nil {
		return err
	}
	remoteName := "(not found)"
	var remoteRequest map[string]any
	if current != nil {
		remoteName = current.name
		remoteRequest = current.tree.Request()
	} else {
		slog.InfoContext(ctx, "remote resource not found", "operation", op.Name, "reader", op.Current.Operation)
	}

	opts := []jsondiff.Option{}
	if ignore := opt.Ignore; ignore != "" {
		p, err := gojq.Parse(ignore)
		if err != nil {
			return fmt.Errorf("failed to parse ignore query: %s %w", ignore, err)
		}
		opts = append(opts, jsondiff.Ignore(p))
	}
	remoteAny, err := diffValue(op, remoteRequest)
	if err != nil {
		return fmt.Errorf("remote state: %w", err)
	}
	localAny, err := diffValue(op, local.Request)
	if err != nil {
		return fmt.Errorf("local request: %w", err)
	}
	localName := op.Name
	if opt.ParamsFile != "" {
		localName = opt.ParamsFile
	}
	diff, err := jsondiff.Diff(
		&jsondiff.Input{Name: remoteName, X: remoteAny},
		&jsondiff.Input{Name: localName, X: localAny},
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to diff: %w", err)
	}
	if diff == "" {
		slog.InfoContext(ctx, "no differences found", "operation", op.Name, "remote", remoteName)
		return nil
	}
	fmt.Fprint(app.stdout, coloredDiff(diff))
	if opt.ExitCode {
		return ErrDiff
	}
	return nil
}

func diffValue(op *OperationDescriptor, request map[string]any) (any, error) {
	if request == nil {
		return nil, nil
	}
	bs, err := renderRequest(op, request, "json")
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(bs, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type currentState struct {
	name     string
	tree     *BuiltNode
	response map[string]any
}

// fetchCurrent reads the remote state of the resource op acts on and lays it
// out on op's request schema. It returns nil when the resource does not exist.
func fetchCurrent(ctx context.Context, inv *Invoker, catalog *Catalog, op *OperationDescriptor, params *ParameterSet) (*currentState, error) {
	link := op.Current
	if link == nil {
		return nil, fmt.Errorf("operation %s cannot read the current state of its resource", op.Name)
	}
	reader, err := catalog.Get(link.Operation)
	if err != nil {
		return nil, err
	}
	tree, _ := Build(op.Request, params, func(o *BuildOptions) {
		o.AliasConflict = ConflictLastWins
	})
	bound := NewBoundInputs(op.Request, tree)
	readParams := NewParameterSet()
	var names []string
	for _, param := range sortedKeys(link.Inputs) {
		v, _ := bound.Lookup(link.Inputs[param])
		if v == nil {
			return nil, &FieldError{Kind: ErrMissingRequired, Path: link.Inputs[param], Detail: "needed to read the current state"}
		}
		readParams.Add(param, v)
		names = append(names, fmt.Sprintf("%s=%v", param, v))
	}
	whole := WholeResponse()
	res, err := inv.Invoke(ctx, InvokeInput{Operation: reader, Params: readParams, Selector: &whole})
	if err != nil {
		var nfe *types.ResourceNotFoundException
		if errors.As(err, &nfe) {
			return nil, nil
		}
		return nil, err
	}
	current, _ := Build(op.Request, reshapeResponse(op, link, res.Response), func(o *BuildOptions) {
		o.AliasConflict = ConflictLastWins
	})
	return &currentState{
		name:     reader.Name + ";" + strings.Join(names, ","),
		tree:     current,
		response: res.Response,
	}, nil
}

// reshapeResponse turns a read response into flat parameters of op. Leaves
// whose response field has another name are mapped through link.Fields.
func reshapeResponse(op *OperationDescriptor, link *LinkSpec, response map[string]any) *ParameterSet {
	params := NewParameterSet()
	for _, leaf := range op.Request.Leaves() {
		source := leaf.Name()
		if f, ok := link.Fields[source]; ok {
			source = f
		}
		v, ok := lookupPath(response, source)
		if !ok || v == nil {
			continue
		}
		params.Add(leaf.Name(), v)
	}
	return params
}
