package acctl

import (
	"context"
	"fmt"
)

type RenderOption struct {
	ParamsOption `embed:""`

	Format string `help:"output format (json, jsonnet)" default:"json" enum:"json,jsonnet"`
}

// Render prints the request an operation would send, without sending it.
func (app *App) Render(ctx context.Context, opt *RenderOption) error {
	op, params, inv, err := app.prepare(ctx, &opt.ParamsOption, 0)
	if err != nil {
		return err
	}
	res, err := inv.Invoke(ctx, InvokeInput{Operation: op, Params: params, DryRun: true})
	if err != nil {
		return err
	}
	output, err := renderRequest(op, res.Request, opt.Format)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.stdout, string(output))
	return nil
}

// renderRequest encodes a built request in the lowerCamel file form. Keys
// of map fields are user data and are kept as is.
func renderRequest(op *OperationDescriptor, request map[string]any, format string) ([]byte, error) {
	output, err := marshalJSON(request, func(opts *marshalJSONOptions) {
		opts.indent = "  "
		opts.ignoreLowerCamelPaths = append(opts.ignoreLowerCamelPaths, mapKeyPaths(op.Request.MapPaths())...)
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	switch format {
	case "json":
		return output, nil
	case "jsonnet":
		output, err = jsonToJsonnet(output, op.Name+".jsonnet")
		if err != nil {
			return nil, fmt.Errorf("convert to jsonnet: %w", err)
		}
		return output, nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
