package acctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type InitOption struct {
	ParamsOption `embed:""`

	Format         string `help:"Output format. json, jsonnet or yaml" default:"jsonnet" enum:"json,jsonnet,yaml"`
	Output         string `short:"o" help:"Output file. defaults to <operation>.<format>"`
	ForceOverwrite bool   `help:"Overwrite existing files without prompting" default:"false"`
}

// Init writes a params file for an operation from the current remote state
// of its resource.
func (app *App) Init(ctx context.Context, opt *InitOption) error {
	op, params, inv, err := app.prepare(ctx, &opt.ParamsOption, 0)
	if err != nil {
		return err
	}
	current, err := fetchCurrent(ctx, inv, app.catalog, op, params)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("%s: the resource does not exist", op.Name)
	}
	slog.InfoContext(ctx, "fetched current state", "operation", op.Name, "from", current.name)
	values := flatValues(current.tree)
	bs, err := encodeParams(values, opt.Format, op.Name)
	if err != nil {
		return err
	}
	filename := opt.Output
	if filename == "" {
		filename = op.Name + "." + opt.Format
	}
	slog.InfoContext(ctx, "creating params file", "file", filename, "params", len(values))
	if err := app.saveFile(ctx, filename, bs, os.FileMode(0644), opt.ForceOverwrite); err != nil {
		return fmt.Errorf("saveFile: %w", err)
	}
	return nil
}

// flatValues lists the bound leaves of tree under their canonical names.
func flatValues(tree *BuiltNode) []FlatValue {
	leaves := tree.BoundLeaves()
	values := make([]FlatValue, 0, len(leaves))
	for _, leaf := range leaves {
		values = append(values, FlatValue{Name: leaf.Schema.Name(), Value: leaf.Value})
	}
	return values
}

// encodeParams writes flat values as a params document, keeping their order.
func encodeParams(values []FlatValue, format, name string) ([]byte, error) {
	if format == "yaml" {
		doc := &yaml.Node{Kind: yaml.MappingNode}
		for _, v := range values {
			var node yaml.Node
			if err := node.Encode(v.Value); err != nil {
				return nil, fmt.Errorf("encode %s: %w", v.Name, err)
			}
			doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: v.Name}, &node)
		}
		return yaml.Marshal(doc)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(v.Name)
		if err != nil {
			return nil, err
		}
		e, err := json.Marshal(v.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", v.Name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(e)
	}
	buf.WriteByte('}')
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	switch format {
	case "json":
		out.WriteByte('\n')
		return out.Bytes(), nil
	case "jsonnet":
		return jsonToJsonnet(out.Bytes(), name+".jsonnet")
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
