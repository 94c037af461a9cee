package acctl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
)

type DescribeOption struct {
	Operation string `arg:"" help:"Operation name"`
	Format    string `help:"output format (text, json)" default:"text" enum:"text,json"`
}

type OperationsOption struct{}

type fieldDescription struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Type        string   `json:"type,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Default     any      `json:"default,omitempty"`
	Description string   `json:"description,omitempty"`
}

type operationDescription struct {
	Name        string             `json:"name"`
	Target      string             `json:"target"`
	Description string             `json:"description,omitempty"`
	Mutating    bool               `json:"mutating"`
	Select      string             `json:"select"`
	Parameters  []fieldDescription `json:"parameters"`
	Response    []string           `json:"response,omitempty"`
	Current     string             `json:"current,omitempty"`
	Wait        string             `json:"wait,omitempty"`
}

func describeOperation(op *OperationDescriptor) operationDescription {
	d := operationDescription{
		Name:        op.Name,
		Target:      op.Target,
		Description: op.Description,
		Mutating:    op.Mutating,
		Select:      op.DefaultSelector.String(),
		Response:    op.ResponseFields,
	}
	for _, leaf := range op.Request.Leaves() {
		d.Parameters = append(d.Parameters, fieldDescription{
			Name:        leaf.Name(),
			Kind:        leaf.Kind.String(),
			Type:        string(leaf.Type),
			Required:    leaf.Required,
			Aliases:     leaf.Aliases,
			Default:     leaf.Default,
			Description: leaf.Description,
		})
	}
	if op.Current != nil {
		d.Current = op.Current.Operation
	}
	if op.Wait != nil {
		d.Wait = op.Wait.Operation
	}
	return d
}

// Describe prints the parameters an operation accepts.
func (app *App) Describe(ctx context.Context, opt *DescribeOption) error {
	op, err := app.catalog.Get(opt.Operation)
	if err != nil {
		return err
	}
	d := describeOperation(op)
	if opt.Format == "json" {
		bs, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(app.stdout, string(bs))
		return nil
	}
	fmt.Fprintf(app.stdout, "%s (target %s, select %s)\n", d.Name, d.Target, d.Select)
	if d.Description != "" {
		fmt.Fprintf(app.stdout, "  %s\n", d.Description)
	}
	fmt.Fprintln(app.stdout)
	w := tabwriter.NewWriter(app.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PARAMETER\tKIND\tREQUIRED\tALIASES\tDEFAULT")
	for _, p := range d.Parameters {
		kind := p.Kind
		if p.Type != "" {
			kind += "<" + p.Type + ">"
		}
		required := ""
		if p.Required {
			required = "yes"
		}
		def := ""
		if p.Default != nil {
			def = fmt.Sprint(p.Default)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Name, kind, required, strings.Join(p.Aliases, ","), def)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(d.Response) > 0 {
		fmt.Fprintf(app.stdout, "\nresponse: %s\n", strings.Join(d.Response, ", "))
	}
	return nil
}

// Operations lists the known operations.
func (app *App) Operations(ctx context.Context, _ *OperationsOption) error {
	w := tabwriter.NewWriter(app.stdout, 0, 4, 2, ' ', 0)
	for _, op := range app.catalog.Operations() {
		mark := ""
		if op.Mutating {
			mark = "*"
		}
		fmt.Fprintf(w, "%s%s\t%s\n", op.Name, mark, op.Description)
	}
	return w.Flush()
}
