package acctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// State is a step of one invocation.
type State int

const (
	StateValidating State = iota
	StateBuilding
	StateInvoking
	StateProjecting
	StateSucceeded
	StateFailed
)

var stateNames = []string{"Validating", "Building", "Invoking", "Projecting", "Succeeded", "Failed"}

func (s State) String() string {
	if int(s) < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// MissingRequiredPolicy decides whether unbound required fields stop an
// invocation before the remote call.
type MissingRequiredPolicy int

const (
	MissingRequiredFail MissingRequiredPolicy = iota
	MissingRequiredWarn
)

func ParseMissingRequiredPolicy(s string) (MissingRequiredPolicy, error) {
	switch strings.ToLower(s) {
	case "", "fail":
		return MissingRequiredFail, nil
	case "warn":
		return MissingRequiredWarn, nil
	}
	return 0, fmt.Errorf("unknown missing required policy %q", s)
}

// Caller performs the remote operation named by op with the built request.
type Caller interface {
	Call(ctx context.Context, op *OperationDescriptor, request map[string]any) (map[string]any, error)
}

type CallerFunc func(ctx context.Context, op *OperationDescriptor, request map[string]any) (map[string]any, error)

func (f CallerFunc) Call(ctx context.Context, op *OperationDescriptor, request map[string]any) (map[string]any, error) {
	return f(ctx, op, request)
}

type Invoker struct {
	Caller          Caller
	MissingRequired MissingRequiredPolicy
	AliasConflict   AliasConflictPolicy
	// Timeout bounds the remote call only. Zero means no timeout.
	Timeout time.Duration
}

type InvokeInput struct {
	Operation *OperationDescriptor
	Params    *ParameterSet
	// Selector overrides the operation default when set.
	Selector *Selector
	// DryRun stops after the request is built.
	DryRun bool
}

type Result struct {
	Operation string
	State     State
	// FailedIn is the state the invocation failed in.
	FailedIn State
	Tree     *BuiltNode
	Request  map[string]any
	Response map[string]any
	Value    any
	Err      error
}

func (r *Result) Succeeded() bool {
	return r.State == StateSucceeded
}

// Invoke runs one invocation. The returned error is the same as Result.Err;
// the Result is always non-nil so callers can inspect how far it got.
func (inv *Invoker) Invoke(ctx context.Context, in InvokeInput) (*Result, error) {
	op := in.Operation
	if op == nil {
		return nil, errors.New("no operation given")
	}
	res := &Result{Operation: op.Name}
	fail := func(err error) (*Result, error) {
		res.FailedIn = res.State
		res.State = StateFailed
		res.Err = err
		slog.DebugContext(ctx, "invocation failed", "operation", op.Name, "state", res.FailedIn.String(), "error", err)
		return res, err
	}
	optFn := func(o *BuildOptions) {
		o.AliasConflict = inv.AliasConflict
	}

	res.State = StateValidating
	slog.DebugContext(ctx, "validating parameters", "operation", op.Name, "count", in.Params.Len())
	errs := Validate(op.Request, in.Params, optFn)
	if inv.MissingRequired == MissingRequiredWarn {
		for _, e := range errs.Filter(ErrMissingRequired) {
			slog.WarnContext(ctx, "required parameter is not set", "operation", op.Name, "path", e.Path)
		}
		errs = errs.Without(ErrMissingRequired)
	}
	if err := errs.Err(); err != nil {
		return fail(err)
	}
	sel := op.DefaultSelector
	if in.Selector != nil {
		sel = *in.Selector
	}
	if err := checkSelector(op, sel); err != nil {
		return fail(err)
	}

	res.State = StateBuilding
	tree, _ := Build(op.Request, in.Params, optFn)
	res.Tree = tree
	res.Request = tree.Request()
	slog.DebugContext(ctx, "request built", "operation", op.Name, "fields", len(tree.BoundLeaves()))
	if in.DryRun {
		res.State = StateSucceeded
		return res, nil
	}

	res.State = StateInvoking
	if inv.Caller == nil {
		return fail(errors.New("no caller configured"))
	}
	resp, err := inv.call(ctx, op, res.Request)
	if err != nil {
		return fail(err)
	}
	res.Response = resp

	res.State = StateProjecting
	v, err := Project(resp, NewBoundInputs(op.Request, tree), sel, op.ResponseFields)
	if err != nil {
		return fail(err)
	}
	res.Value = v
	res.State = StateSucceeded
	slog.DebugContext(ctx, "invocation succeeded", "operation", op.Name, "selector", sel.String())
	return res, nil
}

func (inv *Invoker) call(ctx context.Context, op *OperationDescriptor, request map[string]any) (map[string]any, error) {
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}
	slog.DebugContext(ctx, "calling remote operation", "operation", op.Name, "target", op.Target)
	resp, err := inv.Caller.Call(ctx, op, request)
	if err != nil {
		// requests the caller could not translate never left the process
		var fe *FieldError
		if errors.As(err, &fe) || errors.Is(err, ErrOperationNotFound) {
			return nil, err
		}
		return nil, newRemoteFault(op.Name, err)
	}
	if resp == nil {
		resp = map[string]any{}
	}
	return resp, nil
}

// checkSelector rejects selectors that can never match before anything is
// sent. Field selectors of operations without declared fields are checked
// against the response instead.
func checkSelector(op *OperationDescriptor, sel Selector) error {
	switch sel.Kind {
	case SelectEchoInput:
		if _, ok := op.Request.Resolve(sel.Name); !ok {
			return &FieldError{Kind: ErrInvalidSelector, Name: sel.String(), Detail: "no such input parameter"}
		}
	case SelectField:
		if len(op.ResponseFields) == 0 {
			return nil
		}
		if _, ok := matchResponseField(sel.Name, nil, op.ResponseFields); !ok {
			return &FieldError{Kind: ErrInvalidSelector, Name: sel.String(), Detail: "no such response field"}
		}
	}
	return nil
}
