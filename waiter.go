package acctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

var ErrWaitTimeout = errors.New("waiter: deadline exceeded")

type Waiter struct {
	MaxDuration   time.Duration
	CheckInterval time.Duration
	LogInterval   time.Duration
	LogMessage    string
	LogAttributes []any
	// Checker reports extra log attributes and whether waiting is done.
	Checker func(context.Context) ([]any, bool, error)
}

func (w *Waiter) Wait(ctx context.Context) error {
	if w.LogMessage == "" {
		return errors.New("waiter: LogMessage is required")
	}
	if w.Checker == nil {
		return errors.New("waiter: Checker is required")
	}
	if w.MaxDuration == 0 {
		w.MaxDuration = 30 * time.Minute
	}
	if w.CheckInterval == 0 {
		w.CheckInterval = 5 * time.Second
	}
	if w.LogInterval == 0 {
		w.LogInterval = 1 * time.Minute
	}
	if w.LogInterval < w.CheckInterval {
		w.LogInterval = w.CheckInterval
	}
	deadlineCtx, cancel := context.WithTimeout(ctx, w.MaxDuration)
	defer cancel()
	ticker := time.NewTicker(w.CheckInterval)
	defer ticker.Stop()
	logTicker := time.NewTicker(w.LogInterval)
	defer logTicker.Stop()
	currentAttrs := append([]any{}, w.LogAttributes...)
	for {
		select {
		case <-deadlineCtx.Done():
			if err := ctx.Err(); err != nil {
				return err
			}
			return ErrWaitTimeout
		case <-ticker.C:
			attrs, done, err := w.Checker(deadlineCtx)
			if err != nil {
				return err
			}
			if len(attrs) > 0 {
				currentAttrs = append([]any{}, w.LogAttributes...)
				currentAttrs = append(currentAttrs, attrs...)
			}
			if done {
				return nil
			}
		case <-logTicker.C:
			slog.InfoContext(ctx, w.LogMessage, currentAttrs...)
		}
	}
}

// waitInputs resolves the parameters of the wait operation from the
// response of res, falling back to the inputs it was called with.
func waitInputs(op *OperationDescriptor, link *LinkSpec, res *Result) (*ParameterSet, error) {
	bound := NewBoundInputs(op.Request, res.Tree)
	params := NewParameterSet()
	for _, param := range sortedKeys(link.Inputs) {
		source := link.Inputs[param]
		if v, ok := lookupPath(res.Response, source); ok && v != nil {
			params.Add(param, v)
			continue
		}
		if v, _ := bound.Lookup(source); v != nil {
			params.Add(param, v)
			continue
		}
		return nil, fmt.Errorf("wait for %s: no value for %s (from %s)", op.Name, param, source)
	}
	return params, nil
}

// newStatusWaiter polls the wait operation of op until its status is ready
// or failed.
func newStatusWaiter(inv *Invoker, catalog *Catalog, op *OperationDescriptor, res *Result, maxDuration, interval time.Duration) (*Waiter, error) {
	spec := op.Wait
	if spec == nil {
		return nil, fmt.Errorf("operation %s has nothing to wait for", op.Name)
	}
	target, err := catalog.Get(spec.Operation)
	if err != nil {
		return nil, err
	}
	params, err := waitInputs(op, &spec.LinkSpec, res)
	if err != nil {
		return nil, err
	}
	sel := FieldSelector(spec.Status)
	start := time.Now()
	return &Waiter{
		MaxDuration:   maxDuration,
		CheckInterval: interval,
		LogMessage:    fmt.Sprintf("waiting for %s", op.Name),
		LogAttributes: []any{"operation", target.Name},
		Checker: func(ctx context.Context) ([]any, bool, error) {
			r, err := inv.Invoke(ctx, InvokeInput{Operation: target, Params: params, Selector: &sel})
			if err != nil {
				return nil, false, err
			}
			status := fmt.Sprint(r.Value)
			attrs := []any{"status", status, "elapsed", time.Since(start).Round(time.Second).String()}
			switch {
			case slices.Contains(spec.Ready, status):
				slog.InfoContext(ctx, "resource is ready", append([]any{"operation", op.Name}, attrs...)...)
				return attrs, true, nil
			case slices.Contains(spec.Failed, status):
				return attrs, true, fmt.Errorf("%s reached status %s", op.Name, status)
			}
			slog.DebugContext(ctx, "resource is not ready yet", attrs...)
			return attrs, false, nil
		},
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
