package acctl

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// AliasConflictPolicy decides what happens when two different flat names
// bind the same field with different values.
type AliasConflictPolicy int

const (
	ConflictReject AliasConflictPolicy = iota
	ConflictLastWins
)

func ParseAliasConflictPolicy(s string) (AliasConflictPolicy, error) {
	switch strings.ToLower(s) {
	case "", "reject":
		return ConflictReject, nil
	case "last-wins":
		return ConflictLastWins, nil
	}
	return 0, fmt.Errorf("unknown alias conflict policy %q", s)
}

type BuildOptions struct {
	AliasConflict AliasConflictPolicy
}

// BuiltNode is the built counterpart of a SchemaNode. Leaves hold a value,
// objects hold children. A node is empty when no leaf below it is bound.
type BuiltNode struct {
	Schema   *SchemaNode
	Value    any
	Bound    bool
	Source   string
	Children []*BuiltNode

	empty bool
}

func (n *BuiltNode) IsEmpty() bool {
	return n.empty
}

// Interface returns the emitted value: the leaf value, or a map of the
// non-empty children. Empty nodes yield nil and are left out by their parent.
func (n *BuiltNode) Interface() any {
	if n.empty {
		return nil
	}
	if n.Schema.IsLeaf() {
		return n.Value
	}
	m := make(map[string]any, len(n.Children))
	for _, c := range n.Children {
		if c.empty {
			continue
		}
		m[c.Schema.Key()] = c.Interface()
	}
	return m
}

// Request returns the pruned request object. It is never nil.
func (n *BuiltNode) Request() map[string]any {
	if m, ok := n.Interface().(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// Find returns the node at a canonical dotted path below n.
func (n *BuiltNode) Find(path string) *BuiltNode {
	cur := n
	for _, key := range strings.Split(path, ".") {
		var next *BuiltNode
		for _, c := range cur.Children {
			if c.Schema.Key() == key {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// BoundLeaves returns the leaves holding a value, in schema order.
func (n *BuiltNode) BoundLeaves() []*BuiltNode {
	if n.Schema.IsLeaf() {
		if n.Bound {
			return []*BuiltNode{n}
		}
		return nil
	}
	var leaves []*BuiltNode
	for _, c := range n.Children {
		leaves = append(leaves, c.BoundLeaves()...)
	}
	return leaves
}

type boundValue struct {
	name  string
	value any
}

// Validate resolves and coerces params against schema and reports every
// problem without building anything.
func Validate(schema *Schema, params *ParameterSet, optFns ...func(*BuildOptions)) ValidationErrors {
	_, errs := bindParams(schema, params, newBuildOptions(optFns))
	return errs
}

// Build constructs the request tree. The tree is always built, even when
// validation errors are returned, so callers can decide on a policy.
func Build(schema *Schema, params *ParameterSet, optFns ...func(*BuildOptions)) (*BuiltNode, ValidationErrors) {
	bindings, errs := bindParams(schema, params, newBuildOptions(optFns))
	return buildNode(schema.Root(), bindings), errs
}

func newBuildOptions(optFns []func(*BuildOptions)) BuildOptions {
	var opts BuildOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

func bindParams(schema *Schema, params *ParameterSet, opts BuildOptions) (map[*SchemaNode]boundValue, ValidationErrors) {
	bindings := make(map[*SchemaNode]boundValue)
	var errs ValidationErrors
	for _, fv := range params.Values() {
		node, ok := schema.Resolve(fv.Name)
		if !ok {
			errs = append(errs, &FieldError{Kind: ErrUnknownParameter, Name: fv.Name})
			continue
		}
		// null leaves the field unbound
		if fv.Value == nil {
			continue
		}
		v, err := coerceValue(node, fv.Value)
		if err != nil {
			errs = append(errs, &FieldError{Kind: ErrInvalidValue, Path: node.Name(), Name: fv.Name, Detail: err.Error()})
			continue
		}
		if prev, ok := bindings[node]; ok &&
			opts.AliasConflict == ConflictReject &&
			!strings.EqualFold(prev.name, fv.Name) &&
			!reflect.DeepEqual(prev.value, v) {
			errs = append(errs, &FieldError{
				Kind:   ErrAliasConflict,
				Path:   node.Name(),
				Name:   fv.Name,
				Detail: fmt.Sprintf("already bound as %s", prev.name),
			})
			continue
		}
		bindings[node] = boundValue{name: fv.Name, value: v}
	}
	for _, n := range schema.RequiredFields() {
		if _, ok := bindings[n]; ok || n.HasDefault() {
			continue
		}
		errs = append(errs, &FieldError{Kind: ErrMissingRequired, Path: n.Name()})
	}
	return bindings, errs
}

func buildNode(n *SchemaNode, bindings map[*SchemaNode]boundValue) *BuiltNode {
	built := &BuiltNode{Schema: n}
	if n.IsLeaf() {
		if b, ok := bindings[n]; ok {
			built.Value = b.value
			built.Bound = true
			built.Source = b.name
		} else if n.HasDefault() {
			// defaults were checked when the schema was built
			v, _ := coerceValue(n, n.Default)
			built.Value = v
			built.Bound = true
		}
		built.empty = !built.Bound
		return built
	}
	built.empty = true
	for _, c := range n.Children {
		child := buildNode(c, bindings)
		built.Children = append(built.Children, child)
		if !child.empty {
			built.empty = false
		}
	}
	return built
}

func coerceValue(n *SchemaNode, v any) (any, error) {
	switch n.Kind {
	case KindScalar:
		return coerceScalar(n.Type, v)
	case KindList:
		return coerceList(n.Type, v)
	case KindMap:
		return coerceMap(v)
	}
	return nil, fmt.Errorf("%s fields cannot be bound", n.Kind)
}

func coerceScalar(t ValueType, v any) (any, error) {
	if t == TypeAny {
		return v, nil
	}
	switch v.(type) {
	case []any, []string, map[string]any, map[string]string:
		return nil, errors.New("expected a single value")
	}
	switch t {
	case TypeString:
		switch v := v.(type) {
		case string:
			return v, nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case bool, int, int32, int64:
			return fmt.Sprint(v), nil
		}
	case TypeInteger:
		switch v := v.(type) {
		case string:
			i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%q is not an integer", v)
			}
			return i, nil
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case int64:
			return v, nil
		case float64:
			if math.IsInf(v, 0) || v < math.MinInt64 || v >= math.MaxInt64 {
				return nil, fmt.Errorf("%v is out of range", v)
			}
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("%v is not an integer", v)
			}
			return int64(v), nil
		}
	case TypeNumber:
		switch v := v.(type) {
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("%q is not a number", v)
			}
			return f, nil
		case int:
			return float64(v), nil
		case int32:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case float64:
			return v, nil
		}
	case TypeBoolean:
		switch v := v.(type) {
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("%q is not a boolean", v)
			}
			return b, nil
		case bool:
			return v, nil
		}
	}
	return nil, fmt.Errorf("cannot use %T as %s", v, t)
}

func coerceList(t ValueType, v any) (any, error) {
	var items []any
	switch v := v.(type) {
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
	case []any:
		items = v
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	case map[string]any, map[string]string:
		return nil, errors.New("expected a list")
	default:
		items = []any{v}
	}
	out := make([]any, len(items))
	for i, item := range items {
		if t == TypeAny {
			out[i] = item
			continue
		}
		e, err := coerceScalar(t, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = e
	}
	return out, nil
}

func coerceMap(v any) (any, error) {
	out := make(map[string]any)
	switch v := v.(type) {
	case string:
		for _, pair := range strings.Split(v, ",") {
			if strings.TrimSpace(pair) == "" {
				continue
			}
			k, val, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid map entry %q: expected KEY=VALUE", pair)
			}
			out[strings.TrimSpace(k)] = strings.TrimSpace(val)
		}
	case map[string]any:
		for k, e := range v {
			out[k] = e
		}
	case map[string]string:
		for k, e := range v {
			out[k] = e
		}
	default:
		return nil, fmt.Errorf("expected a map, got %T", v)
	}
	return out, nil
}
