package acctl

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// FlatValue is one named input as supplied by a caller.
type FlatValue struct {
	Name  string
	Value any
}

// ParameterSet is an ordered set of flat values. Order matters: a later
// binding of the same name overrides an earlier one.
type ParameterSet struct {
	values []FlatValue
}

func NewParameterSet(values ...FlatValue) *ParameterSet {
	return &ParameterSet{values: append([]FlatValue(nil), values...)}
}

func (ps *ParameterSet) Add(name string, value any) {
	ps.values = append(ps.values, FlatValue{Name: name, Value: value})
}

// Merge appends the values of other after the values of ps.
func (ps *ParameterSet) Merge(other *ParameterSet) {
	if other == nil {
		return
	}
	ps.values = append(ps.values, other.values...)
}

func (ps *ParameterSet) Values() []FlatValue {
	if ps == nil {
		return nil
	}
	return append([]FlatValue(nil), ps.values...)
}

func (ps *ParameterSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.values)
}

// Names returns the bound names in binding order.
func (ps *ParameterSet) Names() []string {
	if ps == nil {
		return nil
	}
	names := make([]string, 0, len(ps.values))
	for _, v := range ps.values {
		names = append(names, v.Name)
	}
	return names
}

// Get returns the last value bound under name, compared case-insensitively.
func (ps *ParameterSet) Get(name string) (any, bool) {
	if ps == nil {
		return nil, false
	}
	for i := len(ps.values) - 1; i >= 0; i-- {
		if strings.EqualFold(ps.values[i].Name, name) {
			return ps.values[i].Value, true
		}
	}
	return nil, false
}

// ParseParamFlag parses NAME=VALUE. A value starting with '[' or '{' is
// decoded as JSON; anything else stays a string and is coerced later by the
// schema.
func ParseParamFlag(s string) (FlatValue, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return FlatValue{}, fmt.Errorf("invalid parameter %q: expected NAME=VALUE", s)
	}
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
			return FlatValue{}, fmt.Errorf("invalid parameter %s: %w", name, err)
		}
		return FlatValue{Name: name, Value: v}, nil
	}
	return FlatValue{Name: name, Value: value}, nil
}

func ParseParamFlags(flags []string) (*ParameterSet, error) {
	ps := NewParameterSet()
	for _, f := range flags {
		fv, err := ParseParamFlag(f)
		if err != nil {
			return nil, err
		}
		ps.values = append(ps.values, fv)
	}
	return ps, nil
}

// decodeParamsDocument reads a JSON or YAML object of flat names, keeping the
// key order of the document.
func decodeParamsDocument(bs []byte) (*ParameterSet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(bs, &doc); err != nil {
		return nil, err
	}
	ps := NewParameterSet()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return ps, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return ps, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("params document must be an object, got %s", nodeKindName(root.Kind))
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var v any
		if err := val.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key.Value, err)
		}
		ps.Add(key.Value, normalizeYAMLValue(v))
	}
	return ps, nil
}

// normalizeYAMLValue turns map[any]any produced for non-string keys into
// map[string]any so values look like decoded JSON.
func normalizeYAMLValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = normalizeYAMLValue(e)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = normalizeYAMLValue(e)
		}
		return m
	case []any:
		for i, e := range v {
			v[i] = normalizeYAMLValue(e)
		}
		return v
	default:
		return v
	}
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "array"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

// Expand flattens object values given for object paths of schema, so
// {"NetworkConfiguration": {"NetworkMode": "VPC"}} binds
// NetworkConfiguration.NetworkMode. Other values are kept as given.
func (ps *ParameterSet) Expand(schema *Schema) *ParameterSet {
	out := NewParameterSet()
	for _, fv := range ps.Values() {
		out.values = append(out.values, expandFlatValue(schema, fv)...)
	}
	return out
}

func expandFlatValue(schema *Schema, fv FlatValue) []FlatValue {
	m, ok := fv.Value.(map[string]any)
	if !ok {
		return []FlatValue{fv}
	}
	node, ok := schema.resolveObject(fv.Name)
	if !ok {
		return []FlatValue{fv}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var out []FlatValue
	for _, k := range keys {
		out = append(out, expandFlatValue(schema, FlatValue{Name: node.Name() + "." + k, Value: m[k]})...)
	}
	return out
}
