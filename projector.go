package acctl

import (
	"fmt"
	"strings"
)

type SelectorKind int

const (
	SelectWholeResponse SelectorKind = iota
	SelectField
	SelectEchoInput
)

// Selector chooses the value an operation returns. The zero value selects
// the whole response.
type Selector struct {
	Kind SelectorKind
	Name string
}

func WholeResponse() Selector {
	return Selector{Kind: SelectWholeResponse}
}

func FieldSelector(name string) Selector {
	return Selector{Kind: SelectField, Name: name}
}

func EchoInput(name string) Selector {
	return Selector{Kind: SelectEchoInput, Name: name}
}

// ParseSelector parses "*", "Field" and "^Input".
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "*":
		return WholeResponse(), nil
	case strings.HasPrefix(s, "^"):
		name := strings.TrimSpace(s[1:])
		if name == "" {
			return Selector{}, &FieldError{Kind: ErrInvalidSelector, Name: s, Detail: "echo selector needs a parameter name"}
		}
		return EchoInput(name), nil
	case s == "":
		return Selector{}, &FieldError{Kind: ErrInvalidSelector, Detail: "empty selector"}
	}
	return FieldSelector(s), nil
}

func (s Selector) String() string {
	switch s.Kind {
	case SelectField:
		return s.Name
	case SelectEchoInput:
		return "^" + s.Name
	}
	return "*"
}

func (s *Selector) UnmarshalText(text []byte) error {
	sel, err := ParseSelector(string(text))
	if err != nil {
		return err
	}
	*s = sel
	return nil
}

func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// BoundInputs are the values an invocation bound, addressable by any name
// the schema accepts for them.
type BoundInputs struct {
	schema *Schema
	values map[*SchemaNode]any
}

func NewBoundInputs(schema *Schema, tree *BuiltNode) *BoundInputs {
	b := &BoundInputs{schema: schema, values: make(map[*SchemaNode]any)}
	if tree == nil {
		return b
	}
	for _, leaf := range tree.BoundLeaves() {
		b.values[leaf.Schema] = leaf.Value
	}
	return b
}

// Lookup returns the bound value of name. declared is false when the schema
// has no field of that name.
func (b *BoundInputs) Lookup(name string) (value any, declared bool) {
	if b == nil || b.schema == nil {
		return nil, false
	}
	node, ok := b.schema.Resolve(name)
	if !ok {
		return nil, false
	}
	return b.values[node], true
}

// Project applies sel to response. responseFields lists the top level fields
// the operation declares; when it is empty the response itself is the
// reference for field selectors.
func Project(response map[string]any, bound *BoundInputs, sel Selector, responseFields []string) (any, error) {
	switch sel.Kind {
	case SelectWholeResponse:
		return response, nil
	case SelectEchoInput:
		v, declared := bound.Lookup(sel.Name)
		if !declared {
			return nil, &FieldError{Kind: ErrInvalidSelector, Name: sel.String(), Detail: "no such input parameter"}
		}
		return v, nil
	case SelectField:
		key, ok := matchResponseField(sel.Name, response, responseFields)
		if !ok {
			return nil, &FieldError{Kind: ErrInvalidSelector, Name: sel.String(), Detail: "no such response field"}
		}
		return response[key], nil
	}
	return nil, &FieldError{Kind: ErrInvalidSelector, Detail: fmt.Sprintf("unknown selector kind %d", sel.Kind)}
}

func matchResponseField(name string, response map[string]any, responseFields []string) (string, bool) {
	if len(responseFields) > 0 {
		for _, f := range responseFields {
			if strings.EqualFold(f, name) {
				return f, true
			}
		}
		return "", false
	}
	if _, ok := response[name]; ok {
		return name, true
	}
	for k := range response {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}
	return "", false
}
