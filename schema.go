package acctl

import (
	"fmt"
	"strings"
)

// Kind is the shape of a schema node.
type Kind int

const (
	KindScalar Kind = iota
	KindList
	KindMap
	KindObject
)

var kindNames = []string{"scalar", "list", "map", "object"}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a kind name. The empty string means scalar.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindScalar, nil
	}
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// ValueType is the declared type of scalar values and list elements.
// The zero value accepts anything.
type ValueType string

const (
	TypeAny     ValueType = ""
	TypeString  ValueType = "string"
	TypeInteger ValueType = "integer"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "boolean"
)

func (t ValueType) valid() bool {
	switch t {
	case TypeAny, TypeString, TypeInteger, TypeNumber, TypeBoolean:
		return true
	}
	return false
}

// FieldSpec declares one bindable field of a request schema.
type FieldSpec struct {
	Path        string    `yaml:"path" json:"path"`
	Kind        string    `yaml:"kind,omitempty" json:"kind,omitempty"`
	Type        ValueType `yaml:"type,omitempty" json:"type,omitempty"`
	Required    bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Aliases     []string  `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Default     any       `yaml:"default,omitempty" json:"default,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
}

// SchemaNode is one node of a request tree. Object nodes are implied by the
// paths of their descendants.
type SchemaNode struct {
	Path        []string
	Kind        Kind
	Type        ValueType
	Required    bool
	Aliases     []string
	Default     any
	Description string
	Children    []*SchemaNode
}

// Name returns the canonical flat name, the dotted path.
func (n *SchemaNode) Name() string {
	return strings.Join(n.Path, ".")
}

// Key returns the last path element.
func (n *SchemaNode) Key() string {
	if len(n.Path) == 0 {
		return ""
	}
	return n.Path[len(n.Path)-1]
}

func (n *SchemaNode) IsLeaf() bool {
	return n.Kind != KindObject
}

func (n *SchemaNode) HasDefault() bool {
	return n.Default != nil
}

// Schema is the request tree of one operation. It is immutable once built and
// safe for concurrent use.
type Schema struct {
	root     *SchemaNode
	byPath   map[string]*SchemaNode
	byName   map[string]*SchemaNode
	leaves   []*SchemaNode
	required []*SchemaNode
	// lowercased path -> declared spelling
	folded map[string]string
}

// NewSchema builds a schema from leaf declarations. Intermediate object nodes
// are created from path prefixes in declaration order.
func NewSchema(fields []FieldSpec) (*Schema, error) {
	s := &Schema{
		root:   &SchemaNode{Kind: KindObject},
		byPath: make(map[string]*SchemaNode),
		byName: make(map[string]*SchemaNode),
		folded: make(map[string]string),
	}
	for _, f := range fields {
		if err := s.add(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Schema) add(f FieldSpec) error {
	path := strings.Split(f.Path, ".")
	for _, p := range path {
		if p == "" {
			return fmt.Errorf("field %q: empty path element", f.Path)
		}
	}
	kind, err := ParseKind(f.Kind)
	if err != nil {
		return fmt.Errorf("field %s: %w", f.Path, err)
	}
	if kind == KindObject {
		return fmt.Errorf("field %s: object nodes are implied by their fields", f.Path)
	}
	if !f.Type.valid() {
		return fmt.Errorf("field %s: unknown type %q", f.Path, f.Type)
	}
	if f.Type != TypeAny && kind == KindMap {
		return fmt.Errorf("field %s: type is not allowed on map fields", f.Path)
	}

	parent := s.root
	for i := 1; i < len(path); i++ {
		prefix := strings.Join(path[:i], ".")
		if err := s.checkFolded(f.Path, prefix); err != nil {
			return err
		}
		node, ok := s.byPath[prefix]
		if !ok {
			node = &SchemaNode{Path: path[:i:i], Kind: KindObject}
			s.byPath[prefix] = node
			parent.Children = append(parent.Children, node)
		} else if node.IsLeaf() {
			return fmt.Errorf("field %s: %s is a %s field and cannot have children", f.Path, prefix, node.Kind)
		}
		parent = node
	}
	if err := s.checkFolded(f.Path, f.Path); err != nil {
		return err
	}
	if existing, ok := s.byPath[f.Path]; ok {
		if existing.IsLeaf() {
			return fmt.Errorf("field %s: declared twice", f.Path)
		}
		return fmt.Errorf("field %s: already used as an object", f.Path)
	}

	leaf := &SchemaNode{
		Path:        path,
		Kind:        kind,
		Type:        f.Type,
		Required:    f.Required,
		Aliases:     append([]string(nil), f.Aliases...),
		Default:     f.Default,
		Description: f.Description,
	}
	if leaf.HasDefault() {
		if _, err := coerceValue(leaf, leaf.Default); err != nil {
			return fmt.Errorf("field %s: default: %w", f.Path, err)
		}
	}
	for _, name := range append([]string{f.Path}, f.Aliases...) {
		key := strings.ToLower(name)
		if other, ok := s.byName[key]; ok {
			return fmt.Errorf("field %s: name %q is already used by %s", f.Path, name, other.Name())
		}
		s.byName[key] = leaf
	}
	s.byPath[f.Path] = leaf
	parent.Children = append(parent.Children, leaf)
	s.leaves = append(s.leaves, leaf)
	if leaf.Required {
		s.required = append(s.required, leaf)
	}
	return nil
}

// checkFolded registers path and rejects it when another path differs from it
// only by case.
func (s *Schema) checkFolded(field, path string) error {
	key := strings.ToLower(path)
	if declared, ok := s.folded[key]; ok && declared != path {
		return fmt.Errorf("field %s: %s differs only in case from %s", field, path, declared)
	}
	s.folded[key] = path
	return nil
}

// Resolve returns the leaf a canonical name or alias binds to.
// Names are matched case-insensitively.
func (s *Schema) Resolve(flatName string) (*SchemaNode, bool) {
	n, ok := s.byName[strings.ToLower(flatName)]
	return n, ok
}

// resolveObject returns the object node at a case-insensitive path.
func (s *Schema) resolveObject(path string) (*SchemaNode, bool) {
	if declared, ok := s.folded[strings.ToLower(path)]; ok {
		path = declared
	}
	n, ok := s.byPath[path]
	if !ok {
		return nil, false
	}
	return n, !n.IsLeaf()
}

// Lookup returns the node at the exact canonical path, objects included.
func (s *Schema) Lookup(path string) (*SchemaNode, bool) {
	n, ok := s.byPath[path]
	return n, ok
}

func (s *Schema) Root() *SchemaNode {
	return s.root
}

// Leaves returns the bindable nodes in declaration order.
func (s *Schema) Leaves() []*SchemaNode {
	return append([]*SchemaNode(nil), s.leaves...)
}

// RequiredFields returns the required nodes in declaration order.
func (s *Schema) RequiredFields() []*SchemaNode {
	return append([]*SchemaNode(nil), s.required...)
}

// MapPaths returns the canonical names of map fields. Keys below them are
// user data and must not be case-converted.
func (s *Schema) MapPaths() []string {
	var paths []string
	for _, n := range s.leaves {
		if n.Kind == KindMap {
			paths = append(paths, n.Name())
		}
	}
	return paths
}
