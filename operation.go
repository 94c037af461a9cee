package acctl

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed models/*.yaml
var modelFS embed.FS

//go:embed models/operation.schema.json
var operationSchemaJSON []byte

// OperationModel is the content of one model file.
type OperationModel struct {
	Operations []OperationSpec `yaml:"operations" json:"operations"`
}

type OperationSpec struct {
	Name        string      `yaml:"name" json:"name"`
	Target      string      `yaml:"target,omitempty" json:"target,omitempty"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Mutating    bool        `yaml:"mutating,omitempty" json:"mutating,omitempty"`
	Select      string      `yaml:"select,omitempty" json:"select,omitempty"`
	Request     []FieldSpec `yaml:"request" json:"request"`
	Response    []string    `yaml:"response,omitempty" json:"response,omitempty"`
	Current     *LinkSpec   `yaml:"current,omitempty" json:"current,omitempty"`
	Wait        *WaitSpec   `yaml:"wait,omitempty" json:"wait,omitempty"`
}

// LinkSpec points at another operation. Inputs maps parameters of the linked
// operation to names whose values are taken from the first operation.
// Fields maps request paths to response paths where their names differ.
type LinkSpec struct {
	Operation string            `yaml:"operation" json:"operation"`
	Inputs    map[string]string `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Fields    map[string]string `yaml:"fields,omitempty" json:"fields,omitempty"`
}

type WaitSpec struct {
	LinkSpec `yaml:",inline"`
	Status   string   `yaml:"status" json:"status"`
	Ready    []string `yaml:"ready" json:"ready"`
	Failed   []string `yaml:"failed,omitempty" json:"failed,omitempty"`
}

// OperationDescriptor is a loaded operation. It is read-only and shared by
// all invocations.
type OperationDescriptor struct {
	Name            string
	Target          string
	Description     string
	Mutating        bool
	Request         *Schema
	ResponseFields  []string
	DefaultSelector Selector
	Current         *LinkSpec
	Wait            *WaitSpec
}

func newOperationDescriptor(spec OperationSpec) (*OperationDescriptor, error) {
	schema, err := NewSchema(spec.Request)
	if err != nil {
		return nil, fmt.Errorf("operation %s: %w", spec.Name, err)
	}
	sel := WholeResponse()
	if spec.Select != "" {
		if sel, err = ParseSelector(spec.Select); err != nil {
			return nil, fmt.Errorf("operation %s: %w", spec.Name, err)
		}
	}
	desc := &OperationDescriptor{
		Name:            spec.Name,
		Target:          spec.Target,
		Description:     spec.Description,
		Mutating:        spec.Mutating,
		Request:         schema,
		ResponseFields:  slices.Clone(spec.Response),
		DefaultSelector: sel,
		Current:         spec.Current,
		Wait:            spec.Wait,
	}
	if desc.Target == "" {
		desc.Target = desc.Name
	}
	if err := checkSelector(desc, sel); err != nil {
		return nil, fmt.Errorf("operation %s: default selector: %w", spec.Name, err)
	}
	return desc, nil
}

// Catalog holds the known operations by case-insensitive name.
type Catalog struct {
	ops map[string]*OperationDescriptor
}

func NewCatalog() *Catalog {
	return &Catalog{ops: make(map[string]*OperationDescriptor)}
}

// LoadCatalog loads the embedded models, then the given model files. Later
// definitions of an operation replace earlier ones.
func LoadCatalog(files ...string) (*Catalog, error) {
	c := NewCatalog()
	entries, err := fs.Glob(modelFS, "models/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, name := range entries {
		bs, err := modelFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if err := c.LoadModel(path.Base(name), bs); err != nil {
			return nil, err
		}
	}
	for _, file := range files {
		bs, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read model file %s: %w", file, err)
		}
		if err := c.LoadModel(filepath.Base(file), bs); err != nil {
			return nil, err
		}
	}
	if err := c.verify(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadModel validates one model document and adds its operations.
func (c *Catalog) LoadModel(name string, bs []byte) error {
	if err := validateModel(bs); err != nil {
		return fmt.Errorf("model %s: %w", name, err)
	}
	var model OperationModel
	if err := yaml.Unmarshal(bs, &model); err != nil {
		return fmt.Errorf("model %s: %w", name, err)
	}
	for _, spec := range model.Operations {
		desc, err := newOperationDescriptor(spec)
		if err != nil {
			return fmt.Errorf("model %s: %w", name, err)
		}
		c.ops[strings.ToLower(desc.Name)] = desc
	}
	return nil
}

func (c *Catalog) Get(name string) (*OperationDescriptor, error) {
	desc, ok := c.ops[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOperationNotFound, name)
	}
	return desc, nil
}

// Names returns the operation names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.ops))
	for _, desc := range c.ops {
		names = append(names, desc.Name)
	}
	slices.Sort(names)
	return names
}

func (c *Catalog) Operations() []*OperationDescriptor {
	ops := make([]*OperationDescriptor, 0, len(c.ops))
	for _, name := range c.Names() {
		ops = append(ops, c.ops[strings.ToLower(name)])
	}
	return ops
}

// verify checks that links point at known operations and bind parameters
// those operations accept.
func (c *Catalog) verify() error {
	var errs []error
	checkLink := func(desc *OperationDescriptor, kind string, link *LinkSpec) {
		target, err := c.Get(link.Operation)
		if err != nil {
			errs = append(errs, fmt.Errorf("operation %s: %s: %w", desc.Name, kind, err))
			return
		}
		for param := range link.Inputs {
			if _, ok := target.Request.Resolve(param); !ok {
				errs = append(errs, fmt.Errorf("operation %s: %s: %s has no parameter %s", desc.Name, kind, target.Name, param))
			}
		}
	}
	for _, desc := range c.Operations() {
		if desc.Current != nil {
			checkLink(desc, "current", desc.Current)
		}
		if desc.Wait != nil {
			checkLink(desc, "wait", &desc.Wait.LinkSpec)
		}
	}
	return errors.Join(errs...)
}

var (
	modelSchemaOnce sync.Once
	modelSchema     *jsonschema.Schema
	modelSchemaErr  error
	modelPrinter    = message.NewPrinter(language.English)
)

const modelSchemaURL = "https://github.com/mashiike/acctl/models/operation.schema.json"

func compileModelSchema() (*jsonschema.Schema, error) {
	modelSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(operationSchemaJSON))
		if err != nil {
			modelSchemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(modelSchemaURL, doc); err != nil {
			modelSchemaErr = err
			return
		}
		modelSchema, modelSchemaErr = compiler.Compile(modelSchemaURL)
	})
	return modelSchema, modelSchemaErr
}

func validateModel(bs []byte) error {
	schema, err := compileModelSchema()
	if err != nil {
		return fmt.Errorf("failed to compile model schema: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(bs, &doc); err != nil {
		return err
	}
	js, err := json.Marshal(normalizeYAMLValue(doc))
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return err
	}
	err = schema.Validate(inst)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	return fmt.Errorf("invalid model: %s", strings.Join(validationCauses(verr), "; "))
}

func validationCauses(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		return []string{fmt.Sprintf("/%s %s", strings.Join(err.InstanceLocation, "/"), err.ErrorKind.LocalizedString(modelPrinter))}
	}
	var msgs []string
	for _, cause := range err.Causes {
		msgs = append(msgs, validationCauses(cause)...)
	}
	return msgs
}
