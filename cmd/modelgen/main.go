// Command modelgen writes operation model skeletons from the request types of
// the bedrockagentcorecontrol SDK package.
//
//	go run ./cmd/modelgen -o models/gateway.yaml CreateGateway GetGateway
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/types"
	"log"
	"os"
	"strings"

	"github.com/mashiike/acctl"
	"golang.org/x/tools/go/packages"
	"gopkg.in/yaml.v3"
)

const (
	basePath  = "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	typesPath = basePath + "/types"
	maxDepth  = 4
)

func main() {
	output := flag.String("o", "", "output file (default stdout)")
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatalf("usage: modelgen [-o file] Operation...")
	}

	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, basePath, typesPath)
	if err != nil {
		log.Fatalf("failed to load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		log.Fatalf("package errors encountered")
	}
	var basePkg *packages.Package
	required := make(map[string]bool)
	for _, p := range pkgs {
		if p.PkgPath == basePath {
			basePkg = p
		}
		collectRequired(p, required)
	}
	if basePkg == nil {
		log.Fatalf("package %s not found", basePath)
	}

	var model acctl.OperationModel
	for _, name := range flag.Args() {
		obj := basePkg.Types.Scope().Lookup(name + "Input")
		if obj == nil {
			log.Fatalf("%sInput not found in package", name)
		}
		g := &generator{required: required}
		g.walk(obj.Type(), nil, 0)
		model.Operations = append(model.Operations, acctl.OperationSpec{
			Name:     name,
			Mutating: isMutating(name),
			Request:  g.fields,
		})
		log.Printf("generated %s: %d fields", name, len(g.fields))
	}

	bs, err := yaml.Marshal(model)
	if err != nil {
		log.Fatalf("failed to encode model: %v", err)
	}
	if *output == "" {
		os.Stdout.Write(bs)
		return
	}
	if err := os.WriteFile(*output, bs, 0644); err != nil {
		log.Fatalf("failed to write file: %v", err)
	}
}

func isMutating(name string) bool {
	for _, prefix := range []string{"Create", "Update", "Delete", "Put"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// collectRequired records "Type.Field" for every struct field documented as
// required by the SDK.
func collectRequired(p *packages.Package, required map[string]bool) {
	for _, file := range p.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			spec, ok := n.(*ast.TypeSpec)
			if !ok {
				return true
			}
			st, ok := spec.Type.(*ast.StructType)
			if !ok {
				return false
			}
			for _, field := range st.Fields.List {
				if field.Doc == nil || !strings.Contains(field.Doc.Text(), "This member is required.") {
					continue
				}
				for _, ident := range field.Names {
					required[spec.Name.Name+"."+ident.Name] = true
				}
			}
			return false
		})
	}
}

type generator struct {
	required map[string]bool
	fields   []acctl.FieldSpec
}

func (g *generator) add(path []string, kind acctl.Kind, vt acctl.ValueType, required bool, desc string) {
	f := acctl.FieldSpec{
		Path:        strings.Join(path, "."),
		Type:        vt,
		Required:    required,
		Description: desc,
	}
	if kind != acctl.KindScalar {
		f.Kind = kind.String()
	}
	g.fields = append(g.fields, f)
}

func (g *generator) walk(t types.Type, path []string, depth int) {
	named, ok := t.(*types.Named)
	if !ok {
		return
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return
	}
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}
		p := append(append([]string{}, path...), field.Name())
		required := g.required[named.Obj().Name()+"."+field.Name()]
		g.field(field.Type(), p, required, depth)
	}
}

func (g *generator) field(t types.Type, path []string, required bool, depth int) {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if vt, ok := scalarType(t); ok {
		g.add(path, acctl.KindScalar, vt, required, "")
		return
	}
	switch u := t.Underlying().(type) {
	case *types.Slice:
		if basic, ok := u.Elem().Underlying().(*types.Basic); ok && basic.Kind() == types.Byte {
			g.add(path, acctl.KindScalar, acctl.TypeString, required, "")
			return
		}
		vt, _ := scalarType(u.Elem())
		g.add(path, acctl.KindList, vt, required, "")
	case *types.Map:
		vt, _ := scalarType(u.Elem())
		g.add(path, acctl.KindMap, vt, required, "")
	case *types.Interface:
		g.add(path, acctl.KindScalar, acctl.TypeAny, required, fmt.Sprintf("union %s", typeName(t)))
	case *types.Struct:
		if typeName(t) == "time.Time" {
			g.add(path, acctl.KindScalar, acctl.TypeString, required, "")
			return
		}
		if depth >= maxDepth {
			g.add(path, acctl.KindScalar, acctl.TypeAny, required, typeName(t))
			return
		}
		g.walk(t, path, depth+1)
	}
}

func scalarType(t types.Type) (acctl.ValueType, bool) {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return acctl.TypeAny, false
	}
	switch {
	case basic.Info()&types.IsString != 0:
		return acctl.TypeString, true
	case basic.Info()&types.IsInteger != 0:
		return acctl.TypeInteger, true
	case basic.Info()&types.IsFloat != 0:
		return acctl.TypeNumber, true
	case basic.Info()&types.IsBoolean != 0:
		return acctl.TypeBoolean, true
	}
	return acctl.TypeAny, false
}

func typeName(t types.Type) string {
	return strings.ReplaceAll(t.String(), typesPath+".", "types.")
}
