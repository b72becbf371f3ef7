package printer

import (
	"github.com/Protocol-Lattice/gqlp/ast"
	"github.com/Protocol-Lattice/gqlp/token"
)

// View is the serializable form of a schema used for JSON and YAML output.
type View struct {
	Declarations []DeclarationView `json:"declarations" yaml:"declarations"`
}

// DeclarationView describes one declaration. Only the members that belong
// to its kind are set.
type DeclarationView struct {
	Kind       string          `json:"kind" yaml:"kind"`
	Name       string          `json:"name" yaml:"name"`
	Parent     string          `json:"parent,omitempty" yaml:"parent,omitempty"`
	Position   token.Position  `json:"position" yaml:"position"`
	Fields     []FieldView     `json:"fields,omitempty" yaml:"fields,omitempty"`
	Values     []string        `json:"values,omitempty" yaml:"values,omitempty"`
	Argument   *ArgumentView   `json:"argument,omitempty" yaml:"argument,omitempty"`
	Signature  *SignatureView  `json:"signature,omitempty" yaml:"signature,omitempty"`
	Selections []SelectionView `json:"selections,omitempty" yaml:"selections,omitempty"`
}

// FieldView describes a field of a type or input.
type FieldView struct {
	Name     string         `json:"name" yaml:"name"`
	Type     string         `json:"type" yaml:"type"`
	NonNull  bool           `json:"nonNull" yaml:"nonNull"`
	Argument *ArgumentView  `json:"argument,omitempty" yaml:"argument,omitempty"`
	Position token.Position `json:"position" yaml:"position"`
}

// ArgumentView describes a field argument or a query variable.
type ArgumentView struct {
	Name     string  `json:"name" yaml:"name"`
	Type     string  `json:"type" yaml:"type"`
	Required bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Default  *string `json:"default,omitempty" yaml:"default,omitempty"`
}

// SignatureView describes the root call of a query.
type SignatureView struct {
	Field    string `json:"field" yaml:"field"`
	Param    string `json:"param" yaml:"param"`
	Variable string `json:"variable" yaml:"variable"`
}

// SelectionView describes a projected field.
type SelectionView struct {
	Name       string          `json:"name" yaml:"name"`
	Selections []SelectionView `json:"selections,omitempty" yaml:"selections,omitempty"`
}

// Build converts a schema into its View.
func Build(schema *ast.Schema) *View {
	v := &View{Declarations: make([]DeclarationView, 0, len(schema.Declarations))}
	for _, decl := range schema.Declarations {
		v.Declarations = append(v.Declarations, buildDeclaration(decl))
	}
	return v
}

func buildDeclaration(decl ast.Declaration) DeclarationView {
	dv := DeclarationView{Kind: string(decl.Kind()), Name: decl.TokenLiteral()}
	switch d := decl.(type) {
	case *ast.Object:
		dv.Parent = d.Parent
		dv.Position = d.Pos
		for _, f := range d.Fields {
			fv := FieldView{Name: f.Name, Type: f.Type.String(), NonNull: f.NonNull(), Position: f.Pos}
			if f.Argument != nil {
				fv.Argument = &ArgumentView{Name: f.Argument.Name, Type: f.Argument.Type, Default: f.Argument.Default}
			}
			dv.Fields = append(dv.Fields, fv)
		}
	case *ast.Enum:
		dv.Position = d.Pos
		for _, val := range d.Values {
			dv.Values = append(dv.Values, string(val))
		}
	case *ast.Query:
		dv.Position = d.Pos
		dv.Argument = &ArgumentView{
			Name:     d.Argument.Name,
			Type:     d.Argument.Type,
			Required: d.Argument.Required,
			Default:  d.Argument.Default,
		}
		sig := d.Document.Signature
		dv.Signature = &SignatureView{Field: sig.Field, Param: sig.Param, Variable: sig.Variable}
		dv.Selections = buildSelections(d.Document.Selections)
	}
	return dv
}

func buildSelections(sels []*ast.Selection) []SelectionView {
	if len(sels) == 0 {
		return nil
	}
	out := make([]SelectionView, len(sels))
	for i, s := range sels {
		out[i] = SelectionView{Name: s.Name, Selections: buildSelections(s.Selections)}
	}
	return out
}
