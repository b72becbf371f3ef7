// Package printer renders parsed schemas and token streams for people and
// programs.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/Protocol-Lattice/gqlp/ast"
	"github.com/Protocol-Lattice/gqlp/token"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", errors.Newf("unknown output format %q (want text, json or yaml)", s)
}

// Styles decorates the lines of the text format.
type Styles struct {
	Label func(string) string // Declaration labels
	Item  func(string) string // Fields, values and selections
}

// PlainStyles leaves text untouched.
func PlainStyles() Styles {
	id := func(s string) string { return s }
	return Styles{Label: id, Item: id}
}

// ColorStyles highlights labels for terminals.
func ColorStyles() Styles {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	item := lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	return Styles{
		Label: func(s string) string { return label.Render(s) },
		Item:  func(s string) string { return item.Render(s) },
	}
}

// Printer writes schemas in one format.
type Printer struct {
	format Format
	styles Styles
}

// New creates a Printer. styles only affect FormatText.
func New(format Format, styles Styles) *Printer {
	return &Printer{format: format, styles: styles}
}

// Fprint writes schema to w.
func (p *Printer) Fprint(w io.Writer, schema *ast.Schema) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(Build(schema)), "encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Build(schema)); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	default:
		return p.text(w, schema)
	}
}

// text writes one label per declaration followed by its items indented.
func (p *Printer) text(w io.Writer, schema *ast.Schema) error {
	for _, decl := range schema.Declarations {
		if _, err := fmt.Fprintln(w, p.styles.Label(decl.String())); err != nil {
			return err
		}
		for item := range decl.Items() {
			if _, err := fmt.Fprintln(w, "  "+p.styles.Item(item.String())); err != nil {
				return err
			}
		}
	}
	return nil
}

// Tokens writes one token per line as "line:col TYPE literal".
func Tokens(w io.Writer, toks []token.Token) error {
	for _, tok := range toks {
		lit := ""
		if tok.Type != token.EOF {
			lit = strconv.Quote(tok.Literal)
		}
		if _, err := fmt.Fprintf(w, "%-7s %-8s %s\n", tok.Pos, tok.Type, lit); err != nil {
			return err
		}
	}
	return nil
}
