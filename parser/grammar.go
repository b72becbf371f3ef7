package parser

import (
	"github.com/Protocol-Lattice/gqlp/ast"
	"github.com/Protocol-Lattice/gqlp/lexer"
	"github.com/Protocol-Lattice/gqlp/token"
)

// Parse scans and parses a schema document.
func Parse(input string) (*ast.Schema, error) {
	p, err := New(lexer.New(input))
	if err != nil {
		return nil, err
	}
	return p.ParseSchema()
}

// declarations maps each declaration keyword to its production, in the
// order they are tried.
var declarations = []struct {
	keyword token.Keyword
	parse   func(p *Parser) (ast.Declaration, error)
}{
	{token.KeywordType, func(p *Parser) (ast.Declaration, error) {
		return p.parseObject(token.KeywordType, ast.KindType)
	}},
	{token.KeywordEnum, func(p *Parser) (ast.Declaration, error) {
		return p.parseEnum()
	}},
	{token.KeywordQuery, func(p *Parser) (ast.Declaration, error) {
		return p.parseQuery()
	}},
	{token.KeywordInput, func(p *Parser) (ast.Declaration, error) {
		return p.parseObject(token.KeywordInput, ast.KindInput)
	}},
}

// ParseSchema parses declarations until EOF.
func (p *Parser) ParseSchema() (*ast.Schema, error) {
	var decls []ast.Declaration
	for !p.peek(token.EOF) {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return &ast.Schema{Declarations: decls}, nil
}

// parseDeclaration dispatches on the leading keyword.
func (p *Parser) parseDeclaration() (ast.Declaration, error) {
	for _, d := range declarations {
		if p.peekKeyword(d.keyword) {
			return d.parse(p)
		}
	}
	return nil, p.unexpected("one of type, enum, query, input")
}

// parseObject parses a type or input declaration:
//
//	"type" Name ("implements" Name)? FieldList
func (p *Parser) parseObject(kw token.Keyword, kind ast.Kind) (*ast.Object, error) {
	start, err := p.matchKeyword(kw)
	if err != nil {
		return nil, err
	}
	name, err := p.match(token.NAME)
	if err != nil {
		return nil, err
	}
	var parent string
	if p.peekKeyword(token.KeywordImplements) {
		if _, err := p.matchKeyword(token.KeywordImplements); err != nil {
			return nil, err
		}
		tok, err := p.match(token.NAME)
		if err != nil {
			return nil, err
		}
		parent = tok.Literal
	}
	fields, err := p.parseFieldList()
	if err != nil {
		return nil, err
	}
	return &ast.Object{
		ObjectKind: kind,
		Name:       name.Literal,
		Parent:     parent,
		Fields:     fields,
		Pos:        start.Pos,
	}, nil
}

// parseFieldList parses "{" Field* "}".
func (p *Parser) parseFieldList() ([]*ast.Field, error) {
	if _, err := p.match(token.LBRACE); err != nil {
		return nil, err
	}
	var fields []*ast.Field
	for !p.peek(token.RBRACE) {
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	if _, err := p.match(token.RBRACE); err != nil {
		return nil, err
	}
	return fields, nil
}

// parseField parses Name Argument? ":" FieldType "!"?.
func (p *Parser) parseField() (*ast.Field, error) {
	name, err := p.match(token.NAME)
	if err != nil {
		return nil, err
	}
	var arg *ast.Argument
	if p.peek(token.LPAREN) {
		if arg, err = p.parseArgument(); err != nil {
			return nil, err
		}
	}
	if _, err := p.match(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if p.test(token.BANG) {
		typ = nonNull(typ)
	}
	return &ast.Field{Name: name.Literal, Type: typ, Argument: arg, Pos: name.Pos}, nil
}

// parseArgument parses "(" Name ":" Name ("=" Name)? ")".
func (p *Parser) parseArgument() (*ast.Argument, error) {
	if _, err := p.match(token.LPAREN); err != nil {
		return nil, err
	}
	name, err := p.match(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.match(token.NAME)
	if err != nil {
		return nil, err
	}
	def, err := p.parseDefault()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Argument{Name: name.Literal, Type: typ.Literal, Default: def}, nil
}

// parseDefault parses an optional "=" Name.
func (p *Parser) parseDefault() (*string, error) {
	if !p.test(token.EQUALS) {
		return nil, nil
	}
	tok, err := p.match(token.NAME)
	if err != nil {
		return nil, err
	}
	return &tok.Literal, nil
}

// parseFieldType parses "[" FieldType "!"? "]" | Name.
func (p *Parser) parseFieldType() (*ast.TypeRef, error) {
	if !p.test(token.LBRACKET) {
		name, err := p.match(token.NAME)
		if err != nil {
			return nil, err
		}
		return ast.Named(name.Literal, false), nil
	}
	elem, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if p.test(token.BANG) {
		elem = nonNull(elem)
	}
	if _, err := p.match(token.RBRACKET); err != nil {
		return nil, err
	}
	return ast.ListOf(elem, false), nil
}

// nonNull returns a copy of t marked non-nullable.
func nonNull(t *ast.TypeRef) *ast.TypeRef {
	c := *t
	c.NonNull = true
	return &c
}

// parseEnum parses "enum" Name "{" Name Name* "}".
func (p *Parser) parseEnum() (*ast.Enum, error) {
	start, err := p.matchKeyword(token.KeywordEnum)
	if err != nil {
		return nil, err
	}
	name, err := p.match(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.LBRACE); err != nil {
		return nil, err
	}
	first, err := p.match(token.NAME)
	if err != nil {
		return nil, err
	}
	values := []ast.EnumValue{ast.EnumValue(first.Literal)}
	for !p.peek(token.RBRACE) {
		tok, err := p.match(token.NAME)
		if err != nil {
			return nil, err
		}
		values = append(values, ast.EnumValue(tok.Literal))
	}
	if _, err := p.match(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Enum{Name: name.Literal, Values: values, Pos: start.Pos}, nil
}
