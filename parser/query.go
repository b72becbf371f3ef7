package parser

import (
	"github.com/Protocol-Lattice/gqlp/ast"
	"github.com/Protocol-Lattice/gqlp/token"
)

// parseQuery parses "query" Name QueryArgument "{" QueryDocument "}".
func (p *Parser) parseQuery() (*ast.Query, error) {
	start, err := p.matchKeyword(token.KeywordQuery)
	if err != nil {
		return nil, err
	}
	name, err := p.match(token.NAME)
	if err != nil {
		return nil, err
	}
	arg, err := p.parseQueryArgument()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.LBRACE); err != nil {
		return nil, err
	}
	doc, err := p.parseQueryDocument()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Query{Name: name.Literal, Argument: arg, Document: doc, Pos: start.Pos}, nil
}

// parseQueryArgument parses "(" "$" Name ":" Name "!"? ("=" Name)? ")".
// Only one variable is supported.
func (p *Parser) parseQueryArgument() (*ast.QueryArgument, error) {
	if _, err := p.match(token.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.match(token.DOLLAR); err != nil {
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
	required := p.test(token.BANG)
	def, err := p.parseDefault()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.QueryArgument{Name: name.Literal, Type: typ.Literal, Required: required, Default: def}, nil
}

// parseQueryDocument parses the root call and its projection.
func (p *Parser) parseQueryDocument() (*ast.QueryDocument, error) {
	sig, err := p.parseQuerySignature()
	if err != nil {
		return nil, err
	}
	sels, err := p.parseProjectionList()
	if err != nil {
		return nil, err
	}
	return &ast.QueryDocument{Signature: sig, Selections: sels}, nil
}

// parseQuerySignature parses Name "(" Name ":" "$" Name ")".
func (p *Parser) parseQuerySignature() (ast.QuerySignature, error) {
	var sig ast.QuerySignature
	field, err := p.match(token.NAME)
	if err != nil {
		return sig, err
	}
	if _, err := p.match(token.LPAREN); err != nil {
		return sig, err
	}
	param, err := p.match(token.NAME)
	if err != nil {
		return sig, err
	}
	if _, err := p.match(token.COLON); err != nil {
		return sig, err
	}
	if _, err := p.match(token.DOLLAR); err != nil {
		return sig, err
	}
	variable, err := p.match(token.NAME)
	if err != nil {
		return sig, err
	}
	if _, err := p.match(token.RPAREN); err != nil {
		return sig, err
	}
	return ast.QuerySignature{Field: field.Literal, Param: param.Literal, Variable: variable.Literal}, nil
}

// parseProjectionList parses "{" Name (Name | ProjectionList)* "}". A nested
// list belongs to the name right before it.
func (p *Parser) parseProjectionList() ([]*ast.Selection, error) {
	if _, err := p.match(token.LBRACE); err != nil {
		return nil, err
	}
	first, err := p.match(token.NAME)
	if err != nil {
		return nil, err
	}
	sels := []*ast.Selection{{Name: first.Literal}}
	for !p.peek(token.RBRACE) {
		if p.peek(token.LBRACE) {
			nested, err := p.parseProjectionList()
			if err != nil {
				return nil, err
			}
			last := sels[len(sels)-1]
			last.Selections = append(last.Selections, nested...)
			continue
		}
		tok, err := p.match(token.NAME)
		if err != nil {
			return nil, err
		}
		sels = append(sels, &ast.Selection{Name: tok.Literal})
	}
	if _, err := p.match(token.RBRACE); err != nil {
		return nil, err
	}
	return sels, nil
}
