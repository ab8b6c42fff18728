package parser

import (
	"ferrite/internal/cst"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

// parseTopLevel: `[visibility] item`.
func (p *Parser) parseTopLevel() (*cst.TopLevel, error) {
	vis, err := p.parseVisibility()
	if err != nil {
		return nil, err
	}
	item, err := oneOf(p, "top level item",
		p.parseFunction,
		p.parseStruct,
		p.parseEnum,
		p.parseModFile,
		p.parseUse,
	)
	if err != nil {
		return nil, err
	}
	return &cst.TopLevel{Vis: vis, Item: item}, nil
}

// parseVisibility: `pub`, `pub()` или `pub(path)`; иначе приватная
// видимость с пустым спаном в начале текущего токена.
func (p *Parser) parseVisibility() (cst.Visibility, error) {
	pub := p.eat(token.KwPub)
	if pub == nil {
		at := p.curSpan()
		return &cst.VisPrivate{At: source.Span{File: at.File, Start: at.Start, End: at.Start}}, nil
	}
	open := p.eat(token.OpenParen)
	if open == nil {
		return &cst.VisPublic{Pub: *pub}, nil
	}
	if closeSpan := p.eat(token.CloseParen); closeSpan != nil {
		return &cst.VisPublic{Pub: *pub, Open: open, Close: closeSpan}, nil
	}
	path, err := p.parsePath()
	if err != nil {
		return nil, err
	}
	closeSpan, err := p.expect(token.CloseParen)
	if err != nil {
		return nil, err
	}
	return &cst.VisPath{Pub: *pub, Open: *open, Path: path, Close: closeSpan}, nil
}

// parsePath: `[::] Label (:: Label)*`.
func (p *Parser) parsePath() (*cst.Path, error) {
	path := &cst.Path{Leading: p.eat(token.ColonColon)}
	seg, err := p.expect(token.Label)
	if err != nil {
		return nil, err
	}
	path.Segments = append(path.Segments, seg)
	for {
		sep := p.eat(token.ColonColon)
		if sep == nil {
			return path, nil
		}
		seg, err := p.expect(token.Label)
		if err != nil {
			return nil, err
		}
		path.Separators = append(path.Separators, *sep)
		path.Segments = append(path.Segments, seg)
	}
}

// parseFunction: `fn name(a: T, ...) [-> R] { ... }`.
func (p *Parser) parseFunction() (cst.Item, error) {
	fn, err := p.expect(token.KwFn)
	if err != nil {
		return nil, err
	}
	f := &cst.Function{Fn: fn}
	if f.Name, err = p.expect(token.Label); err != nil {
		return nil, err
	}
	if f.Open, err = p.expect(token.OpenParen); err != nil {
		return nil, err
	}
	if f.Params, f.Commas, err = manyCommaSeparated(p, p.parseParam); err != nil {
		return nil, err
	}
	if f.Close, err = p.expect(token.CloseParen); err != nil {
		return nil, err
	}
	if f.Arrow = p.eat(token.ThinArrow); f.Arrow != nil {
		if f.ReturnType, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if f.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *Parser) parseParam() (*cst.Param, error) {
	name, err := p.expect(token.Label)
	if err != nil {
		return nil, err
	}
	colon, err := p.expect(token.Colon)
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &cst.Param{Name: name, Colon: colon, Type: typ}, nil
}

// parseStruct: `struct Name { [vis] field: T, ... }`.
func (p *Parser) parseStruct() (cst.Item, error) {
	kw, err := p.expect(token.KwStruct)
	if err != nil {
		return nil, err
	}
	s := &cst.Struct{Struct: kw}
	if s.Name, err = p.expect(token.Label); err != nil {
		return nil, err
	}
	if s.Open, err = p.expect(token.OpenCurly); err != nil {
		return nil, err
	}
	if s.Fields, s.Commas, err = manyCommaSeparated(p, p.parseField); err != nil {
		return nil, err
	}
	if s.Close, err = p.expect(token.CloseCurly); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseField() (*cst.Field, error) {
	if !p.at(token.KwPub) && !p.at(token.Label) {
		return nil, p.expected("field")
	}
	vis, err := p.parseVisibility()
	if err != nil {
		return nil, err
	}
	f := &cst.Field{Vis: vis}
	if f.Name, err = p.expect(token.Label); err != nil {
		return nil, err
	}
	if f.Colon, err = p.expect(token.Colon); err != nil {
		return nil, err
	}
	if f.Type, err = p.parseType(); err != nil {
		return nil, err
	}
	return f, nil
}

// parseEnum: `enum Name { A, B(T, U), ... }`.
func (p *Parser) parseEnum() (cst.Item, error) {
	kw, err := p.expect(token.KwEnum)
	if err != nil {
		return nil, err
	}
	e := &cst.Enum{Enum: kw}
	if e.Name, err = p.expect(token.Label); err != nil {
		return nil, err
	}
	if e.Open, err = p.expect(token.OpenCurly); err != nil {
		return nil, err
	}
	if e.Variants, e.Commas, err = manyCommaSeparated(p, p.parseVariant); err != nil {
		return nil, err
	}
	if e.Close, err = p.expect(token.CloseCurly); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parseVariant() (*cst.Variant, error) {
	name, err := p.expect(token.Label)
	if err != nil {
		return nil, err
	}
	v := &cst.Variant{Name: name}
	if p.at(token.OpenParen) {
		if v.Fields, err = p.parseParenOrTupleType(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// parseModFile: `mod name;`.
func (p *Parser) parseModFile() (cst.Item, error) {
	kw, err := p.expect(token.KwMod)
	if err != nil {
		return nil, err
	}
	m := &cst.ModFile{Mod: kw}
	if m.Name, err = p.expect(token.Label); err != nil {
		return nil, err
	}
	if m.Semi, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return m, nil
}

// parseUse: `use [::]a::b::item;`.
func (p *Parser) parseUse() (cst.Item, error) {
	kw, err := p.expect(token.KwUse)
	if err != nil {
		return nil, err
	}
	u := &cst.Use{Use: kw}
	if u.Path, err = p.parsePath(); err != nil {
		return nil, err
	}
	if u.Semi, err = p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return u, nil
}
