// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlinalg/element"
)

// ParseType parses the textual form produced by Type.String:
//
//	fixed<elem,R,C[,col]>   dynamic<elem[,col]>
//	fixed_vector<elem,N>    dynamic_vector<elem>   scalar<elem>
//	transpose<T>  submatrix<T>  row<T>  column<T>
//
// Element names resolve through element.Lookup. Whitespace is ignored.
//
// Errors: ErrParse (syntax), plus whatever the type constructor returns.
func ParseType(s string) (Type, error) {
	p := &parser{src: strings.Join(strings.Fields(s), "")}
	t, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	if p.pos != len(p.src) {
		return Type{}, p.fail("trailing input")
	}

	return t, nil
}

// MustParseType is ParseType that panics on error.
func MustParseType(s string) Type {
	return MustType(ParseType(s))
}

type parser struct {
	src string
	pos int
}

func (p *parser) fail(msg string) error {
	return fmt.Errorf("ParseType(%q) at %d: %s: %w", p.src, p.pos, msg, ErrParse)
}

func (p *parser) expect(c byte) error {
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return p.fail("expected " + string(c))
	}
	p.pos++

	return nil
}

func (p *parser) peek(c byte) bool {
	return p.pos < len(p.src) && p.src[p.pos] == c
}

// word reads up to the next delimiter.
func (p *parser) word() string {
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("<>,", rune(p.src[p.pos])) {
		p.pos++
	}

	return p.src[start:p.pos]
}

func (p *parser) elem() (element.Type, error) {
	name := p.word()
	t, ok := element.Lookup(name)
	if !ok {
		return element.Type{}, fmt.Errorf("ParseType: element %q: %w", name, ErrNotMatrixElement)
	}

	return t, nil
}

func (p *parser) number() (int, error) {
	w := p.word()
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0, p.fail("expected integer, got " + strconv.Quote(w))
	}

	return n, nil
}

// layout reads an optional ",col" or ",row" suffix.
func (p *parser) layout() ([]Option, error) {
	if !p.peek(',') {
		return nil, nil
	}
	p.pos++
	switch w := p.word(); w {
	case "col":
		return []Option{WithLayout(ColumnMajor)}, nil
	case "row":
		return []Option{WithLayout(RowMajor)}, nil
	default:
		return nil, p.fail("unknown layout " + strconv.Quote(w))
	}
}

func (p *parser) parseType() (Type, error) {
	head := p.word()
	if err := p.expect('<'); err != nil {
		return Type{}, err
	}
	var (
		t   Type
		err error
	)
	switch head {
	case "fixed":
		t, err = p.parseFixed()
	case "dynamic":
		t, err = p.parseDynamic()
	case "fixed_vector":
		t, err = p.parseFixedVector()
	case "dynamic_vector", "scalar":
		var e element.Type
		if e, err = p.elem(); err == nil {
			if head == "scalar" {
				t, err = ScalarType(e)
			} else {
				t, err = DynamicVectorType(e)
			}
		}
	case "transpose", "submatrix", "row", "column":
		var base Type
		if base, err = p.parseType(); err == nil {
			t, err = viewOf(head, base)
		}
	default:
		return Type{}, p.fail("unknown engine kind " + strconv.Quote(head))
	}
	if err != nil {
		return Type{}, err
	}
	if err = p.expect('>'); err != nil {
		return Type{}, err
	}

	return t, nil
}

func (p *parser) parseFixed() (Type, error) {
	e, err := p.elem()
	if err != nil {
		return Type{}, err
	}
	if err = p.expect(','); err != nil {
		return Type{}, err
	}
	r, err := p.number()
	if err != nil {
		return Type{}, err
	}
	if err = p.expect(','); err != nil {
		return Type{}, err
	}
	c, err := p.number()
	if err != nil {
		return Type{}, err
	}
	opts, err := p.layout()
	if err != nil {
		return Type{}, err
	}

	return FixedType(e, r, c, opts...)
}

func (p *parser) parseDynamic() (Type, error) {
	e, err := p.elem()
	if err != nil {
		return Type{}, err
	}
	opts, err := p.layout()
	if err != nil {
		return Type{}, err
	}

	return DynamicType(e, opts...)
}

func (p *parser) parseFixedVector() (Type, error) {
	e, err := p.elem()
	if err != nil {
		return Type{}, err
	}
	if err = p.expect(','); err != nil {
		return Type{}, err
	}
	n, err := p.number()
	if err != nil {
		return Type{}, err
	}

	return FixedVectorType(e, n)
}

func viewOf(kind string, base Type) (Type, error) {
	switch kind {
	case "transpose":
		return TransposeType(base)
	case "submatrix":
		return SubmatrixType(base)
	case "row":
		return RowType(base)
	default:
		return ColumnType(base)
	}
}
