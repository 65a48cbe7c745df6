package algebra

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/treerex"
)

// Parse reads an arithmetic/trig expression from a string and returns the
// corresponding (normalized) term tree.
//
// Accepted syntax, with the usual precedences and a right-associative '^':
//
//	Expr   ➞ Expr ('+'|'-') Term  |  Term
//	Term   ➞ Term ('*'|'/') Factor  |  Factor
//	Factor ➞ '-' Factor  |  Power
//	Power  ➞ Atom ['^' Factor]
//	Atom   ➞ number  |  ident  |  ident '(' Expr {',' Expr} ')'  |  '(' Expr ')'
//
// Function application uses the identifier as operation code, so
// "sin(2*x)^2 + 1" parses to (+ (^ (sin (* 2 x)) 2) 1).
func Parse(input string) (treerex.Expr, error) {
	toks, err := scanTokens(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().typ != tokEOF {
		return nil, fmt.Errorf("unexpected trailing token %s", p.peek())
	}
	tracer().Debugf("parsed %q as %v", input, e)
	return e, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.typ != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(typ int) (token, error) {
	t := p.next()
	if t.typ != typ {
		return t, fmt.Errorf("expected token type %d, got %s", typ, t)
	}
	return t, nil
}

func (p *parser) parseExpr() (treerex.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().typ {
		case '+':
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = New("+", left, right)
		case '-':
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = New("-", left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (treerex.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().typ {
		case '*':
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = New("*", left, right)
		case '/':
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = New("/", left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseFactor() (treerex.Expr, error) {
	if p.peek().typ == '-' {
		p.next()
		inner, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return New("-", inner), nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (treerex.Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek().typ == '^' {
		p.next()
		exp, err := p.parseFactor() // right-associative
		if err != nil {
			return nil, err
		}
		return New("^", base, exp), nil
	}
	return base, nil
}

func (p *parser) parseAtom() (treerex.Expr, error) {
	t := p.next()
	switch t.typ {
	case tokNum:
		v, err := strconv.ParseFloat(t.lexeme, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed number %q", t.lexeme)
		}
		return Num(v), nil
	case tokID:
		if p.peek().typ != '(' {
			return Sym(t.lexeme), nil
		}
		p.next() // consume '('
		var args []treerex.Expr
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().typ != ',' {
				break
			}
			p.next()
		}
		if _, err := p.expect(')'); err != nil {
			return nil, err
		}
		return New(treerex.OpCode(t.lexeme), args...), nil
	case '(':
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(')'); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, fmt.Errorf("unexpected token %s", t)
}
