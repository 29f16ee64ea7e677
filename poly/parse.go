// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
	"strconv"
)

// Parse reads an infix polynomial expression over ring.
//
// Grammar (whitespace is ignored):
//
//	expr    := term { ("+" | "-") term }
//	term    := unary { ("*" | "/") unary }
//	unary   := ("+" | "-") unary | power
//	power   := primary [ ("^" | "**") integer ]
//	primary := number | identifier | "(" expr ")"
//
// Numbers are integers, decimals or scientific literals ("3", "0.25",
// "1e-3") and are converted exactly. Division is only allowed by a non-zero
// constant sub-expression, and exponents must be non-negative integer
// literals. Every violation fails with ErrMalformedPolynomial; identifiers
// outside the ring additionally match ErrUnknownVariable.
func Parse(ring *Ring, expr string) (Polynomial, error) {
	p := &parser{ring: ring, src: expr}
	if err := p.lex(); err != nil {
		return Polynomial{}, err
	}
	out, err := p.expr()
	if err != nil {
		return Polynomial{}, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return Polynomial{}, p.errorf(tok, "unexpected %q", tok.text)
	}

	return out, nil
}

// MustParse is Parse that panics on error; for tests and literal examples.
func MustParse(ring *Ring, expr string) Polynomial {
	p, err := Parse(ring, expr)
	if err != nil {
		panic(err)
	}

	return p
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokNum
	tokIdent
	tokOp
)

type token struct {
	kind tokKind
	text string
	pos  int
}

type parser struct {
	ring *Ring
	src  string
	toks []token
	at   int
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrMalformedPolynomial, tok.pos, fmt.Sprintf(format, args...))
}

func (p *parser) lex() error {
	s := p.src
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '*' && i+1 < len(s) && s[i+1] == '*':
			p.toks = append(p.toks, token{kind: tokOp, text: "^", pos: i})
			i += 2
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^' || c == '(' || c == ')':
			p.toks = append(p.toks, token{kind: tokOp, text: string(c), pos: i})
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
				j++
			}
			if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
				k := j + 1
				if k < len(s) && (s[k] == '+' || s[k] == '-') {
					k++
				}
				if k < len(s) && s[k] >= '0' && s[k] <= '9' {
					for k < len(s) && s[k] >= '0' && s[k] <= '9' {
						k++
					}
					j = k
				}
			}
			p.toks = append(p.toks, token{kind: tokNum, text: s[i:j], pos: i})
			i = j
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			j := i + 1
			for j < len(s) && (s[j] == '_' || s[j] >= 'a' && s[j] <= 'z' || s[j] >= 'A' && s[j] <= 'Z' || s[j] >= '0' && s[j] <= '9') {
				j++
			}
			p.toks = append(p.toks, token{kind: tokIdent, text: s[i:j], pos: i})
			i = j
		default:
			return p.errorf(token{pos: i}, "unexpected character %q", c)
		}
	}
	p.toks = append(p.toks, token{kind: tokEOF, pos: len(s)})

	return nil
}

func (p *parser) peek() token { return p.toks[p.at] }

func (p *parser) next() token {
	tok := p.toks[p.at]
	if tok.kind != tokEOF {
		p.at++
	}

	return tok
}

func (p *parser) isOp(text string) bool {
	tok := p.peek()

	return tok.kind == tokOp && tok.text == text
}

func (p *parser) expr() (Polynomial, error) {
	left, err := p.term()
	if err != nil {
		return Polynomial{}, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.next()
		right, err := p.term()
		if err != nil {
			return Polynomial{}, err
		}
		if op.text == "+" {
			left = Add(left, right)
		} else {
			left = Sub(left, right)
		}
	}

	return left, nil
}

func (p *parser) term() (Polynomial, error) {
	left, err := p.unary()
	if err != nil {
		return Polynomial{}, err
	}
	for p.isOp("*") || p.isOp("/") {
		op := p.next()
		right, err := p.unary()
		if err != nil {
			return Polynomial{}, err
		}
		if op.text == "*" {
			left = Mul(left, right)

			continue
		}
		if right.Degree() > 0 {
			return Polynomial{}, p.errorf(op, "division by a non-constant expression")
		}
		c := right.ConstantTerm()
		if c.Sign() == 0 {
			return Polynomial{}, p.errorf(op, "division by zero")
		}
		left = Scale(left, c.Inv(c))
	}

	return left, nil
}

func (p *parser) unary() (Polynomial, error) {
	if p.isOp("-") {
		p.next()
		v, err := p.unary()
		if err != nil {
			return Polynomial{}, err
		}

		return Neg(v), nil
	}
	if p.isOp("+") {
		p.next()

		return p.unary()
	}

	return p.power()
}

func (p *parser) power() (Polynomial, error) {
	base, err := p.primary()
	if err != nil {
		return Polynomial{}, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	op := p.next()
	tok := p.next()
	if tok.kind != tokNum {
		return Polynomial{}, p.errorf(op, "exponent must be a non-negative integer literal")
	}
	e, convErr := strconv.ParseUint(tok.text, 10, 16)
	if convErr != nil {
		return Polynomial{}, p.errorf(tok, "exponent %q must be a non-negative integer", tok.text)
	}

	return Pow(base, uint(e)), nil
}

func (p *parser) primary() (Polynomial, error) {
	tok := p.next()
	switch tok.kind {
	case tokNum:
		c, ok := new(big.Rat).SetString(tok.text)
		if !ok {
			return Polynomial{}, p.errorf(tok, "invalid number %q", tok.text)
		}

		return p.ring.Const(c), nil
	case tokIdent:
		i, ok := p.ring.Index(tok.text)
		if !ok {
			return Polynomial{}, fmt.Errorf("%w: offset %d: %w %q", ErrMalformedPolynomial, tok.pos, ErrUnknownVariable, tok.text)
		}

		return p.ring.VarAt(i), nil
	case tokOp:
		if tok.text == "(" {
			inner, err := p.expr()
			if err != nil {
				return Polynomial{}, err
			}
			if !p.isOp(")") {
				return Polynomial{}, p.errorf(p.peek(), "missing closing parenthesis")
			}
			p.next()

			return inner, nil
		}
	case tokEOF:
		return Polynomial{}, p.errorf(tok, "unexpected end of expression")
	}

	return Polynomial{}, p.errorf(tok, "unexpected %q", tok.text)
}
