// Package expr evaluates small algebraic expressions over mechanism
// objects: species, reactions, processes, and numbers.
//
// The grammar is deliberately closed: identifiers, numeric literals,
// '+', '-', '*', unary minus, and parentheses.  Identifiers resolve
// through an Env; operators dispatch on the operand types.  There is
// no way to call anything, so user-supplied expressions stay
// auditable.
package expr

import (
	"fmt"
	"strconv"

	"github.com/atmoschem/mex/rates"
	"github.com/atmoschem/mex/reaction"
	"github.com/atmoschem/mex/species"
)

// Env resolves identifiers to values: float64, *species.Species,
// *reaction.Reaction, or *rates.Process.
type Env interface {
	Lookup(name string) (interface{}, bool)
}

// MapEnv is the obvious Env.
type MapEnv map[string]interface{}

func (e MapEnv) Lookup(name string) (interface{}, bool) {
	v, have := e[name]
	return v, have
}

// Eval parses and evaluates src against env.
func Eval(src string, env Env) (interface{}, error) {
	p := &parser{src: src, env: env}
	p.next()
	v, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok != tokEOF {
		return nil, &SyntaxError{Src: src, Pos: p.pos, Why: "trailing input"}
	}
	return v, nil
}

type token int

const (
	tokEOF token = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokLparen
	tokRparen
	tokBad
)

type parser struct {
	src string
	env Env

	pos  int
	tok  token
	text string
}

func (p *parser) next() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
	if p.pos >= len(p.src) {
		p.tok = tokEOF
		return
	}
	c := p.src[p.pos]
	switch {
	case c == '+':
		p.tok, p.text = tokPlus, "+"
		p.pos++
	case c == '-':
		p.tok, p.text = tokMinus, "-"
		p.pos++
	case c == '*':
		p.tok, p.text = tokStar, "*"
		p.pos++
	case c == '(':
		p.tok, p.text = tokLparen, "("
		p.pos++
	case c == ')':
		p.tok, p.text = tokRparen, ")"
		p.pos++
	case '0' <= c && c <= '9' || c == '.':
		start := p.pos
		for p.pos < len(p.src) && ('0' <= p.src[p.pos] && p.src[p.pos] <= '9' || p.src[p.pos] == '.') {
			p.pos++
		}
		p.tok, p.text = tokNumber, p.src[start:p.pos]
	case isIdentStart(c):
		start := p.pos
		for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
			p.pos++
		}
		p.tok, p.text = tokIdent, p.src[start:p.pos]
	default:
		p.tok, p.text = tokBad, string(c)
	}
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || '0' <= c && c <= '9'
}

// expr := term { ('+' | '-') term }
func (p *parser) expr() (interface{}, error) {
	v, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok == tokPlus || p.tok == tokMinus {
		op := p.tok
		p.next()
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == tokPlus {
			v, err = Add(v, rhs)
		} else {
			v, err = Sub(v, rhs)
		}
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// term := unary { '*' unary }
func (p *parser) term() (interface{}, error) {
	v, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.tok == tokStar {
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		if v, err = Mul(v, rhs); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// unary := '-' unary | primary
func (p *parser) unary() (interface{}, error) {
	if p.tok == tokMinus {
		p.next()
		v, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Neg(v)
	}
	return p.primary()
}

// primary := NUMBER | IDENT | '(' expr ')'
func (p *parser) primary() (interface{}, error) {
	switch p.tok {
	case tokNumber:
		f, err := strconv.ParseFloat(p.text, 64)
		if err != nil {
			return nil, &SyntaxError{Src: p.src, Pos: p.pos, Why: "bad number " + p.text}
		}
		p.next()
		return f, nil
	case tokIdent:
		v, have := p.env.Lookup(p.text)
		if !have {
			return nil, &Unbound{Name: p.text}
		}
		p.next()
		return v, nil
	case tokLparen:
		p.next()
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.tok != tokRparen {
			return nil, &SyntaxError{Src: p.src, Pos: p.pos, Why: "expected ')'"}
		}
		p.next()
		return v, nil
	case tokEOF:
		return nil, &SyntaxError{Src: p.src, Pos: p.pos, Why: "unexpected end of expression"}
	default:
		return nil, &SyntaxError{Src: p.src, Pos: p.pos, Why: "unexpected " + p.text}
	}
}

// Add dispatches '+' on the operand types.
func Add(a, b interface{}) (interface{}, error) {
	switch x := a.(type) {
	case float64:
		if y, is := b.(float64); is {
			return x + y, nil
		}
	case *species.Species:
		if y, is := b.(*species.Species); is {
			return x.Add(y)
		}
	case *reaction.Reaction:
		switch y := b.(type) {
		case *reaction.Reaction:
			return x.Add(y), nil
		case *species.Species:
			return x.AddSpecies(y), nil
		}
	case *rates.Process:
		if y, is := b.(*rates.Process); is {
			return x.Add(y), nil
		}
	}
	return nil, &InvalidOperand{Op: "+", Left: a, Right: b}
}

// Sub dispatches '-'.  Species subtraction is addition of the
// negation; reactions don't subtract.
func Sub(a, b interface{}) (interface{}, error) {
	switch x := a.(type) {
	case float64:
		if y, is := b.(float64); is {
			return x - y, nil
		}
	case *species.Species:
		if y, is := b.(*species.Species); is {
			return x.Sub(y)
		}
	case *rates.Process:
		if y, is := b.(*rates.Process); is {
			return x.Add(y.Scale(-1)), nil
		}
	}
	return nil, &InvalidOperand{Op: "-", Left: a, Right: b}
}

// Mul dispatches '*'.  One operand must be a number; in particular a
// species only scales by numbers.
func Mul(a, b interface{}) (interface{}, error) {
	if x, is := a.(float64); is {
		switch y := b.(type) {
		case float64:
			return x * y, nil
		case *species.Species:
			return y.Scale(x), nil
		case *reaction.Reaction:
			return y.Scale(x), nil
		case *rates.Process:
			return y.Scale(x), nil
		}
	}
	if y, is := b.(float64); is {
		switch x := a.(type) {
		case *species.Species:
			return x.Scale(y), nil
		case *reaction.Reaction:
			return x.Scale(y), nil
		case *rates.Process:
			return x.Scale(y), nil
		}
	}
	return nil, &InvalidOperand{Op: "*", Left: a, Right: b}
}

// Neg dispatches unary '-'.
func Neg(a interface{}) (interface{}, error) {
	switch x := a.(type) {
	case float64:
		return -x, nil
	case *species.Species:
		return x.Neg(), nil
	case *reaction.Reaction:
		return x.Scale(-1), nil
	case *rates.Process:
		return x.Scale(-1), nil
	}
	return nil, &InvalidOperand{Op: "-", Left: a}
}

func typeName(x interface{}) string {
	switch x.(type) {
	case nil:
		return "nothing"
	case float64:
		return "number"
	case *species.Species:
		return "species"
	case *reaction.Reaction:
		return "reaction"
	case *rates.Process:
		return "process"
	}
	return fmt.Sprintf("%T", x)
}

// InvalidOperand occurs when an operator gets types it doesn't
// support (multiplying two species, say).
type InvalidOperand struct {
	Op    string
	Left  interface{}
	Right interface{}
}

func (e *InvalidOperand) Error() string {
	if e.Right == nil {
		return `can't apply "` + e.Op + `" to ` + typeName(e.Left)
	}
	return `can't apply "` + e.Op + `" to ` + typeName(e.Left) + " and " + typeName(e.Right)
}

// Unbound occurs when an identifier isn't in the environment.
type Unbound struct {
	Name string
}

func (e *Unbound) Error() string {
	return `"` + e.Name + `" is not bound`
}

// SyntaxError occurs when an expression doesn't parse.
type SyntaxError struct {
	Src string
	Pos int
	Why string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d in %q: %s", e.Pos, e.Src, e.Why)
}
