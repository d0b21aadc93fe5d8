package numo

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// Parser turns arithmetic text into a Node tree. Only the restricted grammar
// is recognized: integer and decimal literals, parentheses, unary minus and
// the binary operators + - * / ^ %. Anything else is a parse error; the text
// never reaches evaluation.
type Parser struct {
	scanner scanner.Scanner
	curr    tokenInfo
	scanErr bool
}

func NewParser(input string) *Parser {
	p := &Parser{}
	p.scanner.Init(strings.NewReader(input))
	p.scanner.Filename = "expr"
	p.scanner.Whitespace = 1<<' ' | 1<<'\t' | 1<<'\r' | 1<<'\n'
	p.scanner.Mode = scanner.ScanFloats
	p.scanner.Error = func(_ *scanner.Scanner, _ string) { p.scanErr = true }
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	r := p.scanner.Scan()
	text := p.scanner.TokenText()
	switch r {
	case scanner.EOF:
		p.curr = tokenInfo{typ: EOF}
	case scanner.Int, scanner.Float:
		p.curr = tokenInfo{typ: NUMBER, value: text}
	default:
		switch text {
		case "+", "-", "*", "/", "%", "^":
			p.curr = tokenInfo{typ: OPERATOR, value: text}
		case "(":
			p.curr = tokenInfo{typ: LPAREN, value: text}
		case ")":
			p.curr = tokenInfo{typ: RPAREN, value: text}
		default:
			p.curr = tokenInfo{typ: INVALID, value: text}
		}
	}
}

// Parse consumes the whole input and returns the root node. Trailing tokens
// after a complete expression are a parse error.
func (p *Parser) Parse() (Node, error) {
	node, err := p.parseBinaryExpression(0)
	if err != nil {
		return nil, err
	}
	if p.scanErr {
		return nil, p.errorf("malformed token")
	}
	if p.curr.typ != EOF {
		return nil, p.errorf("unexpected trailing token %q", p.curr.value)
	}
	return node, nil
}

func (p *Parser) parseBinaryExpression(minPrec int) (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curr.typ == OPERATOR {
		op := p.curr.value
		prec := getPrecedence(op)
		if prec < minPrec {
			break
		}
		p.nextToken()
		nextMin := prec + 1
		if rightAssociative(op) {
			nextMin = prec
		}
		right, err := p.parseBinaryExpression(nextMin)
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary binds tighter than every binary operator, so -2^2 is (-2)^2.
func (p *Parser) parseUnary() (Node, error) {
	if p.curr.typ == OPERATOR && p.curr.value == "-" {
		p.nextToken()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{Op: "-", Child: child}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Node, error) {
	switch p.curr.typ {
	case NUMBER:
		f, err := strconv.ParseFloat(p.curr.value, 64)
		if err != nil {
			return nil, p.errorf("invalid number %q", p.curr.value)
		}
		p.nextToken()
		return &NumberNode{Value: f}, nil
	case LPAREN:
		p.nextToken()
		expr, err := p.parseBinaryExpression(0)
		if err != nil {
			return nil, err
		}
		if p.curr.typ != RPAREN {
			return nil, p.errorf("expected ')', got %q", p.curr.value)
		}
		p.nextToken()
		return expr, nil
	case EOF:
		return nil, p.errorf("unexpected end of expression")
	default:
		return nil, p.errorf("unexpected token %q in expression", p.curr.value)
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	pos := p.scanner.Pos()
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		File:    p.scanner.Filename,
		Line:    pos.Line,
		Column:  pos.Column,
	}
}
