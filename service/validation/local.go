package validation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/simdash/internal/set"
)

// functions callable from expressions without being model symbols
var functions = set.New("exp", "log", "sqrt", "abs", "min", "max", "pow", "sin", "cos")

// Local validates expressions without a backend. It accepts numbers,
// symbols, the operators + - * / ^, parentheses and calls to a fixed set of
// math functions.
type Local struct{}

func (l *Local) Validate(ctx context.Context, expression string, allowedSymbols []string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(expression) == "" {
		return &Result{Valid: false, Message: "expression was empty"}, nil
	}
	p := &parser{
		cursor:  parsly.NewCursor("", []byte(expression), 0),
		allowed: set.New(allowedSymbols...),
		unknown: map[string]bool{},
	}
	if err := p.parse(); err != nil {
		return &Result{Valid: false, Message: err.Error()}, nil
	}
	if len(p.unknown) > 0 {
		names := make([]string, 0, len(p.unknown))
		for name := range p.unknown {
			names = append(names, name)
		}
		sort.Strings(names)
		return &Result{Valid: false, Message: "unknown symbols: " + strings.Join(names, ", ")}, nil
	}
	return &Result{Valid: true}, nil
}

// NewLocal creates an offline validator
func NewLocal() *Local {
	return &Local{}
}

type parser struct {
	cursor  *parsly.Cursor
	allowed set.Set[string]
	unknown map[string]bool
}

func (p *parser) parse() error {
	if err := p.expression(); err != nil {
		return err
	}
	pos := p.cursor.Pos
	switch p.cursor.MatchAfterOptional(whitespaceToken, closeParenToken).Code {
	case closeParenCode:
		return fmt.Errorf("unbalanced parentheses at %d", pos)
	}
	p.cursor.Pos = pos
	p.skipWhitespace()
	if p.cursor.Pos < p.cursor.InputSize {
		return fmt.Errorf("unexpected %q at %d", p.cursor.Input[p.cursor.Pos], p.cursor.Pos)
	}
	return nil
}

// expression := operand (operator operand)*
func (p *parser) expression() error {
	if err := p.operand(); err != nil {
		return err
	}
	for {
		pos := p.cursor.Pos
		if p.cursor.MatchAfterOptional(whitespaceToken, operatorToken).Code != operatorCode {
			p.cursor.Pos = pos
			return nil
		}
		if err := p.operand(); err != nil {
			return err
		}
	}
}

func (p *parser) operand() error {
	p.skipWhitespace()
	pos := p.cursor.Pos
	if pos >= p.cursor.InputSize {
		return fmt.Errorf("dangling operator at end of expression")
	}
	matched := p.cursor.MatchAny(operatorToken, numberToken, identifierToken, openParenToken)
	switch matched.Code {
	case operatorCode:
		if text := matched.Text(p.cursor); text != "-" && text != "+" {
			return fmt.Errorf("dangling operator %q at %d", text, pos)
		}
		return p.operand()
	case numberCode:
		return nil
	case identifierCode:
		return p.identifier(matched.Text(p.cursor))
	case openParenCode:
		if err := p.expression(); err != nil {
			return err
		}
		if p.cursor.MatchAfterOptional(whitespaceToken, closeParenToken).Code != closeParenCode {
			return fmt.Errorf("unbalanced parentheses at %d", pos)
		}
		return nil
	}
	p.cursor.Pos = pos
	return fmt.Errorf("unexpected %q at %d", p.cursor.Input[pos], pos)
}

func (p *parser) identifier(name string) error {
	pos := p.cursor.Pos
	if p.cursor.MatchAfterOptional(whitespaceToken, openParenToken).Code != openParenCode {
		p.cursor.Pos = pos
		if !p.allowed.Contains(name) {
			p.unknown[name] = true
		}
		return nil
	}
	if !functions.Contains(name) {
		return fmt.Errorf("unknown function %q at %d", name, pos-len(name))
	}
	afterParen := p.cursor.Pos
	if p.cursor.MatchAfterOptional(whitespaceToken, closeParenToken).Code == closeParenCode {
		return nil
	}
	p.cursor.Pos = afterParen
	for {
		if err := p.expression(); err != nil {
			return err
		}
		switch p.cursor.MatchAfterOptional(whitespaceToken, commaToken, closeParenToken).Code {
		case commaCode:
			continue
		case closeParenCode:
			return nil
		}
		return fmt.Errorf("unbalanced parentheses in call to %v", name)
	}
}

func (p *parser) skipWhitespace() {
	p.cursor.MatchOne(whitespaceToken)
}
