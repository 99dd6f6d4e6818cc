package validation

import (
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes start at 1, parsly reserves negative codes
const (
	whitespaceCode = iota + 1
	numberCode
	identifierCode
	operatorCode
	openParenCode
	closeParenCode
	commaCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	numberToken     = parsly.NewToken(numberCode, "Number", &numberMatcher{})
	identifierToken = parsly.NewToken(identifierCode, "Identifier", &identifierMatcher{})
	operatorToken   = parsly.NewToken(operatorCode, "Operator", &byteSetMatcher{set: "+-*/^"})
	openParenToken  = parsly.NewToken(openParenCode, "(", matcher.NewByte('('))
	closeParenToken = parsly.NewToken(closeParenCode, ")", matcher.NewByte(')'))
	commaToken      = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
)

// identifierMatcher matches names starting with a letter or underscore
type identifierMatcher struct{}

func (m *identifierMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize {
		return 0
	}
	if !isLetter(input[pos]) && input[pos] != '_' {
		return 0
	}
	matched := 1
	for i := pos + 1; i < cursor.InputSize; i++ {
		if isLetter(input[i]) || isDigit(input[i]) || input[i] == '_' {
			matched++
			continue
		}
		break
	}
	return matched
}

// numberMatcher matches unsigned decimals with an optional exponent: 1, 0.5, .5, 2e-3
type numberMatcher struct{}

func (m *numberMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	size := cursor.InputSize
	i := cursor.Pos
	digits := 0
	for ; i < size && isDigit(input[i]); i++ {
		digits++
	}
	if i < size && input[i] == '.' {
		i++
		for ; i < size && isDigit(input[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < size && (input[i] == 'e' || input[i] == 'E') {
		j := i + 1
		if j < size && (input[j] == '+' || input[j] == '-') {
			j++
		}
		if j < size && isDigit(input[j]) {
			for j < size && isDigit(input[j]) {
				j++
			}
			i = j
		}
	}
	return i - cursor.Pos
}

// byteSetMatcher matches a single byte from set
type byteSetMatcher struct {
	set string
}

func (m *byteSetMatcher) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	if strings.IndexByte(m.set, cursor.Input[cursor.Pos]) == -1 {
		return 0
	}
	return 1
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
