/*
File    : lox/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxwalk/lox/loxerr"
)

func scan(t *testing.T, src string) ([]Token, *loxerr.Reporter) {
	t.Helper()
	rep := &loxerr.Reporter{}
	toks := New(src, rep).ScanTokens()
	return toks, rep
}

func typesOf(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	toks, rep := scan(t, "(){},.-+;*")
	assert.False(t, rep.HadError())
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, EOF,
	}, typesOf(toks))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	toks, rep := scan(t, "!= == <= >= ! = < >")
	assert.False(t, rep.HadError())
	assert.Equal(t, []TokenType{
		BANG_EQUAL, EQUAL_EQUAL, LESS_EQUAL, GREATER_EQUAL,
		BANG, EQUAL, LESS, GREATER, EOF,
	}, typesOf(toks))
}

func TestScanTokens_Comment(t *testing.T) {
	toks, rep := scan(t, "1 // a comment\n2")
	assert.False(t, rep.HadError())
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, typesOf(toks))
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanTokens_String(t *testing.T) {
	toks, rep := scan(t, `"hello\nworld"`)
	assert.False(t, rep.HadError())
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, `hello\nworld`, toks[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, rep := scan(t, `"never closed`)
	assert.True(t, rep.HadError())
	assert.Equal(t, loxerr.Lex, rep.Errors()[0].Kind)
}

func TestScanTokens_Number(t *testing.T) {
	toks, _ := scan(t, "123 45.67")
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	toks, _ := scan(t, "class and orchard")
	assert.Equal(t, CLASS, toks[0].Type)
	assert.Equal(t, AND, toks[1].Type)
	assert.Equal(t, IDENTIFIER, toks[2].Type)
}

func TestScanTokens_UnknownCharacter(t *testing.T) {
	_, rep := scan(t, "@")
	assert.True(t, rep.HadError())
	assert.Equal(t, loxerr.Lex, rep.Errors()[0].Kind)
}

func TestScanTokens_LineCounting(t *testing.T) {
	toks, _ := scan(t, "1\n2\n\n3")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 4, toks[2].Line)
}
