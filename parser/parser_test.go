/*
File    : lox/parser/parser_test.go
*/
package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/lexer"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/parser"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *loxerr.Reporter) {
	t.Helper()
	rep := &loxerr.Reporter{}
	toks := lexer.New(src, rep).ScanTokens()
	require.False(t, rep.HadError(), "unexpected lex error: %v", rep.Errors())
	stmts := parser.New(toks, rep).Parse()
	return stmts, rep
}

func TestParse_ExpressionPrecedence(t *testing.T) {
	stmts, rep := parse(t, "print 1 + 2 * 3;")
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)

	p, ok := stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
	bin, ok := p.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Operator.Type)

	_, ok = bin.Left.(*ast.Literal)
	require.True(t, ok)

	rightBin, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.STAR, rightBin.Operator.Type)
}

func TestParse_VarDeclarationNoInitializer(t *testing.T) {
	stmts, rep := parse(t, "var x;")
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)

	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	assert.Nil(t, v.Initializer)
}

func TestParse_ForDesugarsToWhileInBlock(t *testing.T) {
	stmts, rep := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "for loop should desugar into an enclosing block")
	require.Len(t, block.Statements, 2)

	_, ok = block.Statements[0].(*ast.VarStmt)
	require.True(t, ok, "first statement should be the initializer")

	while, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement should be the desugared while loop")

	whileBody, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok, "while body should be a block of {original body; increment}")
	require.Len(t, whileBody.Statements, 2)
}

func TestParse_ForWithoutConditionDefaultsTrue(t *testing.T) {
	stmts, rep := parse(t, "for (;;) print 1;")
	require.False(t, rep.HadError())

	block := stmts[0].(*ast.BlockStmt)
	while := block.Statements[0].(*ast.WhileStmt)

	lit, ok := while.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_ClassWithSuperclass(t *testing.T) {
	stmts, rep := parse(t, "class B < A { hello() { return 1; } }")
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)

	cls, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "B", cls.Name.Lexeme)
	require.NotNil(t, cls.Superclass)
	assert.Equal(t, "A", cls.Superclass.Name.Lexeme)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "hello", cls.Methods[0].Name.Lexeme)
}

func TestParse_AssignmentTargetValidation(t *testing.T) {
	_, rep := parse(t, "1 + 2 = 3;")
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "invalid assignment target")
}

func TestParse_MissingSemicolonReportsAndSynchronizes(t *testing.T) {
	stmts, rep := parse(t, "var x = 1\nvar y = 2;")
	require.True(t, rep.HadError())
	// synchronization should still recover the second declaration
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.VarStmt); ok && v.Name.Lexeme == "y" {
			found = true
		}
	}
	assert.True(t, found, "parser should resynchronize and still parse 'var y'")
}

func TestParse_CallArgumentLimit(t *testing.T) {
	src := "fun f() {} f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	_, rep := parse(t, src)
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "255 arguments")
}

func TestParse_UnaryAndGrouping(t *testing.T) {
	stmts, rep := parse(t, "print -(1 + 2);")
	require.False(t, rep.HadError())

	p := stmts[0].(*ast.PrintStmt)
	unary, ok := p.Expression.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, lexer.MINUS, unary.Operator.Type)

	_, ok = unary.Right.(*ast.Grouping)
	require.True(t, ok)
}

func TestParse_LogicalOperators(t *testing.T) {
	stmts, rep := parse(t, "print true and false or true;")
	require.False(t, rep.HadError())

	p := stmts[0].(*ast.PrintStmt)
	outer, ok := p.Expression.(*ast.Logical)
	require.True(t, ok)
	assert.Equal(t, lexer.OR, outer.Operator.Type)

	inner, ok := outer.Left.(*ast.Logical)
	require.True(t, ok)
	assert.Equal(t, lexer.AND, inner.Operator.Type)
}
