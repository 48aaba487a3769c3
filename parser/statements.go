/*
File    : lox/parser/statements.go

statement and the grammar productions below it:

	statement  -> exprStmt | forStmt | ifStmt | printStmt
	            | returnStmt | whileStmt | block
	block      -> "{" declaration* "}"
	exprStmt   -> expression ";"
	printStmt  -> "print" expression ";"
	returnStmt -> "return" expression? ";"
	ifStmt     -> "if" "(" expression ")" statement ( "else" statement )?
	whileStmt  -> "while" "(" expression ")" statement
	forStmt    -> "for" "(" (varDecl | exprStmt | ";")
	                        expression? ";" expression? ")" statement
*/
package parser

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/lexer"
)

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "expect '}' after block")
	return stmts
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "expect ';' after value")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "expect ';' after expression")
	return &ast.ExprStmt{Expression: expr}
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "expect '(' after 'if'")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "expect ')' after if condition")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "expect '(' after 'while'")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "expect ')' after condition")
	body := p.statement()
	return &ast.WhileStmt{Condition: cond, Body: body}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "expect ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// forStatement desugars "for" into a while loop wrapped in a block, as
// spec.md mandates: the initializer (if any) is the block's first
// statement and runs once before the loop, the increment (if any) is
// appended as the loop body's last statement, and a missing condition
// becomes literal true.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "expect '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "expect ';' after loop condition")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "expect ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExprStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	stmts := []ast.Stmt{body}
	if initializer != nil {
		stmts = []ast.Stmt{initializer, body}
	}
	return &ast.BlockStmt{Statements: stmts}
}
