/*
File    : lox/parser/declarations.go

declaration, statement and the productions between them:

	program       -> declaration* EOF
	declaration   -> classDecl | funDecl | varDecl | statement
	classDecl     -> "class" IDENT ( "<" IDENT )? "{" function* "}"
	funDecl       -> "fun" function
	function      -> IDENT "(" params? ")" "{" block
	varDecl       -> "var" IDENT ( "=" expression )? ";"
*/
package parser

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/lexer"
)

// declaration parses one top-level or block-level declaration, recovering
// via synchronize() if it fails partway through.
func (p *Parser) declaration() ast.Stmt {
	return p.recoverStmt(func() ast.Stmt {
		switch {
		case p.match(lexer.CLASS):
			return p.classDeclaration()
		case p.match(lexer.FUN):
			return p.function("function")
		case p.match(lexer.VAR):
			return p.varDeclaration()
		default:
			return p.statement()
		}
	})
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "expect class name")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		p.consume(lexer.IDENTIFIER, "expect superclass name")
		superclass = &ast.Variable{Base: ast.Base{NodeID: p.nextID()}, Name: p.previous()}
	}

	p.consume(lexer.LEFT_BRACE, "expect '{' before class body")
	var methods []*ast.FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method").(*ast.FunctionStmt))
	}
	p.consume(lexer.RIGHT_BRACE, "expect '}' after class body")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function parses a "function" production: IDENT "(" params? ")" block.
// kind is only used to word error messages ("function"/"method").
func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "expect "+kind+" name")
	p.consume(lexer.LEFT_PAREN, "expect '(' after "+kind+" name")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.error(p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "expect parameter name"))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "expect ')' after parameters")

	p.consume(lexer.LEFT_BRACE, "expect '{' before "+kind+" body")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "expect variable name")
	var init ast.Expr
	if p.match(lexer.EQUAL) {
		init = p.expression()
	}
	p.consume(lexer.SEMICOLON, "expect ';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: init}
}
