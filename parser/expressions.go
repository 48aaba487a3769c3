/*
File    : lox/parser/expressions.go

expression precedence chain, lowest to highest:

	expression -> assignment
	assignment -> ( call "." )? IDENT "=" assignment | logic_or
	logic_or   -> logic_and ( "or" logic_and )*
	logic_and  -> equality ( "and" equality )*
	equality   -> comparison ( ("!="|"==") comparison )*
	comparison -> term ( (">"|">="|"<"|"<=") term )*
	term       -> factor ( ("-"|"+") factor )*
	factor     -> unary ( ("/"|"*") unary )*
	unary      -> ("!"|"-") unary | call
	call       -> primary ( "(" args? ")" | "." IDENT )*
	primary    -> "true"|"false"|"nil"|"this"|NUMBER|STRING|IDENT
	            | "(" expression ")" | "super" "." IDENT
*/
package parser

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative: it first parses the left side as an
// r-value, then — only if a '=' follows — requires that left side to
// already be a Variable or Get, converting it to Assign/Set. Any other
// left side is reported as an "invalid assignment target" error after the
// '=' and the right-hand side have been consumed; the error does not
// unwind or synchronize, so the statement's ';' is parsed as usual.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Base: ast.Base{NodeID: p.nextID()}, Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Base: ast.Base{NodeID: p.nextID()}, Object: target.Object, Name: target.Name, Value: value}
		default:
			p.error(equals, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Base: ast.Base{NodeID: p.nextID()}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Base: ast.Base{NodeID: p.nextID()}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Base: ast.Base{NodeID: p.nextID()}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Base: ast.Base{NodeID: p.nextID()}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Base: ast.Base{NodeID: p.nextID()}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Base: ast.Base{NodeID: p.nextID()}, Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Base: ast.Base{NodeID: p.nextID()}, Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "expect property name after '.'")
			expr = &ast.Get{Base: ast.Base{NodeID: p.nextID()}, Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.error(p.peek(), "can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "expect ')' after arguments")
	return &ast.Call{Base: ast.Base{NodeID: p.nextID()}, Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Base: ast.Base{NodeID: p.nextID()}, Value: false}
	case p.match(lexer.TRUE):
		return &ast.Literal{Base: ast.Base{NodeID: p.nextID()}, Value: true}
	case p.match(lexer.NIL):
		return &ast.Literal{Base: ast.Base{NodeID: p.nextID()}, Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.Literal{Base: ast.Base{NodeID: p.nextID()}, Value: p.previous().Literal}
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "expect '.' after 'super'")
		method := p.consume(lexer.IDENTIFIER, "expect superclass method name")
		return &ast.Super{Base: ast.Base{NodeID: p.nextID()}, Keyword: keyword, Method: method}
	case p.match(lexer.THIS):
		return &ast.This{Base: ast.Base{NodeID: p.nextID()}, Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Base: ast.Base{NodeID: p.nextID()}, Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "expect ')' after expression")
		return &ast.Grouping{Base: ast.Base{NodeID: p.nextID()}, Expression: expr}
	default:
		panic(p.error(p.peek(), "expect expression"))
	}
}
