/*
File    : lox/resolver/resolver_test.go
*/
package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/lexer"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/parser"
	"github.com/loxwalk/lox/resolver"
)

// fakeInterp records every (nodeID, depth) pair Resolve is called with, so
// tests can assert on recorded distances without depending on interp.
type fakeInterp struct {
	resolved map[int]int
}

func newFakeInterp() *fakeInterp { return &fakeInterp{resolved: map[int]int{}} }

func (f *fakeInterp) Resolve(nodeID, depth int) { f.resolved[nodeID] = depth }

func resolve(t *testing.T, src string) ([]ast.Stmt, *fakeInterp, *loxerr.Reporter) {
	t.Helper()
	rep := &loxerr.Reporter{}
	toks := lexer.New(src, rep).ScanTokens()
	require.False(t, rep.HadError())
	stmts := parser.New(toks, rep).Parse()
	require.False(t, rep.HadError())

	fi := newFakeInterp()
	resolver.New(fi, rep).Resolve(stmts)
	return stmts, fi, rep
}

func TestResolve_LocalVariableDistance(t *testing.T) {
	_, fi, rep := resolve(t, `
var a = "global";
{ var a = "local"; print a; }
`)
	require.False(t, rep.HadError())
	assert.Len(t, fi.resolved, 1, "the inner 'print a' should resolve to the block's local")
}

func TestResolve_ReadInOwnInitializerIsError(t *testing.T) {
	_, _, rep := resolve(t, `var a = "outer"; { var a = a; }`)
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "own initializer")
}

func TestResolve_DuplicateLocalDeclarationIsError(t *testing.T) {
	_, _, rep := resolve(t, `{ var a = 1; var a = 2; }`)
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "already a variable named")
}

func TestResolve_DuplicateGlobalIsAllowed(t *testing.T) {
	_, _, rep := resolve(t, `var a = 1; var a = 2;`)
	assert.False(t, rep.HadError())
}

func TestResolve_ReturnOutsideFunctionIsError(t *testing.T) {
	_, _, rep := resolve(t, `return 1;`)
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "return")
}

func TestResolve_ValueReturnFromInitializerIsError(t *testing.T) {
	_, _, rep := resolve(t, `class C { init() { return 1; } }`)
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "initializer")
}

func TestResolve_BareReturnFromInitializerIsAllowed(t *testing.T) {
	_, _, rep := resolve(t, `class C { init() { return; } }`)
	assert.False(t, rep.HadError())
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	_, _, rep := resolve(t, `print this;`)
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "this")
}

func TestResolve_SuperOutsideClassIsError(t *testing.T) {
	_, _, rep := resolve(t, `print super.hello();`)
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "super")
}

func TestResolve_SuperInClassWithNoSuperclassIsError(t *testing.T) {
	_, _, rep := resolve(t, `class A { hello() { super.hello(); } }`)
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "no superclass")
}

func TestResolve_ClassInheritingFromItselfIsError(t *testing.T) {
	_, _, rep := resolve(t, `class A < A {}`)
	require.True(t, rep.HadError())
	assert.Contains(t, rep.Errors()[0].Error(), "inherit from itself")
}

func TestResolve_ValidSubclassUsesSuperAndThis(t *testing.T) {
	_, _, rep := resolve(t, `
class A { hello() { print "A"; } }
class B < A { hello() { super.hello(); print this; } }
`)
	assert.False(t, rep.HadError())
}
