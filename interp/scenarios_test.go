/*
File    : lox/interp/scenarios_test.go

Golden-style scenario tests: run a full program through the
lexer -> parser -> resolver -> evaluator pipeline and assert captured
stdout. These are the six worked scenarios from spec.md §8.
*/
package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxwalk/lox/interp"
	"github.com/loxwalk/lox/loxerr"
)

func runProgram(t *testing.T, src string) string {
	t.Helper()
	rep := &loxerr.Reporter{}
	it := interp.New(rep)
	var buf bytes.Buffer
	it.SetWriter(&buf)

	err := interp.Run(src, it, rep)
	require.NoError(t, err, "program should run without error: %v", rep.Errors())
	return buf.String()
}

func TestScenario_ClosuresCaptureNotCopy(t *testing.T) {
	out := runProgram(t, `
var a = "global";
{ fun show() { print a; } show(); var a = "block"; show(); }
`)
	assert.Equal(t, "global\nglobal\n", out)
}

func TestScenario_CounterFactory(t *testing.T) {
	out := runProgram(t, `
fun makeCounter() { var i = 0; fun count() { i = i + 1; print i; } return count; }
var c = makeCounter(); c(); c(); c();
`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestScenario_MethodBindingOutlivesLookup(t *testing.T) {
	out := runProgram(t, `
class Box { say() { print this.value; } }
var b = Box(); b.value = "hi"; var m = b.say; m();
`)
	assert.Equal(t, "hi\n", out)
}

func TestScenario_SuperclassMethodViaSuper(t *testing.T) {
	out := runProgram(t, `
class A { hello() { print "A"; } }
class B < A { hello() { super.hello(); print "B"; } }
B().hello();
`)
	assert.Equal(t, "A\nB\n", out)
}

func TestScenario_InitReturnForcesInstance(t *testing.T) {
	out := runProgram(t, `
class X { init() { return; } }
print X();
`)
	assert.Equal(t, "X instance\n", out)
}

func TestScenario_ShortCircuitReturnsOperand(t *testing.T) {
	out := runProgram(t, `print nil or "hi"; print 1 and 2;`)
	assert.Equal(t, "hi\n2\n", out)
}
