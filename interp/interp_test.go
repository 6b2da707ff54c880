package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sawickiap/MinScriptLang-sub001/parser"
	"github.com/sawickiap/MinScriptLang-sub001/value"
)

type testPrinter struct{ b strings.Builder }

func (p *testPrinter) Print(s string) { p.b.WriteString(s) }

func runSource(t *testing.T, src string) (value.Value, string, error) {
	t.Helper()
	p, err := parser.New(src)
	require.NoError(t, err)
	prog, err := p.ParseProgram()
	require.NoError(t, err)

	out := &testPrinter{}
	in := New(out, 0)
	result, runErr := in.Run(prog)
	return result, out.b.String(), runErr
}

func TestArithmeticAndPrint(t *testing.T) {
	_, out, err := runSource(t, `print(1 + 2 * 3);`)
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	_, out, err := runSource(t, `print("foo" + "bar");`)
	require.NoError(t, err)
	require.Equal(t, "foobar\n", out)
}

func TestVariablesAndCompoundAssignment(t *testing.T) {
	_, out, err := runSource(t, `
		x = 10;
		x += 5;
		x *= 2;
		print(x);
	`)
	require.NoError(t, err)
	require.Equal(t, "30\n", out)
}

func TestIfElse(t *testing.T) {
	_, out, err := runSource(t, `
		if (1 < 2) { print("yes"); } else { print("no"); }
	`)
	require.NoError(t, err)
	require.Equal(t, "yes\n", out)
}

func TestWhileLoopWithBreakContinue(t *testing.T) {
	_, out, err := runSource(t, `
		i = 0;
		while (i < 10) {
			i++;
			if (i == 3) { continue; }
			if (i == 6) { break; }
			print(i);
		}
	`)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n4\n5\n", out)
}

func TestRangeForOverArraySnapshotsLength(t *testing.T) {
	_, out, err := runSource(t, `
		a = [1, 2, 3];
		for (v : a) {
			print(v);
			a.add(99);
		}
		print(a.count);
	`)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n6\n", out)
}

func TestRangeForOverObjectWithKeyAndValue(t *testing.T) {
	_, out, err := runSource(t, `
		o = { a: 1, b: 2 };
		sum = 0;
		for (k, v : o) { sum += v; }
		print(sum);
	`)
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestFunctionCallAndReturn(t *testing.T) {
	_, out, err := runSource(t, `
		function add(a, b) { return a + b; }
		print(add(2, 3));
	`)
	require.NoError(t, err)
	require.Equal(t, "5\n", out)
}

func TestClassSugarAndThisBinding(t *testing.T) {
	_, out, err := runSource(t, `
		class C {
			x: 1,
			function show() { print(this.x); }
		}
		c = C();
		c.show();
	`)
	require.NoError(t, err)
	require.Equal(t, "1\n", out)
}

func TestLocalAndGlobalQualifiersArePinnedToOneScope(t *testing.T) {
	_, out, err := runSource(t, `
		x = 1;
		function f() {
			local.x = 2;
			print(local.x);
			print(global.x);
			print(x);
		}
		f();
	`)
	require.NoError(t, err)
	require.Equal(t, "2\n1\n2\n", out)
}

func TestThisCandidatePropagationIntoConstructor(t *testing.T) {
	_, out, err := runSource(t, `
		class C {
			x: 1,
			'': function(v) { x = v; },
			function show() { global.print(this.x); }
		}
		C(7);
		C.show();
	`)
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestThrowCatchFinally(t *testing.T) {
	_, out, err := runSource(t, `
		try {
			throw "boom";
		} catch (e) {
			print(e);
		} finally {
			print("done");
		}
	`)
	require.NoError(t, err)
	require.Equal(t, "boom\ndone\n", out)
}

func TestCatchVariableIsClearedAfterCatchBlock(t *testing.T) {
	_, out, err := runSource(t, `
		try {
			throw "boom";
		} catch (e) {
		}
		print(e);
	`)
	require.NoError(t, err)
	require.Equal(t, "null\n", out)
}

func TestExecutionErrorCaughtAsObjectIncludesIndex(t *testing.T) {
	_, out, err := runSource(t, `
		try {
			x = null;
			x.y.z;
		} catch (e) {
			print(e.Type);
			print(typeOf(e.Index));
		}
	`)
	require.NoError(t, err)
	require.Equal(t, "ExecutionError\nNumber\n", out)
}

func TestExecutionErrorCaughtAsObject(t *testing.T) {
	_, out, err := runSource(t, `
		try {
			x = null;
			x.y.z;
		} catch (e) {
			print(e.Type);
		}
	`)
	require.NoError(t, err)
	require.Equal(t, "ExecutionError\n", out)
}

func TestSwitchFallthrough(t *testing.T) {
	_, out, err := runSource(t, `
		switch (2) {
		case 1:
			print("one");
		case 2:
			print("two");
		case 3:
			print("three");
			break;
		default:
			print("other");
		}
	`)
	require.NoError(t, err)
	require.Equal(t, "two\nthree\n", out)
}

func TestArrayBuiltinsAddInsertRemove(t *testing.T) {
	_, out, err := runSource(t, `
		a = [1, 2];
		a.add(3);
		a.insert(0, 0);
		a.remove(1);
		print(a[0]);
		print(a[1]);
		print(a[2]);
		print(a.count);
	`)
	require.NoError(t, err)
	require.Equal(t, "0\n2\n3\n3\n", out)
}

func TestTypeOfAndTypeConstructors(t *testing.T) {
	_, out, err := runSource(t, `
		print(typeOf(1));
		print(typeOf("s"));
		print(Number(42) + 1);
	`)
	require.NoError(t, err)
	require.Equal(t, "Number\nString\n43\n", out)
}

func TestTypeConstructorWithWrongArgumentTypeIsExecutionError(t *testing.T) {
	_, _, err := runSource(t, `Number("42");`)
	require.Error(t, err)
}

func TestNoBooleanVariantTrueFalseAreNumbers(t *testing.T) {
	_, out, err := runSource(t, `
		print(typeOf(true));
		print(true + true);
	`)
	require.NoError(t, err)
	require.Equal(t, "Number\n2\n", out)
}

func TestBreakOutsideLoopIsExecutionError(t *testing.T) {
	_, _, err := runSource(t, `break;`)
	require.Error(t, err)
}

func TestCallStackOverflowIsExecutionError(t *testing.T) {
	_, _, err := runSource(t, `
		function rec() { return rec(); }
		rec();
	`)
	require.Error(t, err)
}
