// PURPOSE: System-level snapshot tests. Each case runs a complete script
// through the interpreter host façade and snapshots its stdout, catching
// regressions in how the lexer, parser, and tree-walking evaluator compose
// that package-local unit tests don't exercise end to end.
package tests

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/sawickiap/MinScriptLang-sub001/interpreter"
)

func runScript(t *testing.T, src string) string {
	t.Helper()
	in := interpreter.New(0)
	_, err := in.Execute(src)
	require.NoError(t, err)
	return in.Output()
}

func TestSystemFibonacciRecursion(t *testing.T) {
	out := runScript(t, `
		function fib(n) {
			if (n < 2) { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		for (i = 0; i < 10; i++) {
			print(fib(i));
		}
	`)
	snaps.MatchSnapshot(t, out)
}

func TestSystemClassInheritanceAndOverride(t *testing.T) {
	out := runScript(t, `
		class Animal {
			name: "animal",
			function speak() { print(this.name + " makes a sound"); }
		}
		class Dog : Animal {
			name: "dog",
			function speak() { print(this.name + " barks"); }
		}
		a = Animal();
		d = Dog();
		a.speak();
		d.speak();
	`)
	snaps.MatchSnapshot(t, out)
}

func TestSystemArrayAndObjectBuiltins(t *testing.T) {
	out := runScript(t, `
		a = [3, 1, 2];
		a.add(4);
		a.insert(0, 0);
		for (v : a) { print(v); }

		o = { x: 1, y: 2 };
		sum = 0;
		for (k, v : o) { sum += v; }
		print(sum);
		print(o.count);
	`)
	snaps.MatchSnapshot(t, out)
}

func TestSystemExceptionHandlingAcrossFunctions(t *testing.T) {
	out := runScript(t, `
		function risky(n) {
			if (n < 0) { throw "negative"; }
			return n * 2;
		}
		function safeCall(n) {
			try {
				return risky(n);
			} catch (e) {
				print("caught: " + e);
				return -1;
			} finally {
				print("cleanup", n);
			}
		}
		print(safeCall(5));
		print(safeCall(-3));
	`)
	snaps.MatchSnapshot(t, out)
}

func TestSystemSwitchAndSwitchFallthrough(t *testing.T) {
	out := runScript(t, `
		function grade(tier) {
			switch (tier) {
			case 10:
			case 9:
				return "A";
			case 8:
				return "B";
			default:
				return "F";
			}
		}
		print(grade(10));
		print(grade(9));
		print(grade(5));
	`)
	snaps.MatchSnapshot(t, out)
}
