// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix_test

import (
	"errors"
	"math"
	"testing"

	"code.hybscloud.com/fix"
	"code.hybscloud.com/fix/generators"
)

// counting wraps g so that every generator application and every thunk
// call is recorded.
func counting(g fix.Generator[int], gens, thunks *int) fix.Generator[int] {
	return func(self fix.Thunk[int]) fix.Fn[int] {
		*gens++
		return g(func() fix.Fn[int] {
			*thunks++
			return self()
		})
	}
}

func TestYFactorial(t *testing.T) {
	fact := fix.Y(generators.Factorial)
	tests := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{7, 5040},
	}
	for _, tt := range tests {
		if got := fact(tt.n); got != tt.want {
			t.Fatalf("fact(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestYFactorialMatchesNamedRecursion(t *testing.T) {
	fact := fix.Y(generators.Factorial)
	want := 1
	for n := range 21 {
		if n > 0 {
			want *= n
		}
		if got := fact(n); got != want {
			t.Fatalf("fact(%d) = %d, want %d", n, got, want)
		}
		if ref := generators.FactorialRec(n); ref != want {
			t.Fatalf("FactorialRec(%d) = %d, want %d", n, ref, want)
		}
	}
}

func TestYFibonacci(t *testing.T) {
	fib := fix.Y(generators.Fibonacci)
	if got := fib(10); got != 55 {
		t.Fatalf("fib(10) = %d, want 55", got)
	}
	for n := range 20 {
		if got, want := fib(n), generators.FibonacciRec(n); got != want {
			t.Fatalf("fib(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestYDigitSum(t *testing.T) {
	ds := fix.Y(generators.DigitSum)
	for _, n := range []int{0, 7, 10, 99, 12345, -4321, 1_000_000_007} {
		if got, want := ds(n), generators.DigitSumRec(n); got != want {
			t.Fatalf("digitsum(%d) = %d, want %d", n, got, want)
		}
	}
	if got := ds(98765); got != 35 {
		t.Fatalf("digitsum(98765) = %d, want 35", got)
	}
	// |math.MinInt| is not representable as an int.
	if got := ds(math.MinInt64); got != 89 {
		t.Fatalf("digitsum(MinInt64) = %d, want 89", got)
	}
	if got := ds(math.MaxInt64); got != 88 {
		t.Fatalf("digitsum(MaxInt64) = %d, want 88", got)
	}
}

func TestYDeterministic(t *testing.T) {
	fact := fix.Y(generators.Factorial)
	first := fact(10)
	second := fact(10)
	if first != second {
		t.Fatalf("fact(10) drifted: %d then %d", first, second)
	}
	if first != 3628800 {
		t.Fatalf("got %d, want 3628800", first)
	}
}

func TestYConstructionDoesNotRecurse(t *testing.T) {
	var gens, thunks int
	fix.Y(counting(generators.Factorial, &gens, &thunks))
	if gens != 1 {
		t.Fatalf("generator applied %d times, want 1", gens)
	}
	if thunks != 0 {
		t.Fatalf("thunk called %d times during construction, want 0", thunks)
	}
}

func TestYBaseCaseSkipsThunk(t *testing.T) {
	var gens, thunks int
	fact := fix.Y(counting(generators.Factorial, &gens, &thunks))
	if got := fact(0); got != 1 {
		t.Fatalf("fact(0) = %d, want 1", got)
	}
	if thunks != 0 {
		t.Fatalf("thunk called %d times for base case, want 0", thunks)
	}
}

func TestYThunkRederivesPerUnfolding(t *testing.T) {
	var gens, thunks int
	fact := fix.Y(counting(generators.Factorial, &gens, &thunks))
	if got := fact(5); got != 120 {
		t.Fatalf("fact(5) = %d, want 120", got)
	}
	// One thunk call per unfolding, and each one re-applies the generator.
	if thunks != 5 {
		t.Fatalf("thunk called %d times, want 5", thunks)
	}
	if gens != 1+5 {
		t.Fatalf("generator applied %d times, want 6", gens)
	}
}

func TestThunkIsNotMemoized(t *testing.T) {
	var captured fix.Thunk[int]
	var gens int
	fix.Y(func(self fix.Thunk[int]) fix.Fn[int] {
		gens++
		if captured == nil {
			captured = self
		}
		return generators.Factorial(self)
	})
	a := captured()
	b := captured()
	if gens != 3 {
		t.Fatalf("generator applied %d times, want 3", gens)
	}
	if a(6) != b(6) || a(6) != 720 {
		t.Fatalf("thunk results disagree: %d, %d", a(6), b(6))
	}
}

// errEagerCeiling stops eagerY before it overflows the stack.
var errEagerCeiling = errors.New("eager self-application ceiling")

// eagerY is Y without the thunk: the generator receives the fixed point
// itself, so the fixed point must be built before the generator can run.
func eagerY(g func(fix.Fn[int]) fix.Fn[int], depth *int, ceiling int) fix.Fn[int] {
	*depth++
	if *depth > ceiling {
		panic(errEagerCeiling)
	}
	return g(eagerY(g, depth, ceiling))
}

func TestEagerSelfApplicationDiverges(t *testing.T) {
	const ceiling = 1000
	var depth, gens int
	eagerFactorial := func(self fix.Fn[int]) fix.Fn[int] {
		gens++
		return func(n int) int {
			if n <= 0 {
				return 1
			}
			return n * self(n-1)
		}
	}

	func() {
		defer func() {
			r := recover()
			if r != errEagerCeiling {
				t.Fatalf("recover() = %v, want %v", r, errEagerCeiling)
			}
		}()
		eagerY(eagerFactorial, &depth, ceiling)
		t.Fatal("eager self-application returned")
	}()
	if gens != 0 {
		t.Fatalf("generator ran %d times, want 0", gens)
	}
	if depth != ceiling+1 {
		t.Fatalf("depth = %d, want %d", depth, ceiling+1)
	}

	// The lazy form of the same function terminates after five unfoldings.
	var lazyGens, thunks int
	fact := fix.Y(counting(generators.Factorial, &lazyGens, &thunks))
	if got := fact(5); got != 120 {
		t.Fatalf("fact(5) = %d, want 120", got)
	}
	if thunks > 5 {
		t.Fatalf("lazy form used %d thunk calls, want at most 5", thunks)
	}
}

func TestYNilGeneratorPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "fix: nil generator" {
			t.Fatalf("recover() = %v, want %q", r, "fix: nil generator")
		}
	}()
	fix.Y[int](nil)
}

func TestYNilFixedPointPanics(t *testing.T) {
	defer func() {
		want := "fix: generator returned nil function"
		if r := recover(); r != want {
			t.Fatalf("recover() = %v, want %q", r, want)
		}
	}()
	fix.Y(func(fix.Thunk[int]) fix.Fn[int] { return nil })
}

func TestYString(t *testing.T) {
	// T need not be numeric: drop the first rune until empty.
	count := fix.Y(func(self fix.Thunk[string]) fix.Fn[string] {
		return func(s string) string {
			if s == "" {
				return ""
			}
			return "." + self()(s[1:])
		}
	})
	if got := count("hello"); got != "....." {
		t.Fatalf("got %q, want %q", got, ".....")
	}
}
