// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package generators holds example recursion steps for the fix combinators.
//
// Each function comes in three shapes: a lazy [fix.Generator], a
// trampolined [fix.GeneratorExpr], and a named-recursive reference used to
// cross-check the fixed points.
package generators

import "code.hybscloud.com/fix"

// Factorial computes n! for n >= 0. Non-positive n takes the base case.
func Factorial(self fix.Thunk[int]) fix.Fn[int] {
	return func(n int) int {
		if n <= 0 {
			return 1
		}
		return n * self()(n-1)
	}
}

// FactorialExpr is the trampolined form of [Factorial].
func FactorialExpr(self fix.ThunkExpr[int]) fix.FnExpr[int] {
	return func(n int) fix.Expr[int] {
		if n <= 0 {
			return fix.ExprReturn(1)
		}
		return fix.ExprMap(fix.Recur(self, n-1), func(r int) int { return n * r })
	}
}

// FactorialRec is the named-recursive reference for [Factorial].
func FactorialRec(n int) int {
	if n <= 0 {
		return 1
	}
	return n * FactorialRec(n-1)
}

// Fibonacci computes the n-th Fibonacci number with two recursive calls
// per step. Each call re-derives the fixed point through self.
func Fibonacci(self fix.Thunk[int]) fix.Fn[int] {
	return func(n int) int {
		if n < 2 {
			return n
		}
		return self()(n-1) + self()(n-2)
	}
}

// FibonacciExpr is the trampolined form of [Fibonacci].
func FibonacciExpr(self fix.ThunkExpr[int]) fix.FnExpr[int] {
	return func(n int) fix.Expr[int] {
		if n < 2 {
			return fix.ExprReturn(n)
		}
		return fix.ExprBind(fix.Recur(self, n-1), func(a int) fix.Expr[int] {
			return fix.ExprMap(fix.Recur(self, n-2), func(b int) int { return a + b })
		})
	}
}

// FibonacciRec is the named-recursive reference for [Fibonacci].
func FibonacciRec(n int) int {
	if n < 2 {
		return n
	}
	return FibonacciRec(n-1) + FibonacciRec(n-2)
}

// DigitSum adds the decimal digits of |n|.
// The argument shrinks by division rather than decrement.
func DigitSum(self fix.Thunk[int]) fix.Fn[int] {
	return func(n int) int {
		last, rest := splitDigit(n)
		if rest == 0 {
			return last
		}
		return last + self()(rest)
	}
}

// DigitSumExpr is the trampolined form of [DigitSum].
func DigitSumExpr(self fix.ThunkExpr[int]) fix.FnExpr[int] {
	return func(n int) fix.Expr[int] {
		last, rest := splitDigit(n)
		if rest == 0 {
			return fix.ExprReturn(last)
		}
		return fix.ExprMap(fix.Recur(self, rest), func(r int) int { return last + r })
	}
}

// DigitSumRec is the named-recursive reference for [DigitSum].
func DigitSumRec(n int) int {
	last, rest := splitDigit(n)
	if rest == 0 {
		return last
	}
	return last + DigitSumRec(rest)
}

// Triangular computes 0 + 1 + ... + n. Non-positive n yields 0.
func Triangular(self fix.Thunk[int]) fix.Fn[int] {
	return func(n int) int {
		if n <= 0 {
			return 0
		}
		return n + self()(n-1)
	}
}

// TriangularExpr is the trampolined form of [Triangular].
func TriangularExpr(self fix.ThunkExpr[int]) fix.FnExpr[int] {
	return func(n int) fix.Expr[int] {
		if n <= 0 {
			return fix.ExprReturn(0)
		}
		return fix.ExprMap(fix.Recur(self, n-1), func(r int) int { return n + r })
	}
}

// TriangularRec is the named-recursive reference for [Triangular].
func TriangularRec(n int) int {
	if n <= 0 {
		return 0
	}
	return n + TriangularRec(n-1)
}

// Runaway never reaches a base case: every step recurses on a larger
// argument. Under [fix.Y] it exhausts the stack; use it with
// [fix.YBounded] or [fix.TrampolineBudget].
func Runaway(self fix.Thunk[int]) fix.Fn[int] {
	return func(n int) int {
		return 1 + self()(n+1)
	}
}

// RunawayExpr is the trampolined form of [Runaway].
func RunawayExpr(self fix.ThunkExpr[int]) fix.FnExpr[int] {
	return func(n int) fix.Expr[int] {
		return fix.ExprMap(fix.Recur(self, n+1), func(r int) int { return 1 + r })
	}
}

// splitDigit returns the last decimal digit of |n| and |n| with that digit
// removed. It negates only after dividing, so math.MinInt does not overflow.
func splitDigit(n int) (last, rest int) {
	last, rest = n%10, n/10
	if n < 0 {
		last, rest = -last, -rest
	}
	return last, rest
}
