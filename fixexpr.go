// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// Trampolined fixed points.
// Same thunk discipline as Y, but each step returns an Expr so that the
// recursive call is deferred into the evaluator loop instead of the Go
// stack.

// FnExpr is a recursive function whose result is a pending computation.
type FnExpr[T any] func(T) Expr[T]

// ThunkExpr re-derives a trampolined fixed point on every call.
type ThunkExpr[T any] func() FnExpr[T]

// GeneratorExpr defines one unfolding step of a trampolined function.
// Recursive calls go through [Recur] so that they stay suspended.
type GeneratorExpr[T any] func(self ThunkExpr[T]) FnExpr[T]

// YExpr returns the trampolined fixed point of g.
// Like [Y], it never recurses by itself.
func YExpr[T any](g GeneratorExpr[T]) FnExpr[T] {
	if g == nil {
		panic("fix: nil generator")
	}
	f := g(func() FnExpr[T] { return YExpr(g) })
	if f == nil {
		nilFixedPoint()
	}
	return f
}

// Recur suspends the recursive call self()(x).
// Neither self nor the function it returns runs until the evaluator
// reaches the deferred frame.
func Recur[T any](self ThunkExpr[T], x T) Expr[T] {
	return ExprDefer(func() Expr[T] {
		return self()(x)
	})
}

// Trampoline returns a direct-style function for g.
// Each call evaluates the fixed point with [RunPure]; the result equals
// what [Y] computes for the equivalent lazy generator, without consuming
// Go stack per unfolding.
//
// Example:
//
//	sum := fix.Trampoline(func(self fix.ThunkExpr[int]) fix.FnExpr[int] {
//		return func(n int) fix.Expr[int] {
//			if n == 0 {
//				return fix.ExprReturn(0)
//			}
//			return fix.ExprMap(fix.Recur(self, n-1), func(r int) int { return n + r })
//		}
//	})
//	// sum(1_000_000) == 500000500000
func Trampoline[T any](g GeneratorExpr[T]) Fn[T] {
	fe := YExpr(g)
	return func(x T) T {
		return RunPure(fe(x))
	}
}

// TrampolineBudget is like [Trampoline] but evaluates each call with
// [RunBudget], returning an error once budget steps are used up.
func TrampolineBudget[T any](g GeneratorExpr[T], budget int) func(T) (T, error) {
	if budget <= 0 {
		nonPositiveLimit(budget)
	}
	fe := YExpr(g)
	return func(x T) (T, error) {
		return RunBudget(fe(x), budget)
	}
}
