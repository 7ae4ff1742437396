// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fix provides fixed-point combinators for Go.
//
// A fixed-point combinator gives recursion to a function that cannot name
// itself. The caller writes a [Generator]: a function that receives a way to
// obtain "itself" and returns one unfolding step. [Y] ties the knot.
//
// # Thunks and Eager Evaluation
//
// Go evaluates arguments before a call proceeds. Handing the fixed point
// directly to the generator would require computing Y(g) in order to compute
// Y(g), which never finishes. [Y] therefore passes a [Thunk]: a zero-argument
// function that re-applies the combinator when called. The generator calls
// the thunk only on its recursive branch:
//
//	self()(n - 1) // correct: obtain the function, then call it
//	self(n - 1)   // rejected by the compiler: Thunk takes no arguments
//
// Thunks are not memoized. A descent of depth n performs n re-derivations,
// each allocating one Thunk and one [Fn].
//
// # Core Types
//
//   - [Fn]: Recursive function value, func(T) T
//   - [Thunk]: Deferred self-reference, func() Fn[T]
//   - [Generator]: One unfolding step, func(Thunk[T]) Fn[T]
//   - [Y]: Fixed point of a generator
//
// # Bounded Evaluation
//
// A generator whose base case never triggers exhausts the Go stack, which
// aborts the process. [YBounded] imposes a nesting ceiling and reports the
// runaway as a [*LimitError] wrapping [ErrDepthExceeded].
//
// # Trampolined Fixed Points
//
// The defunctionalized [Expr] type carries pending work as frame data.
// Generators written against [GeneratorExpr] defer their recursive call with
// [Recur]; [RunPure] then unfolds the recursion in a loop instead of on the
// Go stack.
//
//   - [Expr], [Frame], [ReturnFrame], [BindFrame], [MapFrame]: Frame chain
//   - [ExprReturn], [ExprBind], [ExprMap], [ExprDefer]: Constructors
//   - [RunPure]: Evaluate to completion
//   - [RunBudget]: Evaluate with a step budget ([ErrStepBudget])
//   - [YExpr], [Recur]: Trampolined combinator and deferred self-call
//   - [Trampoline], [TrampolineBudget]: Direct-style wrappers
//
// # Contract Faults
//
// Misuse panics with a "fix: " prefixed message: a nil generator, a
// generator that returns a nil function, or a non-positive limit. Limit
// violations during evaluation are returned as errors.
//
// # Example
//
//	fib := fix.Y(func(self fix.Thunk[int]) fix.Fn[int] {
//		return func(n int) int {
//			if n < 2 {
//				return n
//			}
//			return self()(n-1) + self()(n-2)
//		}
//	})
//	// fib(10) == 55
package fix
