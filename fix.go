// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// Fn is a recursive function value of one argument.
// The fixed point produced by [Y] has this type.
type Fn[T any] func(T) T

// Thunk defers self-reference.
// Each call runs the combinator again and returns a freshly built [Fn];
// results are equal in behavior but never shared or cached.
type Thunk[T any] func() Fn[T]

// Generator defines one unfolding step of a recursive function.
//
// The generator receives self, which must be called to obtain the
// recursive function: self()(x), never self(x). The returned function
// evaluates its base case without touching self.
type Generator[T any] func(self Thunk[T]) Fn[T]

// Y returns the fixed point of g.
//
// Y does not recurse by itself: it builds a Thunk that re-applies Y to g
// and hands it to g. Recursion only unfolds when the returned function is
// invoked on a non-base-case argument.
//
// Example:
//
//	fact := fix.Y(func(self fix.Thunk[int]) fix.Fn[int] {
//		return func(n int) int {
//			if n == 0 {
//				return 1
//			}
//			return n * self()(n-1)
//		}
//	})
//	// fact(5) == 120
func Y[T any](g Generator[T]) Fn[T] {
	if g == nil {
		panic("fix: nil generator")
	}
	f := g(func() Fn[T] { return Y(g) })
	if f == nil {
		nilFixedPoint()
	}
	return f
}

// nilFixedPoint panics for a generator that returned no function.
// Shared by every combinator in the package.
//
//go:noinline
func nilFixedPoint() {
	panic("fix: generator returned nil function")
}
