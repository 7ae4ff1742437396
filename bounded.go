// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// Bounded evaluation.
// Go aborts the process on stack exhaustion, so a runaway generator under Y
// cannot be observed from inside the program. YBounded imposes a depth
// ceiling and turns the runaway into an error value instead.

// bounded tracks live fixed-point frames for a single invocation.
type bounded[T any] struct {
	g     Generator[T]
	limit int
	depth int
}

// limitExceeded is the panic payload used to unwind a bounded evaluation.
// It carries the evaluation that raised it, so a nested YBounded call
// re-panics a payload that is not its own. It never escapes YBounded.
type limitExceeded[T any] struct {
	b   *bounded[T]
	err *LimitError
}

// fixed applies the generator once and wraps the result so that every
// entry into the fixed point is counted against the ceiling.
func (b *bounded[T]) fixed() Fn[T] {
	f := b.g(b.thunk)
	if f == nil {
		nilFixedPoint()
	}
	return func(x T) T {
		b.depth++
		if b.depth > b.limit {
			panic(limitExceeded[T]{b: b, err: &LimitError{Err: ErrDepthExceeded, Limit: b.limit}})
		}
		defer func() { b.depth-- }()
		return f(x)
	}
}

// thunk re-derives the fixed point on every call, like the Thunk built by Y.
func (b *bounded[T]) thunk() Fn[T] {
	return b.fixed()
}

// YBounded returns the fixed point of g with a ceiling on nesting depth.
//
// Each call of the returned function starts from depth zero and may nest
// at most limit fixed-point frames, the outermost call included: factorial
// of n needs n+1. Past the ceiling the evaluation unwinds and returns a
// [*LimitError] wrapping [ErrDepthExceeded].
//
// Calls of the returned function share no state and may run concurrently.
// Panics raised by the generator itself are propagated unchanged.
func YBounded[T any](g Generator[T], limit int) func(T) (T, error) {
	if g == nil {
		panic("fix: nil generator")
	}
	if limit <= 0 {
		nonPositiveLimit(limit)
	}
	return func(x T) (result T, err error) {
		b := &bounded[T]{g: g, limit: limit}
		defer func() {
			if r := recover(); r != nil {
				le, ok := r.(limitExceeded[T])
				if !ok || le.b != b {
					panic(r)
				}
				var zero T
				result, err = zero, le.err
			}
		}()
		return b.fixed()(x), nil
	}
}
