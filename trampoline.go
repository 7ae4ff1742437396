// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// unerase recovers a concrete value from the frame chain.
// A nil Erased is the zero value of A, which also covers interface and
// pointer types whose zero value was boxed as nil.
func unerase[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// evalFrames is the iterative evaluator for Expr frame chains.
// Nested chains are re-associated to the right so that the loop only ever
// inspects the head frame; pending work lives on the heap, never on the
// Go stack.
//
// A positive budget caps the number of BindFrame applications. The second
// result is false when the budget ran out before completion.
func evalFrames(current Erased, frame Frame, budget int) (Erased, bool) {
	steps := 0
	for {
		head, rest := frame, Frame(ReturnFrame{})
		if cf, ok := frame.(*chainedFrame); ok {
			if nested, ok := cf.first.(*chainedFrame); ok {
				frame = &chainedFrame{
					first: nested.first,
					rest:  ChainFrames(nested.rest, cf.rest),
				}
				continue
			}
			head, rest = cf.first, cf.rest
		}

		switch f := head.(type) {
		case ReturnFrame:
			if _, ok := rest.(ReturnFrame); ok {
				return current, true
			}
			frame = rest
		case *BindFrame[Erased, Erased]:
			if budget > 0 {
				if steps == budget {
					return nil, false
				}
				steps++
			}
			next := f.F(current)
			current = next.Value
			frame = ChainFrames(ChainFrames(next.Frame, f.Next), rest)
		case *MapFrame[Erased, Erased]:
			current = f.F(current)
			frame = ChainFrames(f.Next, rest)
		default:
			panic("fix: unknown frame type")
		}
	}
}

// RunPure evaluates a computation to completion.
// Frames are processed iteratively, so recursion expressed through
// [ExprDefer] or [Recur] does not grow the Go stack.
func RunPure[A any](m Expr[A]) A {
	v, _ := evalFrames(Erased(m.Value), m.Frame, 0)
	return unerase[A](v)
}

// RunBudget evaluates m applying at most budget bind steps.
// Every deferred unfolding counts as one step. When the budget runs out,
// RunBudget returns a [*LimitError] wrapping [ErrStepBudget].
func RunBudget[A any](m Expr[A], budget int) (A, error) {
	if budget <= 0 {
		nonPositiveLimit(budget)
	}
	v, ok := evalFrames(Erased(m.Value), m.Frame, budget)
	if !ok {
		var zero A
		return zero, &LimitError{Err: ErrStepBudget, Limit: budget}
	}
	return unerase[A](v), nil
}

// ExprBind creates a bind frame linking computation m to function f.
func ExprBind[A, B any](m Expr[A], f func(A) Expr[B]) Expr[B] {
	if m.Done() {
		// m is already completed, apply f directly
		return f(m.Value)
	}
	bindFrame := &BindFrame[Erased, Erased]{
		F: func(a Erased) Expr[Erased] {
			result := f(unerase[A](a))
			return Expr[Erased]{
				Value: Erased(result.Value),
				Frame: result.Frame,
			}
		},
		Next: ReturnFrame{},
	}
	return Expr[B]{Frame: ChainFrames(m.Frame, bindFrame)}
}

// ExprMap creates a map frame transforming computation m with function f.
func ExprMap[A, B any](m Expr[A], f func(A) B) Expr[B] {
	if m.Done() {
		return ExprReturn(f(m.Value))
	}
	mapFrame := &MapFrame[Erased, Erased]{
		F: func(a Erased) Erased {
			return f(unerase[A](a))
		},
		Next: ReturnFrame{},
	}
	return Expr[B]{Frame: ChainFrames(m.Frame, mapFrame)}
}

// ExprDefer suspends f until the evaluator reaches it.
// Unlike ExprBind on a completed computation, f is never called eagerly.
func ExprDefer[A any](f func() Expr[A]) Expr[A] {
	return Expr[A]{
		Frame: &BindFrame[Erased, Erased]{
			F: func(Erased) Expr[Erased] {
				result := f()
				return Expr[Erased]{
					Value: Erased(result.Value),
					Frame: result.Frame,
				}
			},
			Next: ReturnFrame{},
		},
	}
}
