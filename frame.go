// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

// Erased represents a type-erased value in the frame chain.
// Concrete types are recovered via type assertions at frame boundaries.
type Erased = any

// Frame is the interface for defunctionalized continuation frames.
// Dispatch uses type switches; Frame is a pure marker interface.
type Frame interface {
	frame()
}

// ReturnFrame signals computation completion.
type ReturnFrame struct{}

func (ReturnFrame) frame() {}

// BindFrame feeds the current value to F and continues with the
// computation F returns.
type BindFrame[A, B any] struct {
	// F produces the next computation from the input value.
	F func(A) Expr[B]

	// Next is the continuation frame after F's computation completes.
	Next Frame
}

func (*BindFrame[A, B]) frame() {}

// MapFrame transforms the current value with a pure function.
type MapFrame[A, B any] struct {
	// F is the transformation function.
	F func(A) B

	// Next is the continuation frame after transformation.
	Next Frame
}

func (*MapFrame[A, B]) frame() {}

// Expr is a defunctionalized computation producing a value of type A.
// Unlike a direct call, a pending Expr holds its remaining work as frame
// data that [RunPure] unfolds iteratively.
type Expr[A any] struct {
	// Value holds the result when Frame is ReturnFrame.
	Value A

	// Frame holds the next continuation frame.
	Frame Frame
}

// ExprReturn creates a completed computation with the given value.
func ExprReturn[A any](a A) Expr[A] {
	return Expr[A]{
		Value: a,
		Frame: ReturnFrame{},
	}
}

// Done reports whether m is a completed computation.
func (m Expr[A]) Done() bool {
	_, ok := m.Frame.(ReturnFrame)
	return ok
}

// ChainFrames links two frame chains together.
// ReturnFrame is the identity element, so no node is allocated when either
// side is already complete.
func ChainFrames(first, second Frame) Frame {
	if _, ok := first.(ReturnFrame); ok {
		return second
	}
	if _, ok := second.(ReturnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}

// chainedFrame represents a frame followed by more frames.
type chainedFrame struct {
	first Frame
	rest  Frame
}

func (*chainedFrame) frame() {}
