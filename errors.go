// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fix

import (
	"errors"
	"strconv"
)

var (
	// ErrDepthExceeded reports a fixed point that nested deeper than its
	// ceiling, usually a generator whose base case never triggers.
	ErrDepthExceeded = errors.New("fix: recursion depth exceeded")

	// ErrStepBudget reports a trampolined evaluation that ran out of steps.
	ErrStepBudget = errors.New("fix: evaluation step budget exhausted")
)

// LimitError is returned when bounded evaluation hits its ceiling.
// Err is [ErrDepthExceeded] or [ErrStepBudget].
type LimitError struct {
	Err   error
	Limit int
}

func (e *LimitError) Error() string {
	return e.Err.Error() + " (limit " + strconv.Itoa(e.Limit) + ")"
}

func (e *LimitError) Unwrap() error { return e.Err }

// nonPositiveLimit panics for a ceiling that admits no evaluation at all.
//
//go:noinline
func nonPositiveLimit(limit int) {
	panic("fix: non-positive limit " + strconv.Itoa(limit))
}
