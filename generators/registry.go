// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package generators

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"code.hybscloud.com/fix"
)

// ErrUnknown is returned by [Lookup] for a name with no registered entry.
var ErrUnknown = errors.New("generators: unknown generator")

// Entry groups the three shapes of one recursive function.
// Reference is nil for functions that have no terminating definition.
type Entry struct {
	Name        string
	Lazy        fix.Generator[int]
	Trampolined fix.GeneratorExpr[int]
	Reference   func(int) int
}

var registry = map[string]Entry{
	"factorial": {
		Name:        "factorial",
		Lazy:        Factorial,
		Trampolined: FactorialExpr,
		Reference:   FactorialRec,
	},
	"fibonacci": {
		Name:        "fibonacci",
		Lazy:        Fibonacci,
		Trampolined: FibonacciExpr,
		Reference:   FibonacciRec,
	},
	"digitsum": {
		Name:        "digitsum",
		Lazy:        DigitSum,
		Trampolined: DigitSumExpr,
		Reference:   DigitSumRec,
	},
	"triangular": {
		Name:        "triangular",
		Lazy:        Triangular,
		Trampolined: TriangularExpr,
		Reference:   TriangularRec,
	},
	"runaway": {
		Name:        "runaway",
		Lazy:        Runaway,
		Trampolined: RunawayExpr,
	},
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the entry registered under name. Names are
// case-insensitive.
func Lookup(name string) (Entry, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return e, nil
}
