// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package check is an equality-assertion harness.
//
// A [Harness] is a scoped test-run context: it counts checks, records
// mismatches, and forwards each mismatch to an optional logger and
// reporter. Mismatches never abort the process; callers decide what a
// failed run means via [Harness.Failed] or [Harness.Err].
package check

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

// Reporter receives mismatch reports. *testing.T and *testing.B satisfy it.
type Reporter interface {
	Errorf(format string, args ...any)
}

// Mismatch is the error recorded for a failed check.
type Mismatch struct {
	Label    string
	Actual   any
	Expected any
	// Diff is the go-cmp diff (-expected +actual) for structural checks.
	Diff string
}

func (m *Mismatch) Error() string {
	if m.Diff != "" {
		return fmt.Sprintf("%s: mismatch (-expected +actual):\n%s", m.Label, m.Diff)
	}
	return fmt.Sprintf("%s: got %v, want %v", m.Label, m.Actual, m.Expected)
}

// Summary is a snapshot of a harness run.
type Summary struct {
	Name     string `yaml:"name"`
	Checks   int    `yaml:"checks"`
	Failures int    `yaml:"failures"`
}

// Harness collects the outcome of a series of checks.
// A Harness is not safe for concurrent use.
type Harness struct {
	name     string
	log      logrus.FieldLogger
	reporter Reporter
	checks   int
	failures []error
}

// Option configures a [Harness].
type Option func(*Harness)

// WithLogger logs every check outcome to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(h *Harness) { h.log = l }
}

// WithReporter forwards every mismatch to r.
func WithReporter(r Reporter) Option {
	return func(h *Harness) { h.reporter = r }
}

// New creates a harness named name.
func New(name string, opts ...Option) *Harness {
	h := &Harness{name: name}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		h.log = l
	}
	h.log = h.log.WithField("harness", name)
	return h
}

// Equal checks actual against expected with ==.
// It returns true when they match.
func Equal[T comparable](h *Harness, label string, actual, expected T) bool {
	if actual == expected {
		h.pass(label)
		return true
	}
	h.fail(&Mismatch{Label: label, Actual: actual, Expected: expected})
	return false
}

// Deep checks actual against expected with go-cmp.
// Use it for slices, maps, and structs.
func Deep(h *Harness, label string, actual, expected any, opts ...cmp.Option) bool {
	diff := cmp.Diff(expected, actual, opts...)
	if diff == "" {
		h.pass(label)
		return true
	}
	h.fail(&Mismatch{Label: label, Actual: actual, Expected: expected, Diff: diff})
	return false
}

func (h *Harness) pass(label string) {
	h.checks++
	h.log.WithField("check", label).Debug("check passed")
}

func (h *Harness) fail(m *Mismatch) {
	h.checks++
	h.failures = append(h.failures, m)
	h.log.WithFields(logrus.Fields{
		"check":    m.Label,
		"actual":   m.Actual,
		"expected": m.Expected,
	}).Warn("check failed")
	if h.reporter != nil {
		h.reporter.Errorf("%s: %v", h.name, m)
	}
}

// Name returns the harness name.
func (h *Harness) Name() string { return h.name }

// Checks returns the number of checks performed.
func (h *Harness) Checks() int { return h.checks }

// Failures returns the number of failed checks.
func (h *Harness) Failures() int { return len(h.failures) }

// Failed reports whether any check failed.
func (h *Harness) Failed() bool { return len(h.failures) > 0 }

// Err returns all recorded mismatches joined, or nil.
// Each element is a [*Mismatch] reachable with errors.As.
func (h *Harness) Err() error {
	return errors.Join(h.failures...)
}

// Summary returns the current counts.
func (h *Harness) Summary() Summary {
	return Summary{Name: h.name, Checks: h.checks, Failures: len(h.failures)}
}
