// Package leaktest checks tests for goroutines left running
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check fails the test if more than tolerance goroutines outlive the baseline.
// Goroutines that are still winding down get settleTimeout to exit.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	current := settle(g.baseline+tolerance, settleTimeout)
	if leaked := current - g.baseline; leaked > tolerance {
		g.t.Errorf("goroutine leak: baseline=%d current=%d leaked=%d tolerance=%d",
			g.baseline, current, leaked, tolerance)
	}
}

// VerifyNone runs fn and fails the test if it leaves goroutines behind
func VerifyNone(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until the goroutine count drops to target or timeout passes
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
