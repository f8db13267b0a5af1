package leaktest

import (
	"sync"
	"testing"
	"time"
)

type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...any) { r.failed = true }

func TestVerifyNone_FinishedGoroutines(t *testing.T) {
	VerifyNone(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestCheck_WithinTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() { <-done }()

	checker.Check(1)
	close(done)
}

func TestCheck_ReportsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	start := time.Now()
	checker.Check(0)

	if !rec.failed {
		t.Fatal("expected leaked goroutine to be reported")
	}
	if time.Since(start) < settleTimeout {
		t.Fatal("expected Check to wait for goroutines to settle")
	}
}
