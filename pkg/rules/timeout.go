package rules

import (
	"context"
	"fmt"
	"time"
)

// DefaultTimeout is the hard limit for a single rule evaluation.
const DefaultTimeout = 5 * time.Second

type evalResult struct {
	program *Program
	errors  []RuleError
	err     error
}

// waitWithTimeout waits for a result from ch, returning early when ctx is
// done or the evaluation exceeds timeout. In either case the evaluation
// goroutine is abandoned: ch is buffered so its send never blocks, and the
// late result is dropped.
func waitWithTimeout(ctx context.Context, ch <-chan evalResult, timeout time.Duration) (*Program, []RuleError, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.program, res.errors, res.err
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	case <-timer.C:
		return nil, nil, fmt.Errorf("rule evaluation timed out after %s", timeout)
	}
}
