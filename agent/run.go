package agent

import (
	"context"
)

// Run starts the agent, executes fn, and releases the session exactly once on
// every exit path, including a panic inside fn. A Stop failure is reported
// only when fn itself succeeded.
func Run(ctx context.Context, a *Agent, fn func(ctx context.Context, a *Agent) error) (err error) {
	if err = a.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if cerr := a.Stop(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx, a)
}
