package repokit

import (
	"context"
	"fmt"
	"time"
)

// Pinger reports readiness
type Pinger interface{ Ping(context.Context) error }

// Check pings p with a default 5s deadline when ctx has none. A nil p is reported as disabled
func Check(ctx context.Context, name string, p Pinger) error {
	if p == nil {
		return fmt.Errorf("%s: not configured", name)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
