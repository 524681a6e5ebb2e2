// Package sim advances in-flight vehicle passes on a fixed cadence, mocking
// RFID/payment latency the way the real product's lane hardware would.
package sim

import (
	"context"
	"fmt"
	"time"

	"smarttoll/internal/services"
	"smarttoll/internal/utils"
)

// Driver periodically settles every pass still in processing. Each tick's
// effect is atomic per record; records already terminal are never touched.
type Driver struct {
	Toll     services.TollService
	Decide   services.PaymentDecision
	Interval time.Duration
}

// Run ticks until ctx is canceled. Blocking; callers start it in its own
// goroutine and cancel the context on shutdown.
func (d Driver) Run(ctx context.Context) {
	interval := d.Interval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	utils.LogEvent("", "sim", "start", fmt.Sprintf("interval=%s", interval))
	for {
		select {
		case <-ctx.Done():
			utils.LogEvent("", "sim", "stop", "driver canceled")
			return
		case <-ticker.C:
			if n := d.Toll.AdvanceProcessing(d.Decide); n > 0 {
				utils.LogEvent("", "sim", "tick", fmt.Sprintf("settled=%d", n))
			}
		}
	}
}
