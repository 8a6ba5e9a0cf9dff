package pacing

import (
	"context"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("pacing")

// Frame is one unit of paced work
type Frame func(ctx context.Context) error

// Pacer runs frames at a fixed interval. A frame that overruns the
// interval is followed immediately by the next one, missed ticks are
// dropped rather than queued.
type Pacer struct {
	interval time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewPacer creates a pacer for the target interval
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{
		interval: interval,
		now:      time.Now,
		sleep:    Sleep,
	}
}

// Interval returns the target time between frame starts
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Run calls frame until it fails or ctx is done. It returns the frame
// error, or ctx.Err() on cancellation.
func (p *Pacer) Run(ctx context.Context, frame Frame) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		startedAt := p.now()
		if err := frame(ctx); err != nil {
			return err
		}
		elapsed := p.now().Sub(startedAt)
		sleepDuration := p.interval - elapsed
		log.Debugf("frame took %v, sleeping %v", elapsed, sleepDuration)
		if sleepDuration > 0 {
			if err := p.sleep(ctx, sleepDuration); err != nil {
				return err
			}
		}
	}
}

// Sleep waits for d or until ctx is done, whichever comes first
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
