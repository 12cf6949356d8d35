package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	Hz      int
	Ticks   uint64
}

// RunHeadless runs the app on a fixed-rate ticker without opening a window.
// It returns ctx.Err() when ctx is done, and nil after cfg.Ticks ticks
// (0 = run forever) or when the step function returns ErrQuit.
func RunHeadless(ctx context.Context, newApp AppFactory, cfg HeadlessConfig) error {
	return runHeadless(ctx, newHostHAL(os.Stdout, cfg.Width, cfg.Height), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp AppFactory, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	step, err := newApp(h)
	if err != nil {
		return err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
