package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rice-timer/domain"
)

func newWatchCmd() *cobra.Command {
	var (
		f        calcFlags
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recalculate the countdown on every tick until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", interval)
			}

			a, err := newApp(false, os.Stderr)
			if err != nil {
				return err
			}
			defer a.shutdown()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			calculate := func(ctx context.Context) (domain.Calculation, error) {
				return a.service.Calculate(ctx, f.request(cmd, nil))
			}
			return watch(ctx, cmd.OutOrStdout(), interval, calculate)
		},
	}

	f.register(cmd)
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "refresh interval")
	return cmd
}

// watch renders one line immediately and then once per interval. Input
// errors end the loop; cancellation ends it cleanly.
func watch(
	ctx context.Context,
	w io.Writer,
	interval time.Duration,
	calculate func(context.Context) (domain.Calculation, error),
) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		calc, err := calculate(ctx)
		if err != nil {
			return err
		}
		renderLine(w, calc)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func renderLine(w io.Writer, calc domain.Calculation) {
	fmt.Fprintf(w, "[%s] %s  %s\n",
		calc.Input.Now.Format("15:04:05"), calc.Explanation.Headline, calc.Explanation.Details)
}
