package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rice-timer/domain"
	"rice-timer/service"
)

type calcFlags struct {
	target string
	cook   int
	step   float64
	now    string
}

func (f *calcFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "time the rice should be ready, HH:MM")
	cmd.Flags().IntVarP(&f.cook, "cook", "c", service.DefaultCookMinutes, "cook duration in minutes")
	cmd.Flags().Float64VarP(&f.step, "step", "s", service.DefaultStepHours, "timer step in hours")
	_ = cmd.MarkFlagRequired("target")
}

// request only sets the optional fields the user passed explicitly, so the
// configured defaults apply otherwise.
func (f *calcFlags) request(cmd *cobra.Command, now *time.Time) domain.CalculationRequest {
	req := domain.CalculationRequest{Target: f.target, Now: now}
	if cmd.Flags().Changed("cook") {
		cook := f.cook
		req.CookMinutes = &cook
	}
	if cmd.Flags().Changed("step") {
		step := f.step
		req.StepHours = &step
	}
	return req
}

func newCalcCmd() *cobra.Command {
	var f calcFlags

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the recommended countdown once",
		Example: "  ricetimer calc --target 07:30 --cook 480 --step 0.5\n" +
			"  ricetimer calc -t 07:30 --now 22:00",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(false, os.Stderr)
			if err != nil {
				return err
			}
			defer a.shutdown()

			var now *time.Time
			if f.now != "" {
				t, err := parseNow(f.now, time.Now())
				if err != nil {
					return err
				}
				now = &t
			}

			calc, err := a.service.Calculate(cmd.Context(), f.request(cmd, now))
			if err != nil {
				return err
			}
			printCalculation(cmd.OutOrStdout(), calc)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&f.now, "now", "", "pretend the current time is HH:MM today, or an RFC3339 timestamp")
	return cmd
}

// parseNow accepts an RFC3339 timestamp or an HH:MM wall-clock time on
// ref's date.
func parseNow(value string, ref time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	tod, err := domain.ParseTimeOfDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now: %w", err)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), tod.Hours, tod.Minutes, 0, 0, ref.Location()), nil
}

func printCalculation(w io.Writer, calc domain.Calculation) {
	fmt.Fprintf(w, "now:        %s\n", calc.Input.Now.Format("15:04:05"))
	fmt.Fprintf(w, "target:     %s (cook %d min, step %s h)\n",
		calc.Input.Target, calc.Input.CookMinutes, service.FormatHours(calc.Input.StepHours))
	fmt.Fprintf(w, "countdown:  %s\n", calc.Explanation.Headline)
	fmt.Fprintf(w, "            %s\n", calc.Explanation.Details)
}
