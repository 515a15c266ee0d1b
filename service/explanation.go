package service

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"rice-timer/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatHours renders a countdown the way an appliance dial reads:
// "1.5", "22", "0.25".
func FormatHours(hours float64) string {
	return strconv.FormatFloat(roundTo2Decimals(hours), 'f', -1, 64)
}

// FormatClock renders an instant as a 24h HH:MM string in its own location.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// Explain turns a result into the two lines a presentation layer shows.
func Explain(result domain.CalculationResult) domain.Explanation {
	if !result.Feasible {
		return domain.Explanation{
			Headline: "start now",
			Details: fmt.Sprintf(
				"not enough time: even starting now it will not be ready by %s",
				FormatClock(result.TargetReadyAt),
			),
		}
	}

	start := FormatClock(result.ProjectedStartAt)
	ready := FormatClock(result.ProjectedReadyAt)

	return domain.Explanation{
		Headline:   FormatHours(result.RecommendedCountdownHours) + " h",
		Details:    fmt.Sprintf("timer starts at %s, ready at %s (%s)", start, ready, earlyText(result.VarianceMinutes)),
		StartClock: start,
		ReadyClock: ready,
	}
}

func earlyText(minutes int) string {
	switch {
	case minutes <= 0:
		return "on time"
	case minutes == 1:
		return "1 minute early"
	default:
		return fmt.Sprintf("%d minutes early", minutes)
	}
}
