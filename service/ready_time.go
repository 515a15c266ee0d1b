package service

import (
	"fmt"
	"math"
	"time"

	"rice-timer/domain"
)

// stepDuration converts a dial step given in hours to a whole number of
// nanoseconds. Steps that are not positive, not finite, or too small to be
// represented are rejected.
func stepDuration(stepHours float64) (time.Duration, error) {
	if math.IsNaN(stepHours) || math.IsInf(stepHours, 0) || stepHours <= 0 {
		return 0, fmt.Errorf("%w: step must be a positive number of hours, got %v", ErrInvalidStep, stepHours)
	}
	ns := math.Round(stepHours * float64(time.Hour))
	if ns < 1 || ns >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: step of %v hours is out of range", ErrInvalidStep, stepHours)
	}
	return time.Duration(ns), nil
}

// resolveTarget returns the next occurrence of target strictly after now,
// on now's calendar date or the day after.
func resolveTarget(now time.Time, target domain.TimeOfDay) time.Time {
	at := time.Date(now.Year(), now.Month(), now.Day(), target.Hours, target.Minutes, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// Compute returns the largest countdown, in whole dial steps, after which a
// cook of cookMinutes finishes at or before the next occurrence of target.
// Negative cook times count as zero. A countdown that would have to be
// negative is reported with Feasible=false rather than as an error.
func Compute(
	now time.Time,
	target domain.TimeOfDay,
	cookMinutes int,
	stepHours float64,
) (domain.CalculationResult, error) {
	step, err := stepDuration(stepHours)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	if !target.Valid() {
		return domain.CalculationResult{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTarget, target.Hours, target.Minutes)
	}
	if cookMinutes < 0 {
		cookMinutes = 0
	}

	cook := time.Duration(cookMinutes) * time.Minute
	targetReady := resolveTarget(now, target)
	requiredStart := targetReady.Add(-cook)
	ideal := requiredStart.Sub(now)

	result := domain.CalculationResult{
		IdealCountdownHours: ideal.Hours(),
		TargetReadyAt:       targetReady,
		RequiredStartAt:     requiredStart,
	}
	if ideal < 0 {
		return result, nil
	}

	// Integer division floors for non-negative durations, so the
	// countdown can never overshoot the ideal.
	countdown := (ideal / step) * step

	result.Feasible = true
	result.RecommendedCountdownHours = countdown.Hours()
	result.ProjectedStartAt = now.Add(countdown)
	result.ProjectedReadyAt = result.ProjectedStartAt.Add(cook)
	result.VarianceMinutes = int(math.Round(targetReady.Sub(result.ProjectedReadyAt).Minutes()))

	return result, nil
}
