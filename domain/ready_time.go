package domain

import "time"

type CalculationInput struct {
	Now         time.Time
	Target      TimeOfDay
	CookMinutes int
	StepHours   float64
}

// CalculationResult holds the outcome of one countdown calculation.
// ProjectedStartAt and ProjectedReadyAt are zero when Feasible is false.
type CalculationResult struct {
	Feasible                  bool
	RecommendedCountdownHours float64
	IdealCountdownHours       float64
	TargetReadyAt             time.Time
	RequiredStartAt           time.Time
	ProjectedStartAt          time.Time
	ProjectedReadyAt          time.Time
	VarianceMinutes           int // minutes ready before the target
}

// CalculationRequest is what a presentation layer hands to the service.
// Nil CookMinutes / StepHours fall back to configured defaults, a nil Now
// means "use the clock".
type CalculationRequest struct {
	Target      string
	CookMinutes *int
	StepHours   *float64
	Now         *time.Time
}

type Explanation struct {
	Headline   string
	Details    string
	StartClock string `json:",omitempty"`
	ReadyClock string `json:",omitempty"`
}

type Calculation struct {
	ID          string
	CreatedAt   time.Time
	Input       CalculationInput
	Result      CalculationResult
	Explanation Explanation
}
