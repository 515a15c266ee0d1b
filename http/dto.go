package http

import (
	"time"

	"rice-timer/domain"
)

type CalculateRequest struct {
	Target      string     `json:"target"`
	CookMinutes *int       `json:"cook_minutes,omitempty"`
	StepHours   *float64   `json:"step_hours,omitempty"`
	Now         *time.Time `json:"now,omitempty"`
}

func (r CalculateRequest) toDomain() domain.CalculationRequest {
	return domain.CalculationRequest{
		Target:      r.Target,
		CookMinutes: r.CookMinutes,
		StepHours:   r.StepHours,
		Now:         r.Now,
	}
}

type CalculationResponse struct {
	ID           string    `json:"id"`
	CalculatedAt time.Time `json:"calculated_at"`

	Target      string  `json:"target"`
	CookMinutes int     `json:"cook_minutes"`
	StepHours   float64 `json:"step_hours"`

	Feasible                  bool       `json:"feasible"`
	RecommendedCountdownHours float64    `json:"recommended_countdown_hours"`
	IdealCountdownHours       float64    `json:"ideal_countdown_hours"`
	TargetReadyAt             time.Time  `json:"target_ready_at"`
	RequiredStartAt           time.Time  `json:"required_start_at"`
	ProjectedStartAt          *time.Time `json:"projected_start_at,omitempty"`
	ProjectedReadyAt          *time.Time `json:"projected_ready_at,omitempty"`
	VarianceMinutes           int        `json:"variance_minutes"`

	Headline string `json:"headline"`
	Details  string `json:"details"`
}

func newCalculationResponse(c domain.Calculation) CalculationResponse {
	resp := CalculationResponse{
		ID:                        c.ID,
		CalculatedAt:              c.CreatedAt,
		Target:                    c.Input.Target.String(),
		CookMinutes:               c.Input.CookMinutes,
		StepHours:                 c.Input.StepHours,
		Feasible:                  c.Result.Feasible,
		RecommendedCountdownHours: c.Result.RecommendedCountdownHours,
		IdealCountdownHours:       c.Result.IdealCountdownHours,
		TargetReadyAt:             c.Result.TargetReadyAt,
		RequiredStartAt:           c.Result.RequiredStartAt,
		VarianceMinutes:           c.Result.VarianceMinutes,
		Headline:                  c.Explanation.Headline,
		Details:                   c.Explanation.Details,
	}
	if c.Result.Feasible {
		start, ready := c.Result.ProjectedStartAt, c.Result.ProjectedReadyAt
		resp.ProjectedStartAt = &start
		resp.ProjectedReadyAt = &ready
	}
	return resp
}

type errorResponse struct {
	Error string `json:"error"`
}
