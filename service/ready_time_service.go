package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"rice-timer/clock"
	"rice-timer/domain"
	"rice-timer/repository"
)

// Defaults fills in request fields the caller left out.
type Defaults struct {
	CookMinutes int
	StepHours   float64
	CacheTTL    time.Duration
}

func DefaultDefaults() Defaults {
	return Defaults{
		CookMinutes: DefaultCookMinutes,
		StepHours:   DefaultStepHours,
		CacheTTL:    DefaultCacheTTL,
	}
}

type ReadyTimeService struct {
	clock    clock.Clock
	repo     repository.CalculationRepository
	cache    repository.CacheRepository
	logger   zerolog.Logger
	defaults Defaults
}

// NewReadyTimeService wires the calculator to its clock, history log and
// result cache.
func NewReadyTimeService(
	c clock.Clock,
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger zerolog.Logger,
	defaults Defaults,
) *ReadyTimeService {
	return &ReadyTimeService{
		clock:    c,
		repo:     repo,
		cache:    cache,
		logger:   logger.With().Str("component", "ready_time").Logger(),
		defaults: defaults,
	}
}

// Calculate resolves a request against the current time and returns the
// recommended countdown together with its explanation.
func (s *ReadyTimeService) Calculate(
	ctx context.Context,
	req domain.CalculationRequest,
) (domain.Calculation, error) {
	input, err := s.buildInput(req)
	if err != nil {
		return domain.Calculation{}, err
	}

	key := cacheKey(input)
	if cached, ok := s.lookup(ctx, key); ok {
		s.logger.Debug().Str("key", key).Msg("cache hit")
		return cached, nil
	}

	result, err := Compute(input.Now, input.Target, input.CookMinutes, input.StepHours)
	if err != nil {
		return domain.Calculation{}, err
	}

	calc := domain.Calculation{
		CreatedAt:   s.clock.Now(),
		Input:       input,
		Result:      result,
		Explanation: Explain(result),
	}

	// History is informational; a failed save must not fail the request.
	if saved, err := s.repo.Save(ctx, calc); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save calculation")
	} else {
		calc = saved
	}

	s.store(ctx, key, calc)

	s.logger.Debug().
		Str("target", input.Target.String()).
		Int("cook_minutes", input.CookMinutes).
		Float64("step_hours", input.StepHours).
		Bool("feasible", result.Feasible).
		Float64("countdown_hours", result.RecommendedCountdownHours).
		Msg("countdown calculated")

	return calc, nil
}

// History returns up to limit recent calculations, newest first.
func (s *ReadyTimeService) History(ctx context.Context, limit int) ([]domain.Calculation, error) {
	calcs, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return calcs, nil
}

func (s *ReadyTimeService) buildInput(req domain.CalculationRequest) (domain.CalculationInput, error) {
	target, err := domain.ParseTimeOfDay(req.Target)
	if err != nil {
		return domain.CalculationInput{}, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}

	cook := s.defaults.CookMinutes
	if req.CookMinutes != nil {
		cook = *req.CookMinutes
	}
	if cook < 0 {
		cook = 0
	}
	if cook > MaxCookMinutes {
		return domain.CalculationInput{}, fmt.Errorf("%w: cook time exceeds the maximum of %d minutes", ErrInvalidCookTime, MaxCookMinutes)
	}

	step := s.defaults.StepHours
	if req.StepHours != nil {
		step = *req.StepHours
	}
	if step > MaxStepHours {
		return domain.CalculationInput{}, fmt.Errorf("%w: step exceeds the maximum of %.0f hours", ErrInvalidStep, MaxStepHours)
	}
	if _, err := stepDuration(step); err != nil {
		return domain.CalculationInput{}, err
	}

	now := s.clock.Now()
	if req.Now != nil {
		now = *req.Now
	}

	return domain.CalculationInput{
		Now:         now,
		Target:      target,
		CookMinutes: cook,
		StepHours:   step,
	}, nil
}

func cacheKey(in domain.CalculationInput) string {
	return cacheKeyPrefix +
		strconv.FormatInt(in.Now.UnixNano(), 10) + ":" +
		in.Now.Location().String() + ":" +
		in.Target.String() + ":" +
		strconv.Itoa(in.CookMinutes) + ":" +
		strconv.FormatFloat(in.StepHours, 'g', -1, 64)
}

func (s *ReadyTimeService) lookup(ctx context.Context, key string) (domain.Calculation, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.Calculation{}, false
	}

	var calc domain.Calculation
	if err := json.Unmarshal([]byte(raw), &calc); err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		return domain.Calculation{}, false
	}
	return calc, true
}

func (s *ReadyTimeService) store(ctx context.Context, key string, calc domain.Calculation) {
	data, err := json.Marshal(calc)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode calculation for cache")
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.defaults.CacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache calculation")
	}
}
