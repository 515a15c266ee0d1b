package service

import "time"

const (
	MaxCookMinutes = 24 * 60 // no multi-day cooking
	MaxStepHours   = 24.0    // one dial step can never exceed a day

	DefaultCookMinutes = 60
	DefaultStepHours   = 0.5

	DefaultCacheTTL    = 5 * time.Second
	DefaultHistorySize = 100

	cacheKeyPrefix = "ricetimer:calc:"
)
