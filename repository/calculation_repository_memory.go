package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"rice-timer/domain"
)

// CalculationRepositoryMemory is a bounded in-memory log of calculations.
// Once full, the oldest entries are dropped.
type CalculationRepositoryMemory struct {
	mu       sync.RWMutex
	data     []domain.Calculation
	capacity int
}

// NewCalculationRepositoryMemory creates a repository keeping at most
// capacity entries. A non-positive capacity keeps a single entry.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	if capacity < 1 {
		capacity = 1
	}
	return &CalculationRepositoryMemory{
		data:     make([]domain.Calculation, 0, capacity),
		capacity: capacity,
	}
}

// Save stores the calculation, assigning an ID when it has none.
func (r *CalculationRepositoryMemory) Save(
	_ context.Context,
	calc domain.Calculation,
) (domain.Calculation, error) {
	if calc.ID == "" {
		calc.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == r.capacity {
		copy(r.data, r.data[1:])
		r.data = r.data[:len(r.data)-1]
	}
	r.data = append(r.data, calc)
	return calc, nil
}

// List returns up to limit calculations, newest first. limit <= 0 returns all.
func (r *CalculationRepositoryMemory) List(_ context.Context, limit int) ([]domain.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.data)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]domain.Calculation, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
