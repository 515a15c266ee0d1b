package repository

import (
	"context"

	"rice-timer/domain"
)

type CalculationRepository interface {
	Save(ctx context.Context, calc domain.Calculation) (domain.Calculation, error)
	List(ctx context.Context, limit int) ([]domain.Calculation, error)
}
