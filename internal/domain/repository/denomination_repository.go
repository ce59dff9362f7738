package repository

import (
	"context"

	"github.com/praveenm/billing-api/internal/domain/entity"
)

// DenominationRepository defines the interface for denomination data
// operations
type DenominationRepository interface {
	Create(ctx context.Context, denomination *entity.Denomination) error
	GetByID(ctx context.Context, id uint) (*entity.Denomination, error)
	GetByValue(ctx context.Context, value int64) (*entity.Denomination, error)
	Delete(ctx context.Context, id uint) error
	// List returns the full denomination set, largest value first
	List(ctx context.Context) ([]entity.Denomination, error)
}
