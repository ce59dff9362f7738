package service

import (
	"context"
	"errors"

	"github.com/praveenm/billing-api/internal/domain/entity"
	"github.com/praveenm/billing-api/internal/domain/repository"
	"github.com/praveenm/billing-api/pkg/apperror"
	"github.com/praveenm/billing-api/pkg/change"
	"gorm.io/gorm"
)

// DenominationService manages the register's denomination set
type DenominationService struct {
	denominationRepo repository.DenominationRepository
}

// NewDenominationService creates a new denomination service
func NewDenominationService(denominationRepo repository.DenominationRepository) *DenominationService {
	return &DenominationService{denominationRepo: denominationRepo}
}

// CreateDenomination adds a new denomination value to the register
func (s *DenominationService) CreateDenomination(ctx context.Context, value float64) (*entity.Denomination, error) {
	if value <= 0 {
		return nil, apperror.NewBadRequestError("Denomination value must be positive")
	}

	denomination := &entity.Denomination{}
	denomination.SetValueFromDecimal(value)

	existing, err := s.denominationRepo.GetByValue(ctx, denomination.Value)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Denomination already exists")
	}

	if err := s.denominationRepo.Create(ctx, denomination); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Denomination already exists")
		}
		return nil, err
	}
	return denomination, nil
}

// ListDenominations returns the full denomination set, largest first
func (s *DenominationService) ListDenominations(ctx context.Context) ([]entity.Denomination, error) {
	return s.denominationRepo.List(ctx)
}

// DeleteDenomination removes a denomination from the register
func (s *DenominationService) DeleteDenomination(ctx context.Context, id uint) error {
	denomination, err := s.denominationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if denomination == nil {
		return apperror.NewNotFoundError("Denomination")
	}
	return s.denominationRepo.Delete(ctx, id)
}

// ChangeResolution is the result of a standalone change computation
type ChangeResolution struct {
	Amount        float64        `json:"amount"`
	Denominations map[string]int `json:"denominations"`
	Residual      float64        `json:"residual"`
}

// ResolveChange computes the greedy denomination breakdown for an amount
// against the current denomination set, independent of any bill.
func (s *DenominationService) ResolveChange(ctx context.Context, amount float64) (*ChangeResolution, error) {
	if amount < 0 {
		return nil, apperror.NewBadRequestError("Amount must not be negative")
	}

	denominations, err := s.denominationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	cents := int64(amount*100 + 0.5)
	breakdown, residual := change.Resolve(cents, entity.DenominationValues(denominations))

	counts := make(map[string]int, len(breakdown))
	for denom, count := range breakdown {
		counts[change.FormatValue(denom)] = count
	}

	return &ChangeResolution{
		Amount:        float64(cents) / 100,
		Denominations: counts,
		Residual:      float64(residual) / 100,
	}, nil
}
