package repository

import (
	"context"
	"errors"

	"github.com/praveenm/billing-api/internal/domain/entity"
	domainRepo "github.com/praveenm/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type denominationRepository struct {
	db *gorm.DB
}

// NewDenominationRepository creates a new denomination repository
func NewDenominationRepository(db *gorm.DB) domainRepo.DenominationRepository {
	return &denominationRepository{db: db}
}

func (r *denominationRepository) Create(ctx context.Context, denomination *entity.Denomination) error {
	return dbFromContext(ctx, r.db).Create(denomination).Error
}

func (r *denominationRepository) GetByID(ctx context.Context, id uint) (*entity.Denomination, error) {
	var denomination entity.Denomination
	err := dbFromContext(ctx, r.db).First(&denomination, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &denomination, err
}

func (r *denominationRepository) GetByValue(ctx context.Context, value int64) (*entity.Denomination, error) {
	var denomination entity.Denomination
	err := dbFromContext(ctx, r.db).First(&denomination, "value = ?", value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &denomination, err
}

func (r *denominationRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Denomination{}, "id = ?", id).Error
}

func (r *denominationRepository) List(ctx context.Context) ([]entity.Denomination, error) {
	var denominations []entity.Denomination
	err := dbFromContext(ctx, r.db).
		Order("value DESC").
		Find(&denominations).Error
	return denominations, err
}
