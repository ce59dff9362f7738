package repository

import (
	"context"
	"errors"

	"github.com/praveenm/billing-api/internal/domain/entity"
	domainRepo "github.com/praveenm/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return dbFromContext(ctx, r.db).Create(bill).Error
}

func (r *billRepository) UpdateNumber(ctx context.Context, id uint, billNumber string) error {
	return dbFromContext(ctx, r.db).Model(&entity.Bill{}).
		Where("id = ?", id).
		Update("bill_number", billNumber).Error
}

func (r *billRepository) CreateItems(ctx context.Context, items []entity.BillItem) error {
	if len(items) == 0 {
		return nil
	}
	return dbFromContext(ctx, r.db).Create(&items).Error
}

func (r *billRepository) GetWithItems(ctx context.Context, id uint) (*entity.Bill, error) {
	var bill entity.Bill
	err := dbFromContext(ctx, r.db).
		Preload("Items").Preload("Items.Product").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetByNumber(ctx context.Context, billNumber string) (*entity.Bill, error) {
	var bill entity.Bill
	err := dbFromContext(ctx, r.db).
		Preload("Items").Preload("Items.Product").
		First(&bill, "bill_number = ?", billNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Bill{})

	if params.CustomerEmail != "" {
		query = query.Where("customer_email = ?", params.CustomerEmail)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) ListByCustomer(ctx context.Context, customerEmail string) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := dbFromContext(ctx, r.db).
		Where("customer_email = ?", customerEmail).
		Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}
