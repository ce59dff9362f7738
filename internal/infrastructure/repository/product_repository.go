package repository

import (
	"context"
	"errors"

	"github.com/praveenm/billing-api/internal/domain/entity"
	domainRepo "github.com/praveenm/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return dbFromContext(ctx, r.db).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := dbFromContext(ctx, r.db).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	var product entity.Product
	err := dbFromContext(ctx, r.db).First(&product, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// GetByCodes retrieves multiple products by code in a single query
func (r *productRepository) GetByCodes(ctx context.Context, codes []string) ([]entity.Product, error) {
	if len(codes) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := dbFromContext(ctx, r.db).
		Where("code IN ?", codes).
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return dbFromContext(ctx, r.db).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Product{})

	if params.Search != "" {
		query = query.Where("name LIKE ? OR code LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&products).Error

	return products, total, err
}

// DecrementStock atomically decrements stock only if sufficient quantity
// remains. Uses a guarded update so concurrent bills can never drive stock
// negative:
//
//	UPDATE products SET available_stocks = available_stocks - ?
//	WHERE id = ? AND available_stocks >= ?
func (r *productRepository) DecrementStock(ctx context.Context, id uint, quantity int) (bool, error) {
	result := dbFromContext(ctx, r.db).Model(&entity.Product{}).
		Where("id = ? AND available_stocks >= ?", id, quantity).
		Update("available_stocks", gorm.Expr("available_stocks - ?", quantity))

	if result.Error != nil {
		return false, result.Error
	}

	// No rows affected means the stock check failed
	return result.RowsAffected > 0, nil
}

func (r *productRepository) CountBillReferences(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&entity.BillItem{}).
		Where("product_id = ?", id).
		Count(&count).Error
	return count, err
}
