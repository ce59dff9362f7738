package repository

import (
	"context"

	"github.com/praveenm/billing-api/internal/domain/entity"
	"github.com/praveenm/billing-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// GetByCodes retrieves multiple products by their external codes in a
	// single query (prevents N+1)
	GetByCodes(ctx context.Context, codes []string) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// DecrementStock atomically decrements available stock only if the
	// product still covers the quantity.
	// Returns (true, nil) on success, (false, nil) on insufficient stock.
	DecrementStock(ctx context.Context, id uint, quantity int) (bool, error)
	// CountBillReferences reports how many bill items reference the product
	CountBillReferences(ctx context.Context, id uint) (int64, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
}
