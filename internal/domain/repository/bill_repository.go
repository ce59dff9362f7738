package repository

import (
	"context"

	"github.com/praveenm/billing-api/internal/domain/entity"
	"github.com/praveenm/billing-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations. Bills are
// immutable after creation, so no update or delete surface exists.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	// UpdateNumber rewrites the placeholder bill number to its canonical
	// form once the durable identifier is known. Only meaningful inside
	// the creating transaction.
	UpdateNumber(ctx context.Context, id uint, billNumber string) error
	CreateItems(ctx context.Context, items []entity.BillItem) error
	// GetWithItems retrieves a bill together with its line items and the
	// referenced products
	GetWithItems(ctx context.Context, id uint) (*entity.Bill, error)
	GetByNumber(ctx context.Context, billNumber string) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	ListByCustomer(ctx context.Context, customerEmail string) ([]entity.Bill, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination    *pagination.PaginationParams
	CustomerEmail string
}
