package service

import (
	"context"
	"errors"

	"github.com/praveenm/billing-api/internal/domain/entity"
	"github.com/praveenm/billing-api/internal/domain/repository"
	"github.com/praveenm/billing-api/pkg/apperror"
	"github.com/praveenm/billing-api/pkg/pagination"
	"gorm.io/gorm"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput represents the fields of a product create or update request
type ProductInput struct {
	Code            string
	Name            string
	AvailableStocks int
	PricePerUnit    float64
	TaxPercentage   float64
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if input.PricePerUnit <= 0 {
		return nil, apperror.NewBadRequestError("Price per unit must be positive")
	}

	existing, err := s.productRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product ID already exists")
	}

	product := &entity.Product{
		Code:            input.Code,
		Name:            input.Name,
		AvailableStocks: input.AvailableStocks,
		TaxPercentage:   input.TaxPercentage,
	}
	product.SetUnitPriceFromDecimal(input.PricePerUnit)

	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Product ID already exists")
		}
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by its external code
func (s *ProductService) GetProduct(ctx context.Context, code string) (*entity.Product, error) {
	product, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct replaces the catalog fields of a product. Price and tax
// edits never touch historical bills, which carry their own snapshots.
func (s *ProductService) UpdateProduct(ctx context.Context, code string, input *ProductInput) (*entity.Product, error) {
	if input.PricePerUnit <= 0 {
		return nil, apperror.NewBadRequestError("Price per unit must be positive")
	}

	product, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Code != "" && input.Code != product.Code {
		duplicate, err := s.productRepo.GetByCode(ctx, input.Code)
		if err != nil {
			return nil, err
		}
		if duplicate != nil {
			return nil, apperror.NewConflictError("Product ID already exists")
		}
		product.Code = input.Code
	}

	product.Name = input.Name
	product.AvailableStocks = input.AvailableStocks
	product.TaxPercentage = input.TaxPercentage
	product.SetUnitPriceFromDecimal(input.PricePerUnit)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog. Products referenced by
// any bill cannot be deleted, so historical line-item snapshots stay
// resolvable.
func (s *ProductService) DeleteProduct(ctx context.Context, code string) error {
	product, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	references, err := s.productRepo.CountBillReferences(ctx, product.ID)
	if err != nil {
		return err
	}
	if references > 0 {
		return apperror.NewConflictError("Product is referenced by existing bills and cannot be deleted")
	}

	return s.productRepo.Delete(ctx, product.ID)
}

// ListProducts lists catalog products with search and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}
