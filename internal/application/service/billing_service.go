package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/praveenm/billing-api/internal/application/pricing"
	"github.com/praveenm/billing-api/internal/domain/entity"
	"github.com/praveenm/billing-api/internal/domain/repository"
	"github.com/praveenm/billing-api/pkg/apperror"
	"github.com/praveenm/billing-api/pkg/change"
	"github.com/praveenm/billing-api/pkg/pagination"
	"gorm.io/gorm"
)

// BillingService orchestrates bill creation and lookup
type BillingService struct {
	billRepo         repository.BillRepository
	productRepo      repository.ProductRepository
	denominationRepo repository.DenominationRepository
	txManager        repository.TransactionManager
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
	denominationRepo repository.DenominationRepository,
	txManager repository.TransactionManager,
) *BillingService {
	return &BillingService{
		billRepo:         billRepo,
		productRepo:      productRepo,
		denominationRepo: denominationRepo,
		txManager:        txManager,
	}
}

// BillItemInput represents one requested line in a bill
type BillItemInput struct {
	ProductCode string
	Quantity    int
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	CustomerEmail string
	Items         []BillItemInput
	PaidAmount    float64
}

// FormatBillNumber derives the canonical bill number from the durable
// record identifier, e.g. 42 -> "BILL-000042".
func FormatBillNumber(id uint) string {
	return fmt.Sprintf("BILL-%06d", id)
}

// CreateBill validates the requested lines against live stock, prices the
// bill, verifies payment, computes the change breakdown and commits the
// bill header, its items and the stock decrements as one transaction.
// Nothing is mutated when any line fails validation or the payment does
// not cover the total.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Bill must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("Invalid quantity for product %s", item.ProductCode))
		}
	}
	if input.PaidAmount <= 0 {
		return nil, apperror.NewBadRequestError("Paid amount must be positive")
	}

	// Batch fetch all referenced products in one query
	codes := make([]string, len(input.Items))
	for i, item := range input.Items {
		codes[i] = item.ProductCode
	}
	products, err := s.productRepo.GetByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	productsByCode := make(map[string]*entity.Product, len(products))
	for i := range products {
		productsByCode[products[i].Code] = &products[i]
	}

	// Validate every line before any mutation. Quantities for the same
	// product are combined so duplicate lines cannot oversell.
	requested := make(map[uint]int)
	lines := make([]pricing.Line, 0, len(input.Items))
	billItems := make([]entity.BillItem, 0, len(input.Items))

	for _, item := range input.Items {
		product, exists := productsByCode[item.ProductCode]
		if !exists {
			return nil, apperror.NewNotFoundError("Product " + item.ProductCode)
		}
		requested[product.ID] += item.Quantity
		if requested[product.ID] > product.AvailableStocks {
			return nil, apperror.NewInsufficientStockError(item.ProductCode)
		}

		line := pricing.PriceLine(product.UnitPrice, product.TaxPercentage, item.Quantity)
		lines = append(lines, line)
		billItems = append(billItems, entity.BillItem{
			ProductID:     product.ID,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			TaxPercentage: line.TaxPercentage,
			ItemSubtotal:  line.Subtotal,
			ItemTax:       line.Tax,
			ItemTotal:     line.Total,
		})
	}

	totals := pricing.Aggregate(lines)

	paidCents := toCents(input.PaidAmount)
	if paidCents < totals.TotalAmount {
		return nil, apperror.NewInsufficientPaymentError()
	}
	balance := paidCents - totals.TotalAmount

	denominations, err := s.denominationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	breakdown, residual := change.Resolve(balance, entity.DenominationValues(denominations))
	if residual > 0 {
		// The register cannot represent this remainder; it is dropped from
		// the breakdown rather than failing the bill.
		log.Printf("Warning: unresolvable change residual of %s for customer %s",
			change.FormatValue(residual), input.CustomerEmail)
	}
	encoded, err := breakdown.Encode()
	if err != nil {
		return nil, err
	}

	bill := &entity.Bill{
		// Placeholder until the durable identifier exists; rewritten below
		// inside the same transaction and never visible to readers.
		BillNumber:       "TEMP-" + uuid.New().String(),
		CustomerEmail:    input.CustomerEmail,
		Subtotal:         totals.Subtotal,
		TotalTax:         totals.TotalTax,
		TotalAmount:      totals.TotalAmount,
		PaidAmount:       paidCents,
		BalanceAmount:    balance,
		BalanceBreakdown: encoded,
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.billRepo.Create(txCtx, bill); err != nil {
			return err
		}

		bill.BillNumber = FormatBillNumber(bill.ID)
		if err := s.billRepo.UpdateNumber(txCtx, bill.ID, bill.BillNumber); err != nil {
			return err
		}

		for i := range billItems {
			billItems[i].BillID = bill.ID
		}
		if err := s.billRepo.CreateItems(txCtx, billItems); err != nil {
			return err
		}

		// Guarded decrement per product; a concurrent bill that drained the
		// stock since validation aborts the whole unit here.
		for productID, quantity := range requested {
			ok, err := s.productRepo.DecrementStock(txCtx, productID, quantity)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.NewInsufficientStockError(codeForProductID(productsByCode, productID))
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Bill could not be committed due to a conflicting record")
		}
		return nil, err
	}

	return s.billRepo.GetWithItems(ctx, bill.ID)
}

// GetBill retrieves a bill with its items by ID
func (s *BillingService) GetBill(ctx context.Context, id uint) (*entity.Bill, error) {
	bill, err := s.billRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills, newest first
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// CustomerPurchaseHistory summarizes all bills recorded for one customer
type CustomerPurchaseHistory struct {
	CustomerEmail  string        `json:"customer_email"`
	TotalPurchases int           `json:"total_purchases"`
	Bills          []entity.Bill `json:"bills"`
}

// GetCustomerPurchases returns all bills for a customer, newest first
func (s *BillingService) GetCustomerPurchases(ctx context.Context, customerEmail string) (*CustomerPurchaseHistory, error) {
	bills, err := s.billRepo.ListByCustomer(ctx, customerEmail)
	if err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return nil, apperror.NewAppError(404, "No purchases found for this customer")
	}
	return &CustomerPurchaseHistory{
		CustomerEmail:  customerEmail,
		TotalPurchases: len(bills),
		Bills:          bills,
	}, nil
}

func codeForProductID(productsByCode map[string]*entity.Product, id uint) string {
	for code, product := range productsByCode {
		if product.ID == id {
			return code
		}
	}
	return fmt.Sprintf("#%d", id)
}

// toCents converts a decimal amount to minor units
func toCents(amount float64) int64 {
	if amount >= 0 {
		return int64(amount*100 + 0.5)
	}
	return int64(amount*100 - 0.5)
}
