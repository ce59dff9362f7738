package service

import (
	"context"
	"testing"

	"github.com/praveenm/billing-api/internal/domain/repository"
	"github.com/praveenm/billing-api/pkg/apperror"
	"github.com/praveenm/billing-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("create and fetch round trip", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.productService()

		created, err := svc.CreateProduct(ctx, &ProductInput{
			Code:            "PROD001",
			Name:            "Laptop",
			AvailableStocks: 10,
			PricePerUnit:    500.00,
			TaxPercentage:   18,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, int64(50000), created.UnitPrice)
		assert.Equal(t, 500.00, created.GetUnitPriceDecimal())

		fetched, err := svc.GetProduct(ctx, "PROD001")
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "Laptop", fetched.Name)
		assert.Equal(t, 10, fetched.AvailableStocks)
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.productService()

		_, err := svc.CreateProduct(ctx, &ProductInput{
			Code: "PROD001", Name: "Laptop", AvailableStocks: 10, PricePerUnit: 500, TaxPercentage: 18,
		})
		require.NoError(t, err)

		_, err = svc.CreateProduct(ctx, &ProductInput{
			Code: "PROD001", Name: "Other", AvailableStocks: 1, PricePerUnit: 10, TaxPercentage: 5,
		})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})

	t.Run("rejects non positive price", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.productService()

		_, err := svc.CreateProduct(ctx, &ProductInput{
			Code: "PROD001", Name: "Free", AvailableStocks: 1, PricePerUnit: 0, TaxPercentage: 0,
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)
	svc := ts.productService()

	_, err := svc.GetProduct(ctx, "MISSING")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("full replacement", func(t *testing.T) {
		ts := newTestStore(t)
		ts.seedProduct(t, "PROD001", "Laptop", 10, 50000, 18)
		svc := ts.productService()

		updated, err := svc.UpdateProduct(ctx, "PROD001", &ProductInput{
			Code:            "PROD001",
			Name:            "Laptop Pro",
			AvailableStocks: 7,
			PricePerUnit:    650.50,
			TaxPercentage:   12,
		})
		require.NoError(t, err)
		assert.Equal(t, "Laptop Pro", updated.Name)
		assert.Equal(t, 7, updated.AvailableStocks)
		assert.Equal(t, int64(65050), updated.UnitPrice)
		assert.Equal(t, 12.0, updated.TaxPercentage)
	})

	t.Run("code change checks for collisions", func(t *testing.T) {
		ts := newTestStore(t)
		ts.seedProduct(t, "PROD001", "Laptop", 10, 50000, 18)
		ts.seedProduct(t, "PROD002", "Mouse", 50, 500, 12)
		svc := ts.productService()

		_, err := svc.UpdateProduct(ctx, "PROD001", &ProductInput{
			Code: "PROD002", Name: "Laptop", AvailableStocks: 10, PricePerUnit: 500, TaxPercentage: 18,
		})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)

		updated, err := svc.UpdateProduct(ctx, "PROD001", &ProductInput{
			Code: "PROD003", Name: "Laptop", AvailableStocks: 10, PricePerUnit: 500, TaxPercentage: 18,
		})
		require.NoError(t, err)
		assert.Equal(t, "PROD003", updated.Code)

		_, err = svc.GetProduct(ctx, "PROD001")
		require.Error(t, err)
	})

	t.Run("missing product", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.productService()

		_, err := svc.UpdateProduct(ctx, "MISSING", &ProductInput{
			Code: "MISSING", Name: "X", AvailableStocks: 1, PricePerUnit: 1, TaxPercentage: 0,
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("delete unreferenced product", func(t *testing.T) {
		ts := newTestStore(t)
		ts.seedProduct(t, "PROD001", "Laptop", 10, 50000, 18)
		svc := ts.productService()

		require.NoError(t, svc.DeleteProduct(ctx, "PROD001"))

		_, err := svc.GetProduct(ctx, "PROD001")
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("billed product cannot be deleted", func(t *testing.T) {
		ts := newTestStore(t)
		ts.seedProduct(t, "PROD001", "Laptop", 10, 10000, 0)
		billing := ts.billingService()
		svc := ts.productService()

		_, err := billing.CreateBill(ctx, &CreateBillInput{
			CustomerEmail: "alice@example.com",
			Items:         []BillItemInput{{ProductCode: "PROD001", Quantity: 1}},
			PaidAmount:    100,
		})
		require.NoError(t, err)

		err = svc.DeleteProduct(ctx, "PROD001")
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)

		// still there
		_, err = svc.GetProduct(ctx, "PROD001")
		require.NoError(t, err)
	})

	t.Run("missing product", func(t *testing.T) {
		ts := newTestStore(t)
		svc := ts.productService()

		err := svc.DeleteProduct(ctx, "MISSING")
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)
	ts.seedProduct(t, "PROD001", "Laptop", 10, 50000, 18)
	ts.seedProduct(t, "PROD002", "Mouse", 50, 500, 12)
	ts.seedProduct(t, "PROD003", "Keyboard", 30, 2000, 12)
	svc := ts.productService()

	result, err := svc.ListProducts(ctx, &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 2},
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)

	filtered, err := svc.ListProducts(ctx, &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
		Search:     "Mou",
	})
	require.NoError(t, err)
	require.Len(t, filtered.Items, 1)
	assert.Equal(t, "PROD002", filtered.Items[0].Code)
}
