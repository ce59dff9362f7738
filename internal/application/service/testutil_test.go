package service

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/praveenm/billing-api/internal/domain/entity"
	domainRepo "github.com/praveenm/billing-api/internal/domain/repository"
	infraRepo "github.com/praveenm/billing-api/internal/infrastructure/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testStore bundles an isolated database with the repositories under test
type testStore struct {
	db               *gorm.DB
	productRepo      domainRepo.ProductRepository
	denominationRepo domainRepo.DenominationRepository
	billRepo         domainRepo.BillRepository
	txManager        domainRepo.TransactionManager
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "billing.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.Product{},
		&entity.Denomination{},
		&entity.Bill{},
		&entity.BillItem{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &testStore{
		db:               db,
		productRepo:      infraRepo.NewProductRepository(db),
		denominationRepo: infraRepo.NewDenominationRepository(db),
		billRepo:         infraRepo.NewBillRepository(db),
		txManager:        infraRepo.NewTransactionManager(db),
	}
}

func (ts *testStore) billingService() *BillingService {
	return NewBillingService(ts.billRepo, ts.productRepo, ts.denominationRepo, ts.txManager)
}

func (ts *testStore) productService() *ProductService {
	return NewProductService(ts.productRepo)
}

func (ts *testStore) denominationService() *DenominationService {
	return NewDenominationService(ts.denominationRepo)
}

func (ts *testStore) seedProduct(t *testing.T, code, name string, stock int, priceCents int64, taxPct float64) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Code:            code,
		Name:            name,
		AvailableStocks: stock,
		UnitPrice:       priceCents,
		TaxPercentage:   taxPct,
	}
	if err := ts.db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product %s: %v", code, err)
	}
	return product
}

func (ts *testStore) seedDenominations(t *testing.T, values ...int64) {
	t.Helper()
	for _, value := range values {
		if err := ts.db.Create(&entity.Denomination{Value: value}).Error; err != nil {
			t.Fatalf("failed to seed denomination %d: %v", value, err)
		}
	}
}

func (ts *testStore) productStock(t *testing.T, code string) int {
	t.Helper()
	var product entity.Product
	if err := ts.db.First(&product, "code = ?", code).Error; err != nil {
		t.Fatalf("failed to load product %s: %v", code, err)
	}
	return product.AvailableStocks
}

func (ts *testStore) billCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := ts.db.Model(&entity.Bill{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count bills: %v", err)
	}
	return count
}
