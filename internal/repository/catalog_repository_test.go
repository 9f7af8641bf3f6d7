package repository

import (
	"testing"

	"github.com/optp-storefront/internal/catalog"
	"github.com/optp-storefront/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCatalogRepositoryTest(t *testing.T) *GormCatalogRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.AddOn{}, &models.Product{}); err != nil {
		t.Fatalf("migrate catalog tables failed: %v", err)
	}
	return NewCatalogRepository(db)
}

func TestCatalogRepositoryReplaceAndList(t *testing.T) {
	repo := setupCatalogRepositoryTest(t)

	if err := repo.ReplaceCatalog(catalog.BuiltinCategories(), catalog.BuiltinAddOns(), catalog.BuiltinProducts()); err != nil {
		t.Fatalf("replace catalog failed: %v", err)
	}

	categories, err := repo.ListCategories()
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if len(categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(categories))
	}
	if categories[0].Name != "Deals" {
		t.Fatalf("unexpected first category: %s", categories[0].Name)
	}

	addOns, err := repo.ListAddOns()
	if err != nil {
		t.Fatalf("list add-ons failed: %v", err)
	}
	if len(addOns) != 7 {
		t.Fatalf("expected 7 add-ons, got %d", len(addOns))
	}

	products, err := repo.ListProducts()
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}
	if products[0].ID != 107 {
		t.Fatalf("unexpected first product id: %d", products[0].ID)
	}
	if len(products[0].AllowedAddOns) != 5 {
		t.Fatalf("expected 5 allowed add-ons on product 107, got %d", len(products[0].AllowedAddOns))
	}

	// 覆盖式写入应幂等
	if err := repo.ReplaceCatalog(catalog.BuiltinCategories(), catalog.BuiltinAddOns(), catalog.BuiltinProducts()); err != nil {
		t.Fatalf("second replace catalog failed: %v", err)
	}
	products, err = repo.ListProducts()
	if err != nil {
		t.Fatalf("list products after second replace failed: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 products after second replace, got %d", len(products))
	}
}
