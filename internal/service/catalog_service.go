package service

import (
	"strings"

	"github.com/optp-storefront/internal/catalog"
	"github.com/optp-storefront/internal/config"
	"github.com/optp-storefront/internal/constants"
	"github.com/optp-storefront/internal/logger"
	"github.com/optp-storefront/internal/models"
	"github.com/optp-storefront/internal/repository"
)

// CatalogService 菜单目录服务
// 查询全部走内存快照，确定性且无副作用。
type CatalogService struct {
	snapshot *catalog.Snapshot
}

// NewCatalogService 创建目录服务
func NewCatalogService(snapshot *catalog.Snapshot) *CatalogService {
	return &CatalogService{snapshot: snapshot}
}

// LoadSnapshot 按配置加载目录快照
// source=database 时从数据库读取（cmd/seed 预先写入），失败则回退内置数据。
func LoadSnapshot(cfg config.CatalogConfig, repo repository.CatalogRepository) *catalog.Snapshot {
	source := strings.ToLower(strings.TrimSpace(cfg.Source))
	if source != constants.CatalogSourceDatabase || repo == nil {
		return catalog.BuiltinSnapshot()
	}

	categories, err := repo.ListCategories()
	if err != nil {
		logger.Warnw("catalog_load_categories_failed", "error", err)
		return catalog.BuiltinSnapshot()
	}
	addOns, err := repo.ListAddOns()
	if err != nil {
		logger.Warnw("catalog_load_add_ons_failed", "error", err)
		return catalog.BuiltinSnapshot()
	}
	products, err := repo.ListProducts()
	if err != nil {
		logger.Warnw("catalog_load_products_failed", "error", err)
		return catalog.BuiltinSnapshot()
	}
	if len(products) == 0 {
		logger.Warnw("catalog_database_empty", "fallback", "builtin")
		return catalog.BuiltinSnapshot()
	}
	logger.Infow("catalog_loaded_from_database",
		"categories", len(categories),
		"add_ons", len(addOns),
		"products", len(products),
	)
	return catalog.NewSnapshot(categories, addOns, products)
}

// Categories 获取全部分类
func (s *CatalogService) Categories() []models.Category {
	return s.snapshot.Categories()
}

// AddOns 获取全部配料
func (s *CatalogService) AddOns() []models.AddOn {
	return s.snapshot.AddOns()
}

// ProductByID 按 ID 获取商品
func (s *CatalogService) ProductByID(id uint) (models.Product, bool) {
	return s.snapshot.ProductByID(id)
}

// AddOnByID 按 ID 获取配料
func (s *CatalogService) AddOnByID(id uint) (models.AddOn, bool) {
	return s.snapshot.AddOnByID(id)
}

// ProductsByCategory 按分类获取商品
func (s *CatalogService) ProductsByCategory(categoryID uint) []models.Product {
	return s.snapshot.ProductsByCategory(categoryID)
}

// NewProducts 获取新品列表
func (s *CatalogService) NewProducts() []models.Product {
	return s.snapshot.NewProducts()
}

// AllowedAddOns 获取商品允许的配料列表
func (s *CatalogService) AllowedAddOns(product models.Product) []models.AddOn {
	return s.snapshot.AllowedAddOns(product)
}
