package repository

import (
	"github.com/optp-storefront/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository 菜单目录数据访问接口
type CatalogRepository interface {
	ListCategories() ([]models.Category, error)
	ListAddOns() ([]models.AddOn, error)
	ListProducts() ([]models.Product, error)
	ReplaceCatalog(categories []models.Category, addOns []models.AddOn, products []models.Product) error
}

// GormCatalogRepository GORM 实现
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建目录仓库
func NewCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ListCategories 获取全部分类（按排序权重）
func (r *GormCatalogRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListAddOns 获取全部配料（按排序权重）
func (r *GormCatalogRepository) ListAddOns() ([]models.AddOn, error) {
	var addOns []models.AddOn
	if err := r.db.Order("sort_order ASC, id ASC").Find(&addOns).Error; err != nil {
		return nil, err
	}
	return addOns, nil
}

// ListProducts 获取全部商品（按排序权重）
func (r *GormCatalogRepository) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("sort_order ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ReplaceCatalog 覆盖式写入目录数据（用于 seed）
func (r *GormCatalogRepository) ReplaceCatalog(categories []models.Category, addOns []models.AddOn, products []models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 物理删除旧数据，保证按相同主键重复 seed 幂等
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.AddOn{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if len(categories) > 0 {
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}
		}
		if len(addOns) > 0 {
			if err := tx.Create(&addOns).Error; err != nil {
				return err
			}
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
