package catalog

import (
	"github.com/optp-storefront/internal/models"
)

// Snapshot 菜单目录快照
// 启动时加载一次，之后只读，所有查询方法无副作用。
type Snapshot struct {
	categories []models.Category
	addOns     []models.AddOn
	products   []models.Product

	productIdx map[uint]int
	addOnIdx   map[uint]int
}

// NewSnapshot 创建目录快照
func NewSnapshot(categories []models.Category, addOns []models.AddOn, products []models.Product) *Snapshot {
	s := &Snapshot{
		categories: append([]models.Category(nil), categories...),
		addOns:     append([]models.AddOn(nil), addOns...),
		products:   append([]models.Product(nil), products...),
		productIdx: make(map[uint]int, len(products)),
		addOnIdx:   make(map[uint]int, len(addOns)),
	}
	for i, p := range s.products {
		s.productIdx[p.ID] = i
	}
	for i, a := range s.addOns {
		s.addOnIdx[a.ID] = i
	}
	return s
}

// Categories 返回全部分类（目录顺序）
func (s *Snapshot) Categories() []models.Category {
	return append([]models.Category(nil), s.categories...)
}

// AddOns 返回全部配料（目录顺序）
func (s *Snapshot) AddOns() []models.AddOn {
	return append([]models.AddOn(nil), s.addOns...)
}

// ProductByID 按 ID 查询商品
func (s *Snapshot) ProductByID(id uint) (models.Product, bool) {
	i, ok := s.productIdx[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

// AddOnByID 按 ID 查询配料
func (s *Snapshot) AddOnByID(id uint) (models.AddOn, bool) {
	i, ok := s.addOnIdx[id]
	if !ok {
		return models.AddOn{}, false
	}
	return s.addOns[i], true
}

// ProductsByCategory 按分类查询商品（目录顺序，可能为空）
func (s *Snapshot) ProductsByCategory(categoryID uint) []models.Product {
	result := make([]models.Product, 0)
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			result = append(result, p)
		}
	}
	return result
}

// NewProducts 返回全部新品（目录顺序）
func (s *Snapshot) NewProducts() []models.Product {
	result := make([]models.Product, 0)
	for _, p := range s.products {
		if p.IsNew {
			result = append(result, p)
		}
	}
	return result
}

// AllowedAddOns 返回商品允许的配料（目录配料顺序，未知 ID 静默跳过）
func (s *Snapshot) AllowedAddOns(product models.Product) []models.AddOn {
	result := make([]models.AddOn, 0, len(product.AllowedAddOns))
	for _, addOn := range s.addOns {
		if product.AllowedAddOns.Contains(addOn.ID) {
			result = append(result, addOn)
		}
	}
	return result
}
