package service

import (
	"sync"

	"github.com/optp-storefront/internal/models"
)

// CartLine 购物车行（同一商品最多一行）
type CartLine struct {
	ProductID      uint   `json:"product_id"`
	Quantity       int    `json:"quantity"`
	SelectedAddOns []uint `json:"selected_add_ons"`
}

// CartAddOnDetail 购物车行配料明细
type CartAddOnDetail struct {
	ID    uint         `json:"id"`
	Name  string       `json:"name"`
	Price models.Money `json:"price"`
}

// CartItemDetail 购物车行详情（商品字段读取时从目录解析）
type CartItemDetail struct {
	ProductID      uint              `json:"product_id"`
	Name           string            `json:"name"`
	Image          string            `json:"image"`
	Quantity       int               `json:"quantity"`
	UnitPrice      models.Money      `json:"unit_price"`
	SelectedAddOns []CartAddOnDetail `json:"selected_add_ons"`
	LineTotal      models.Money      `json:"line_total"`
}

// CartService 购物车服务
// 每个会话一份有序账本，仅存内存，随进程消亡。
type CartService struct {
	catalogService *CatalogService

	mu    sync.RWMutex
	carts map[string][]CartLine
}

// NewCartService 创建购物车服务
func NewCartService(catalogService *CatalogService) *CartService {
	return &CartService{
		catalogService: catalogService,
		carts:          make(map[string][]CartLine),
	}
}

// AddToCart 添加购物车行
// 同一商品已存在时合并：数量累加，配料做保序去重的集合并集。
func (s *CartService) AddToCart(session string, item CartLine) error {
	if session == "" || item.ProductID == 0 || item.Quantity <= 0 {
		return ErrInvalidCartItem
	}
	if _, ok := s.catalogService.ProductByID(item.ProductID); !ok {
		return ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Quantity += item.Quantity
			lines[i].SelectedAddOns = mergeAddOnIDs(lines[i].SelectedAddOns, item.SelectedAddOns)
			s.carts[session] = lines
			return nil
		}
	}
	line := CartLine{
		ProductID:      item.ProductID,
		Quantity:       item.Quantity,
		SelectedAddOns: mergeAddOnIDs(nil, item.SelectedAddOns),
	}
	s.carts[session] = append(lines, line)
	return nil
}

// RemoveFromCart 删除购物车行，不存在时静默跳过
func (s *CartService) RemoveFromCart(session string, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	for i := range lines {
		if lines[i].ProductID == productID {
			s.carts[session] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity 覆盖式设置数量
// 负数钳制为 0；数量为 0 的行保留在账本中；行不存在时静默跳过。
func (s *CartService) UpdateQuantity(session string, productID uint, quantity int) {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			s.carts[session] = lines
			return
		}
	}
}

// Clear 清空会话购物车
func (s *CartService) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}

// Lines 返回会话账本的原始行（插入顺序）
func (s *CartService) Lines(session string) []CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[session]
	result := make([]CartLine, len(lines))
	for i, line := range lines {
		result[i] = CartLine{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			SelectedAddOns: append([]uint(nil), line.SelectedAddOns...),
		}
	}
	return result
}

// Items 返回会话购物车详情（商品与配料从目录解析）
func (s *CartService) Items(session string) []CartItemDetail {
	lines := s.Lines(session)
	details := make([]CartItemDetail, 0, len(lines))
	for _, line := range lines {
		detail := CartItemDetail{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			SelectedAddOns: make([]CartAddOnDetail, 0, len(line.SelectedAddOns)),
		}
		lineTotal := models.NewMoneyFromInt(0)
		if product, ok := s.catalogService.ProductByID(line.ProductID); ok {
			detail.Name = product.Name
			detail.Image = product.Image
			detail.UnitPrice = product.Price
			lineTotal = product.Price.MulInt(int64(line.Quantity))
		}
		for _, addOnID := range line.SelectedAddOns {
			addOn, ok := s.catalogService.AddOnByID(addOnID)
			if !ok {
				continue
			}
			detail.SelectedAddOns = append(detail.SelectedAddOns, CartAddOnDetail{
				ID:    addOn.ID,
				Name:  addOn.Name,
				Price: addOn.Price,
			})
			// 配料只按出现计一次，不随数量放大
			lineTotal = lineTotal.Add(addOn.Price)
		}
		detail.LineTotal = lineTotal
		details = append(details, detail)
	}
	return details
}

// TotalPrice 计算会话购物车总价
// 每行 数量×单价，配料每次出现计一次；未知 ID 贡献 0；空账本为 0。
func (s *CartService) TotalPrice(session string) models.Money {
	total := models.NewMoneyFromInt(0)
	for _, detail := range s.Items(session) {
		total = total.Add(detail.LineTotal)
	}
	return total
}

// AddOnsCost 计算会话购物车配料小计（每行每个配料计一次）
func (s *CartService) AddOnsCost(session string) models.Money {
	total := models.NewMoneyFromInt(0)
	for _, line := range s.Lines(session) {
		for _, addOnID := range line.SelectedAddOns {
			addOn, ok := s.catalogService.AddOnByID(addOnID)
			if !ok {
				continue
			}
			total = total.Add(addOn.Price)
		}
	}
	return total
}

// ItemCount 统计会话购物车商品件数
func (s *CartService) ItemCount(session string) int {
	count := 0
	for _, line := range s.Lines(session) {
		count += line.Quantity
	}
	return count
}

// mergeAddOnIDs 保序合并配料 ID（已有顺序在前，未见过的新 ID 追加在后）
func mergeAddOnIDs(existing, incoming []uint) []uint {
	merged := make([]uint, 0, len(existing)+len(incoming))
	seen := make(map[uint]struct{}, len(existing)+len(incoming))
	for _, id := range existing {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}
	for _, id := range incoming {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}
	return merged
}
