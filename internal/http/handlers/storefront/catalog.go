package storefront

import (
	"strconv"

	"github.com/optp-storefront/internal/http/response"
	"github.com/optp-storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// ProductDetailView 商品详情响应
type ProductDetailView struct {
	models.Product
	AllowedAddOns []models.AddOn `json:"allowed_add_ons"`
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, gin.H{"categories": h.CatalogService.Categories()})
}

// GetAddOns 获取配料列表
func (h *Handler) GetAddOns(c *gin.Context) {
	response.Success(c, gin.H{"add_ons": h.CatalogService.AddOns()})
}

// GetProducts 获取商品列表
// 支持 ?category_id= 按分类筛选、?new=1 仅返回新品。
func (h *Handler) GetProducts(c *gin.Context) {
	if c.Query("new") == "1" {
		response.Success(c, gin.H{"products": h.CatalogService.NewProducts()})
		return
	}

	rawCategoryID := c.Query("category_id")
	if rawCategoryID == "" {
		products := make([]models.Product, 0)
		for _, category := range h.CatalogService.Categories() {
			products = append(products, h.CatalogService.ProductsByCategory(category.ID)...)
		}
		response.Success(c, gin.H{"products": products})
		return
	}

	categoryID, err := strconv.ParseUint(rawCategoryID, 10, 64)
	if err != nil || categoryID == 0 {
		respondError(c, response.CodeBadRequest, "Invalid category id", nil)
		return
	}
	response.Success(c, gin.H{"products": h.CatalogService.ProductsByCategory(uint(categoryID))})
}

// GetProduct 获取商品详情，附带该商品允许的配料列表
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "Invalid product id", nil)
		return
	}

	product, ok := h.CatalogService.ProductByID(uint(productID))
	if !ok {
		respondError(c, response.CodeNotFound, "Product not found", nil)
		return
	}

	response.Success(c, ProductDetailView{
		Product:       product,
		AllowedAddOns: h.CatalogService.AllowedAddOns(product),
	})
}
