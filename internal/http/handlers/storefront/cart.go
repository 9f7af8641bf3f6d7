package storefront

import (
	"errors"
	"strconv"

	"github.com/optp-storefront/internal/http/response"
	"github.com/optp-storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 添加购物车行请求
type CartItemRequest struct {
	ProductID      uint   `json:"product_id" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	SelectedAddOns []uint `json:"selected_add_ons"`
}

// CartQuantityRequest 覆盖数量请求
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart 获取当前会话购物车
func (h *Handler) GetCart(c *gin.Context) {
	session, ok := getCartSession(c)
	if !ok {
		return
	}

	response.Success(c, gin.H{
		"items":       h.CartService.Items(session),
		"item_count":  h.CartService.ItemCount(session),
		"total_price": h.CartService.TotalPrice(session),
	})
}

// AddCartItem 添加商品到购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	session, ok := getCartSession(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request body", err)
		return
	}

	if err := h.CartService.AddToCart(session, service.CartLine{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		SelectedAddOns: req.SelectedAddOns,
	}); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCartItem):
			respondError(c, response.CodeBadRequest, "Invalid cart item", nil)
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "Product not found", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to update cart", err)
		}
		return
	}
	response.Success(c, gin.H{"added": true, "item_count": h.CartService.ItemCount(session)})
}

// UpdateCartItemQuantity 覆盖购物车行数量
func (h *Handler) UpdateCartItemQuantity(c *gin.Context) {
	session, ok := getCartSession(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "Invalid product id", nil)
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request body", err)
		return
	}

	h.CartService.UpdateQuantity(session, uint(productID), req.Quantity)
	response.Success(c, gin.H{"updated": true, "item_count": h.CartService.ItemCount(session)})
}

// DeleteCartItem 删除购物车行
func (h *Handler) DeleteCartItem(c *gin.Context) {
	session, ok := getCartSession(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "Invalid product id", nil)
		return
	}

	h.CartService.RemoveFromCart(session, uint(productID))
	response.Success(c, gin.H{"deleted": true, "item_count": h.CartService.ItemCount(session)})
}
