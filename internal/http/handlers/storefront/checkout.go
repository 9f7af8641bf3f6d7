package storefront

import (
	"errors"

	"github.com/optp-storefront/internal/http/response"
	"github.com/optp-storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutSubmitRequest 提交订单请求
type CheckoutSubmitRequest struct {
	service.CheckoutForm
	PrivacyAccepted bool `json:"privacy_accepted"`
}

// GetCheckoutQuote 获取当前会话结账报价
func (h *Handler) GetCheckoutQuote(c *gin.Context) {
	session, ok := getCartSession(c)
	if !ok {
		return
	}
	response.Success(c, h.CheckoutService.Quote(session))
}

// SubmitCheckout 提交订单
// 字段校验失败时响应 400，data 中带 field_errors 字段到文案的集合。
func (h *Handler) SubmitCheckout(c *gin.Context) {
	session, ok := getCartSession(c)
	if !ok {
		return
	}
	var req CheckoutSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request body", err)
		return
	}

	result, fieldErrors, err := h.CheckoutService.Submit(session, req.CheckoutForm, req.PrivacyAccepted)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAgreementRequired):
			respondError(c, response.CodeBadRequest, service.MsgPrivacyPolicyRequired, nil)
		case errors.Is(err, service.ErrCartEmpty):
			respondError(c, response.CodeBadRequest, "Your cart is empty", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to place order", err)
		}
		return
	}
	if len(fieldErrors) > 0 {
		response.ErrorWithData(c, response.CodeBadRequest, "Validation failed", gin.H{
			"field_errors": fieldErrors,
		})
		return
	}

	response.Success(c, result)
}
