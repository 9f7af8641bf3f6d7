package service

import (
	"github.com/optp-storefront/internal/config"
	"github.com/optp-storefront/internal/logger"
	"github.com/optp-storefront/internal/models"
	"github.com/optp-storefront/internal/queue"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutQuote 结账报价
// AddOnsCost 为展示行，已包含在 Subtotal 中；总价不重复累加。
type CheckoutQuote struct {
	Subtotal    models.Money `json:"subtotal"`
	AddOnsCost  models.Money `json:"add_ons_cost"`
	Tax         models.Money `json:"tax"`
	DeliveryFee models.Money `json:"delivery_fee"`
	GrandTotal  models.Money `json:"grand_total"`
}

// CheckoutSubmitResult 下单结果
type CheckoutSubmitResult struct {
	OrderRef  string        `json:"order_ref"`
	ItemCount int           `json:"item_count"`
	Quote     CheckoutQuote `json:"quote"`
}

// CheckoutService 结账服务
type CheckoutService struct {
	cartService *CartService
	queueClient *queue.Client
	taxRate     decimal.Decimal
	deliveryFee models.Money
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(cartService *CartService, queueClient *queue.Client, pricing config.PricingConfig) *CheckoutService {
	taxRate := decimal.NewFromFloat(pricing.TaxRate)
	if taxRate.IsNegative() {
		taxRate = decimal.Zero
	}
	deliveryFee := models.NewMoneyFromFloat(pricing.DeliveryFee)
	if deliveryFee.IsNegative() {
		deliveryFee = models.NewMoneyFromInt(0)
	}
	return &CheckoutService{
		cartService: cartService,
		queueClient: queueClient,
		taxRate:     taxRate,
		deliveryFee: deliveryFee,
	}
}

// Quote 计算会话结账报价
func (s *CheckoutService) Quote(session string) CheckoutQuote {
	subtotal := s.cartService.TotalPrice(session)
	tax := models.NewMoneyFromDecimal(subtotal.Decimal.Mul(s.taxRate))
	return CheckoutQuote{
		Subtotal:    subtotal,
		AddOnsCost:  s.cartService.AddOnsCost(session),
		Tax:         tax,
		DeliveryFee: s.deliveryFee,
		GrandTotal:  subtotal.Add(tax).Add(s.deliveryFee),
	}
}

// Submit 提交订单
// 表单批量校验不通过时返回字段错误集合；隐私政策未勾选返回 ErrAgreementRequired。
// 成功后发出下单确认通知（尽力而为）并清空购物车，订单本身不落库。
func (s *CheckoutService) Submit(session string, form CheckoutForm, privacyAccepted bool) (*CheckoutSubmitResult, map[string]string, error) {
	fieldErrors := ValidateCheckoutForm(form)
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}
	if !privacyAccepted {
		return nil, nil, ErrAgreementRequired
	}
	itemCount := s.cartService.ItemCount(session)
	if itemCount == 0 {
		return nil, nil, ErrCartEmpty
	}

	result := &CheckoutSubmitResult{
		OrderRef:  uuid.NewString(),
		ItemCount: itemCount,
		Quote:     s.Quote(session),
	}

	if err := s.queueClient.EnqueueOrderConfirmation(queue.OrderConfirmationPayload{
		OrderRef:        result.OrderRef,
		Email:           form.Email,
		FullName:        form.FullName,
		DeliveryAddress: form.DeliveryAddress,
		PaymentMethod:   form.PaymentMethod,
		ItemCount:       result.ItemCount,
		GrandTotal:      result.Quote.GrandTotal.String(),
	}); err != nil {
		logger.Warnw("checkout_confirmation_enqueue_failed",
			"order_ref", result.OrderRef,
			"error", err,
		)
	}

	s.cartService.Clear(session)
	return result, nil, nil
}
