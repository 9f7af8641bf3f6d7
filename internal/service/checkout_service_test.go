package service

import (
	"errors"
	"testing"

	"github.com/optp-storefront/internal/config"
	"github.com/optp-storefront/internal/constants"
)

func newTestCheckoutService() (*CheckoutService, *CartService) {
	cartService := newTestCartService()
	checkoutService := NewCheckoutService(cartService, nil, config.PricingConfig{
		TaxRate:     0.15,
		DeliveryFee: 120,
	})
	return checkoutService, cartService
}

func validCheckoutForm() CheckoutForm {
	return CheckoutForm{
		FullName:        "Ayesha Khan",
		PhoneNumber:     "3001234567",
		Email:           "ayesha@example.com",
		DeliveryAddress: "House 12, Street 4, Islamabad",
		PaymentMethod:   "cod",
	}
}

func TestCheckoutQuoteMath(t *testing.T) {
	checkoutService, cartService := newTestCheckoutService()

	if err := cartService.AddToCart("s1", CartLine{ProductID: 107, Quantity: 1, SelectedAddOns: []uint{801}}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	quote := checkoutService.Quote("s1")
	if got := quote.Subtotal.String(); got != "1270.00" {
		t.Fatalf("expected subtotal 1270.00, got %s", got)
	}
	if got := quote.AddOnsCost.String(); got != "80.00" {
		t.Fatalf("expected add-ons cost 80.00, got %s", got)
	}
	if got := quote.Tax.String(); got != "190.50" {
		t.Fatalf("expected tax 190.50, got %s", got)
	}
	if got := quote.DeliveryFee.String(); got != "120.00" {
		t.Fatalf("expected delivery fee 120.00, got %s", got)
	}
	// 总价 = 小计 + 税费 + 配送费，配料小计已含在小计中不重复累加
	if got := quote.GrandTotal.String(); got != "1580.50" {
		t.Fatalf("expected grand total 1580.50, got %s", got)
	}
}

func TestCheckoutQuoteEmptyCart(t *testing.T) {
	checkoutService, _ := newTestCheckoutService()

	quote := checkoutService.Quote("nobody")
	if got := quote.Subtotal.String(); got != "0.00" {
		t.Fatalf("expected subtotal 0.00, got %s", got)
	}
	if got := quote.Tax.String(); got != "0.00" {
		t.Fatalf("expected tax 0.00, got %s", got)
	}
	if got := quote.GrandTotal.String(); got != "120.00" {
		t.Fatalf("expected grand total 120.00, got %s", got)
	}
}

func TestCheckoutSubmitFieldErrors(t *testing.T) {
	checkoutService, cartService := newTestCheckoutService()

	if err := cartService.AddToCart("s1", CartLine{ProductID: 107, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	result, fieldErrors, err := checkoutService.Submit("s1", CheckoutForm{}, true)
	if err != nil {
		t.Fatalf("expected nil error for field failures, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result for field failures")
	}
	if len(fieldErrors) != 5 {
		t.Fatalf("expected 5 field errors, got %v", fieldErrors)
	}
	if got := fieldErrors[constants.CheckoutFieldFullName]; got != MsgFullNameRequired {
		t.Fatalf("expected %q, got %q", MsgFullNameRequired, got)
	}
	if cartService.ItemCount("s1") != 1 {
		t.Fatalf("failed submit must not clear cart")
	}
}

func TestCheckoutSubmitAgreementRequired(t *testing.T) {
	checkoutService, cartService := newTestCheckoutService()

	if err := cartService.AddToCart("s1", CartLine{ProductID: 107, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, _, err := checkoutService.Submit("s1", validCheckoutForm(), false)
	if !errors.Is(err, ErrAgreementRequired) {
		t.Fatalf("expected ErrAgreementRequired, got %v", err)
	}
	if cartService.ItemCount("s1") != 1 {
		t.Fatalf("failed submit must not clear cart")
	}
}

func TestCheckoutSubmitEmptyCart(t *testing.T) {
	checkoutService, _ := newTestCheckoutService()

	_, _, err := checkoutService.Submit("nobody", validCheckoutForm(), true)
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutSubmitSuccessClearsCart(t *testing.T) {
	checkoutService, cartService := newTestCheckoutService()

	if err := cartService.AddToCart("s1", CartLine{ProductID: 107, Quantity: 1, SelectedAddOns: []uint{801}}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	result, fieldErrors, err := checkoutService.Submit("s1", validCheckoutForm(), true)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if len(fieldErrors) != 0 {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
	if result == nil || result.OrderRef == "" {
		t.Fatalf("expected order ref in result")
	}
	if result.ItemCount != 1 {
		t.Fatalf("expected item count 1, got %d", result.ItemCount)
	}
	if got := result.Quote.GrandTotal.String(); got != "1580.50" {
		t.Fatalf("expected grand total 1580.50, got %s", got)
	}
	if cartService.ItemCount("s1") != 0 {
		t.Fatalf("successful submit must clear cart")
	}
}
