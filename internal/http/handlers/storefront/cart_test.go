package storefront

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/optp-storefront/internal/catalog"
	"github.com/optp-storefront/internal/config"
	"github.com/optp-storefront/internal/constants"
	"github.com/optp-storefront/internal/provider"
	"github.com/optp-storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogService := service.NewCatalogService(catalog.BuiltinSnapshot())
	cartService := service.NewCartService(catalogService)
	container := &provider.Container{
		Config:          &config.Config{},
		CatalogService:  catalogService,
		CartService:     cartService,
		CheckoutService: service.NewCheckoutService(cartService, nil, config.PricingConfig{TaxRate: 0.15, DeliveryFee: 120}),
	}
	h := New(container)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		session := strings.TrimSpace(c.GetHeader(constants.CartSessionHeader))
		if session == "" {
			session = "test-session"
		}
		c.Set(constants.CartSessionContextKey, session)
		c.Next()
	})
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddCartItem)
	r.PUT("/cart/items/:product_id", h.UpdateCartItemQuantity)
	r.DELETE("/cart/items/:product_id", h.DeleteCartItem)
	r.GET("/checkout/quote", h.GetCheckoutQuote)
	r.POST("/checkout", h.SubmitCheckout)
	return r
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) envelope {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.CartSessionHeader, "test-session")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("%s %s: http status want 200 got %d", method, path, w.Code)
	}
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("%s %s: unmarshal response failed: %v", method, path, err)
	}
	return resp
}

func TestCartFlow(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/cart/items", `{"product_id":107,"quantity":2,"selected_add_ons":[801]}`)
	if resp.StatusCode != 0 {
		t.Fatalf("add item: status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}

	resp = doJSON(t, r, http.MethodGet, "/cart", "")
	if resp.StatusCode != 0 {
		t.Fatalf("get cart: status_code want 0 got %d", resp.StatusCode)
	}
	var cart struct {
		ItemCount  int    `json:"item_count"`
		TotalPrice string `json:"total_price"`
	}
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if cart.ItemCount != 2 {
		t.Fatalf("item_count want 2 got %d", cart.ItemCount)
	}
	// 1190×2 + 80（配料只计一次）
	if cart.TotalPrice != "2460.00" {
		t.Fatalf("total_price want 2460.00 got %s", cart.TotalPrice)
	}

	resp = doJSON(t, r, http.MethodPut, "/cart/items/107", `{"quantity":1}`)
	if resp.StatusCode != 0 {
		t.Fatalf("update quantity: status_code want 0 got %d", resp.StatusCode)
	}

	resp = doJSON(t, r, http.MethodGet, "/checkout/quote", "")
	var quote struct {
		Subtotal   string `json:"subtotal"`
		Tax        string `json:"tax"`
		GrandTotal string `json:"grand_total"`
	}
	if err := json.Unmarshal(resp.Data, &quote); err != nil {
		t.Fatalf("unmarshal quote failed: %v", err)
	}
	if quote.Subtotal != "1270.00" {
		t.Fatalf("subtotal want 1270.00 got %s", quote.Subtotal)
	}
	if quote.Tax != "190.50" {
		t.Fatalf("tax want 190.50 got %s", quote.Tax)
	}
	if quote.GrandTotal != "1580.50" {
		t.Fatalf("grand_total want 1580.50 got %s", quote.GrandTotal)
	}

	resp = doJSON(t, r, http.MethodDelete, "/cart/items/107", "")
	if resp.StatusCode != 0 {
		t.Fatalf("delete item: status_code want 0 got %d", resp.StatusCode)
	}
	resp = doJSON(t, r, http.MethodGet, "/cart", "")
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if cart.ItemCount != 0 {
		t.Fatalf("item_count after delete want 0 got %d", cart.ItemCount)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/cart/items", `{"product_id":999,"quantity":1}`)
	if resp.StatusCode != 404 {
		t.Fatalf("status_code want 404 got %d", resp.StatusCode)
	}
}

func TestSubmitCheckoutValidation(t *testing.T) {
	r := newTestRouter()

	if resp := doJSON(t, r, http.MethodPost, "/cart/items", `{"product_id":107,"quantity":1}`); resp.StatusCode != 0 {
		t.Fatalf("add item failed: %d", resp.StatusCode)
	}

	resp := doJSON(t, r, http.MethodPost, "/checkout", `{"privacy_accepted":true}`)
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}
	var data struct {
		FieldErrors map[string]string `json:"field_errors"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal field errors failed: %v", err)
	}
	if data.FieldErrors["fullName"] != service.MsgFullNameRequired {
		t.Fatalf("fullName error want %q got %q", service.MsgFullNameRequired, data.FieldErrors["fullName"])
	}
	if data.FieldErrors["paymentMethod"] != service.MsgPaymentMethodRequired {
		t.Fatalf("paymentMethod error want %q got %q", service.MsgPaymentMethodRequired, data.FieldErrors["paymentMethod"])
	}

	// 校验失败不清空购物车
	cartResp := doJSON(t, r, http.MethodGet, "/cart", "")
	var cart struct {
		ItemCount int `json:"item_count"`
	}
	if err := json.Unmarshal(cartResp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if cart.ItemCount != 1 {
		t.Fatalf("cart must survive failed validation, item_count got %d", cart.ItemCount)
	}
}

func TestSubmitCheckoutSuccess(t *testing.T) {
	r := newTestRouter()

	if resp := doJSON(t, r, http.MethodPost, "/cart/items", `{"product_id":107,"quantity":1,"selected_add_ons":[801]}`); resp.StatusCode != 0 {
		t.Fatalf("add item failed: %d", resp.StatusCode)
	}

	body := `{"full_name":"Ayesha Khan","phone_number":"3001234567","email":"ayesha@example.com","delivery_address":"House 12, Street 4","payment_method":"cod","privacy_accepted":true}`
	resp := doJSON(t, r, http.MethodPost, "/checkout", body)
	if resp.StatusCode != 0 {
		t.Fatalf("submit: status_code want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	var result struct {
		OrderRef  string `json:"order_ref"`
		ItemCount int    `json:"item_count"`
		Quote     struct {
			GrandTotal string `json:"grand_total"`
		} `json:"quote"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("unmarshal result failed: %v", err)
	}
	if result.OrderRef == "" {
		t.Fatalf("order_ref should not be empty")
	}
	if result.Quote.GrandTotal != "1580.50" {
		t.Fatalf("grand_total want 1580.50 got %s", result.Quote.GrandTotal)
	}

	cartResp := doJSON(t, r, http.MethodGet, "/cart", "")
	var cart struct {
		ItemCount int `json:"item_count"`
	}
	if err := json.Unmarshal(cartResp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if cart.ItemCount != 0 {
		t.Fatalf("cart must be cleared after successful checkout, got %d", cart.ItemCount)
	}
}
