package service

import (
	"regexp"
	"strings"

	"github.com/optp-storefront/internal/constants"
)

// 校验文案为面向用户的固定英文字符串，前端按字段直接展示
const (
	MsgFullNameRequired        = "Full name is required"
	MsgPhoneNumberRequired     = "Phone number is required"
	MsgPhoneNumberInvalid      = "Please enter a valid 10-digit phone number"
	MsgEmailRequired           = "Email is required"
	MsgEmailInvalid            = "Please enter a valid email address"
	MsgDeliveryAddressRequired = "Delivery address is required"
	MsgPaymentMethodRequired   = "Please select a payment method"
	MsgPrivacyPolicyRequired   = "Please accept the privacy policy to continue"
	MsgPasswordRequired        = "Password is required"
	MsgUsernameRequired        = "Username is required"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// CheckoutForm 结账表单
type CheckoutForm struct {
	FullName        string `json:"full_name"`
	PhoneNumber     string `json:"phone_number"`
	Email           string `json:"email"`
	DeliveryAddress string `json:"delivery_address"`
	Instructions    string `json:"instructions"`
	PaymentMethod   string `json:"payment_method"`
}

// ValidateCheckoutForm 批量校验结账表单
// 所有字段一次性校验完，返回 字段→文案 的失败集合；为空即通过。
func ValidateCheckoutForm(form CheckoutForm) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(form.FullName) == "" {
		fieldErrors[constants.CheckoutFieldFullName] = MsgFullNameRequired
	}

	phone := strings.TrimSpace(form.PhoneNumber)
	if phone == "" {
		fieldErrors[constants.CheckoutFieldPhoneNumber] = MsgPhoneNumberRequired
	} else if !phonePattern.MatchString(phone) {
		fieldErrors[constants.CheckoutFieldPhoneNumber] = MsgPhoneNumberInvalid
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		fieldErrors[constants.CheckoutFieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(email) {
		fieldErrors[constants.CheckoutFieldEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(form.DeliveryAddress) == "" {
		fieldErrors[constants.CheckoutFieldDeliveryAddress] = MsgDeliveryAddressRequired
	}

	if form.PaymentMethod == "" {
		fieldErrors[constants.CheckoutFieldPaymentMethod] = MsgPaymentMethodRequired
	}

	return fieldErrors
}

// ValidateLoginForm 校验登录表单
func ValidateLoginForm(email, password string) map[string]string {
	fieldErrors := make(map[string]string)
	if strings.TrimSpace(email) == "" {
		fieldErrors[constants.AuthFieldEmail] = MsgEmailRequired
	}
	if strings.TrimSpace(password) == "" {
		fieldErrors[constants.AuthFieldPassword] = MsgPasswordRequired
	}
	return fieldErrors
}

// ValidateSignupForm 校验注册表单
func ValidateSignupForm(username, email, password string) map[string]string {
	fieldErrors := ValidateLoginForm(email, password)
	if strings.TrimSpace(username) == "" {
		fieldErrors[constants.AuthFieldUsername] = MsgUsernameRequired
	}
	return fieldErrors
}
