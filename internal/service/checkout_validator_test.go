package service

import (
	"testing"

	"github.com/optp-storefront/internal/constants"
)

func TestValidateCheckoutFormAllEmpty(t *testing.T) {
	fieldErrors := ValidateCheckoutForm(CheckoutForm{})
	if len(fieldErrors) != 5 {
		t.Fatalf("expected 5 field errors, got %d: %v", len(fieldErrors), fieldErrors)
	}

	cases := map[string]string{
		constants.CheckoutFieldFullName:        MsgFullNameRequired,
		constants.CheckoutFieldPhoneNumber:     MsgPhoneNumberRequired,
		constants.CheckoutFieldEmail:           MsgEmailRequired,
		constants.CheckoutFieldDeliveryAddress: MsgDeliveryAddressRequired,
		constants.CheckoutFieldPaymentMethod:   MsgPaymentMethodRequired,
	}
	for field, want := range cases {
		if got := fieldErrors[field]; got != want {
			t.Fatalf("field %s: expected %q, got %q", field, want, got)
		}
	}
}

func TestValidateCheckoutFormInvalidFormats(t *testing.T) {
	fieldErrors := ValidateCheckoutForm(CheckoutForm{
		FullName:        "Ayesha Khan",
		PhoneNumber:     "12345",
		Email:           "not-an-email",
		DeliveryAddress: "House 12, Street 4",
		PaymentMethod:   "cod",
	})
	if len(fieldErrors) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(fieldErrors), fieldErrors)
	}
	if got := fieldErrors[constants.CheckoutFieldPhoneNumber]; got != MsgPhoneNumberInvalid {
		t.Fatalf("expected %q, got %q", MsgPhoneNumberInvalid, got)
	}
	if got := fieldErrors[constants.CheckoutFieldEmail]; got != MsgEmailInvalid {
		t.Fatalf("expected %q, got %q", MsgEmailInvalid, got)
	}
}

func TestValidateCheckoutFormValid(t *testing.T) {
	fieldErrors := ValidateCheckoutForm(CheckoutForm{
		FullName:        "  Ayesha Khan  ",
		PhoneNumber:     " 3001234567 ",
		Email:           "ayesha@example.com",
		DeliveryAddress: "House 12, Street 4",
		PaymentMethod:   "cod",
	})
	if len(fieldErrors) != 0 {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
}

func TestValidateLoginForm(t *testing.T) {
	fieldErrors := ValidateLoginForm("  ", "")
	if got := fieldErrors[constants.AuthFieldEmail]; got != MsgEmailRequired {
		t.Fatalf("expected %q, got %q", MsgEmailRequired, got)
	}
	if got := fieldErrors[constants.AuthFieldPassword]; got != MsgPasswordRequired {
		t.Fatalf("expected %q, got %q", MsgPasswordRequired, got)
	}

	if fieldErrors := ValidateLoginForm("user@example.com", "secret"); len(fieldErrors) != 0 {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
}

func TestValidateSignupForm(t *testing.T) {
	fieldErrors := ValidateSignupForm("", "user@example.com", "secret")
	if len(fieldErrors) != 1 {
		t.Fatalf("expected 1 field error, got %v", fieldErrors)
	}
	if got := fieldErrors[constants.AuthFieldUsername]; got != MsgUsernameRequired {
		t.Fatalf("expected %q, got %q", MsgUsernameRequired, got)
	}
}
