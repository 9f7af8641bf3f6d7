package service

import "errors"

// 服务层业务错误定义，handler 据此映射响应码与文案
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already exists")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrSessionInvalid     = errors.New("session invalid")

	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCartItem = errors.New("invalid cart item")

	ErrCartEmpty         = errors.New("cart is empty")
	ErrAgreementRequired = errors.New("privacy policy not accepted")
)
