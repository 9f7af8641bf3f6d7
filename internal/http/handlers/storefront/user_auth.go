package storefront

import (
	"errors"
	"strings"

	"github.com/optp-storefront/internal/http/response"
	"github.com/optp-storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// SignupRequest 注册请求
type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest 登录请求
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup 用户注册
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request body", err)
		return
	}

	if fieldErrors := service.ValidateSignupForm(req.FullName, req.Email, req.Password); len(fieldErrors) > 0 {
		response.ErrorWithData(c, response.CodeBadRequest, "Validation failed", gin.H{
			"field_errors": fieldErrors,
		})
		return
	}

	user, err := h.AuthService.SignUp(req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, service.MsgEmailInvalid, nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, response.CodeBadRequest, "Password is too short", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeBadRequest, "Email is already registered", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to create account", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user_id":   user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
	})
}

// Signin 密码登录
func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Invalid request body", err)
		return
	}

	if fieldErrors := service.ValidateLoginForm(req.Email, req.Password); len(fieldErrors) > 0 {
		response.ErrorWithData(c, response.CodeBadRequest, "Validation failed", gin.H{
			"field_errors": fieldErrors,
		})
		return
	}

	session, err := h.AuthService.SignInWithPassword(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, "Invalid email or password", nil)
		case errors.Is(err, service.ErrUserDisabled):
			respondError(c, response.CodeForbidden, "Account is disabled", nil)
		default:
			respondError(c, response.CodeInternal, "Failed to sign in", err)
		}
		return
	}

	response.Success(c, session)
}

// Signout 登出，撤销该用户全部已签发 Token
func (h *Handler) Signout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.AuthService.SignOut(uid); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "User not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to sign out", err)
		return
	}
	response.Success(c, gin.H{"signed_out": true})
}

// GetSession 校验当前会话 Token
func (h *Handler) GetSession(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		respondError(c, response.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	session, err := h.AuthService.GetSession(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) {
			respondError(c, response.CodeUnauthorized, "Session is invalid or expired", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to verify session", err)
		return
	}
	response.Success(c, session)
}

// GetProfile 获取当前用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	profile, err := h.AuthService.GetProfile(uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "User not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "Failed to fetch profile", err)
		return
	}
	response.Success(c, profile)
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
