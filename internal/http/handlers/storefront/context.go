package storefront

import (
	"github.com/optp-storefront/internal/constants"
	handlershared "github.com/optp-storefront/internal/http/handlers/shared"
	"github.com/optp-storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

// getCartSession 读取中间件注入的购物车会话 ID
func getCartSession(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.CartSessionContextKey)
	if !exists {
		respondError(c, response.CodeBadRequest, "Cart session missing", nil)
		return "", false
	}
	session, ok := value.(string)
	if !ok || session == "" {
		respondError(c, response.CodeBadRequest, "Cart session missing", nil)
		return "", false
	}
	return session, true
}
