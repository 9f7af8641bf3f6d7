package router

import (
	"fmt"
	"strings"

	"github.com/optp-storefront/internal/cache"
	"github.com/optp-storefront/internal/config"
	storefronthandlers "github.com/optp-storefront/internal/http/handlers/storefront"
	"github.com/optp-storefront/internal/logger"
	"github.com/optp-storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	storefrontHandler := storefronthandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "optp"
	}
	redisClient := cache.Client()
	signinRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:signin", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "Too many sign-in attempts",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 门店前台接口（目录公开，购物车按 X-Cart-Session 区分会话）
		storefront := apiV1.Group("/storefront")
		storefront.Use(CartSessionMiddleware())
		{
			storefront.GET("/categories", storefrontHandler.GetCategories)
			storefront.GET("/add-ons", storefrontHandler.GetAddOns)
			storefront.GET("/products", storefrontHandler.GetProducts)
			storefront.GET("/products/:id", storefrontHandler.GetProduct)

			storefront.GET("/cart", storefrontHandler.GetCart)
			storefront.POST("/cart/items", storefrontHandler.AddCartItem)
			storefront.PUT("/cart/items/:product_id", storefrontHandler.UpdateCartItemQuantity)
			storefront.DELETE("/cart/items/:product_id", storefrontHandler.DeleteCartItem)

			storefront.GET("/checkout/quote", storefrontHandler.GetCheckoutQuote)
			storefront.POST("/checkout", storefrontHandler.SubmitCheckout)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/signup", storefrontHandler.Signup)
			auth.POST("/signin", RateLimitMiddleware(redisClient, signinRule, KeyByIPAndJSONField("email")), storefrontHandler.Signin)
			auth.GET("/session", storefrontHandler.GetSession)

			// 需鉴权的接口
			authorized := auth.Group("")
			authorized.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
			{
				authorized.POST("/signout", storefrontHandler.Signout)
				authorized.GET("/profile", storefrontHandler.GetProfile)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
