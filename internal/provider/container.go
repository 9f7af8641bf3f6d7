package provider

import (
	"github.com/optp-storefront/internal/cache"
	"github.com/optp-storefront/internal/config"
	"github.com/optp-storefront/internal/logger"
	"github.com/optp-storefront/internal/models"
	"github.com/optp-storefront/internal/queue"
	"github.com/optp-storefront/internal/repository"
	"github.com/optp-storefront/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo    repository.UserRepository
	CatalogRepo repository.CatalogRepository

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	AuthService     *service.AuthService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CatalogRepo = repository.NewCatalogRepository(db)
}

func (c *Container) initServices() {
	snapshot := service.LoadSnapshot(c.Config.Catalog, c.CatalogRepo)
	c.CatalogService = service.NewCatalogService(snapshot)
	c.CartService = service.NewCartService(c.CatalogService)
	c.CheckoutService = service.NewCheckoutService(c.CartService, c.QueueClient, c.Config.Pricing)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
}
