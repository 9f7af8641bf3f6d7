package main

import (
	"fmt"

	"github.com/optp-storefront/internal/catalog"
	"github.com/optp-storefront/internal/config"
	"github.com/optp-storefront/internal/logger"
	"github.com/optp-storefront/internal/models"
	"github.com/optp-storefront/internal/repository"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categories := catalog.BuiltinCategories()
	addOns := catalog.BuiltinAddOns()
	products := catalog.BuiltinProducts()

	// 全量覆盖写入，按相同主键重复执行幂等
	repo := repository.NewCatalogRepository(models.DB)
	if err := repo.ReplaceCatalog(categories, addOns, products); err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}

	fmt.Println("\n✅ Catalog seeded successfully!")
	fmt.Println("Summary:")
	fmt.Printf("- %d Categories\n", len(categories))
	fmt.Printf("- %d Add-ons\n", len(addOns))
	fmt.Printf("- %d Products\n", len(products))
}
