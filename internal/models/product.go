package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                // 主键
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`                   // 分类ID
	Name          string         `gorm:"not null" json:"name"`                                // 商品名称
	Description   string         `gorm:"type:text" json:"description"`                        // 商品描述
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`  // 价格金额
	Image         string         `gorm:"type:varchar(500)" json:"image"`                      // 商品图片
	IsNew         bool           `gorm:"default:false;index" json:"is_new"`                   // 是否新品
	Calories      *int           `json:"calories,omitempty"`                                  // 卡路里（可选）
	AllowedAddOns UintArray      `gorm:"type:json" json:"allowed_add_ons"`                    // 可选配料 ID 列表
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                   // 排序权重
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                          // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间

	// 关联
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
