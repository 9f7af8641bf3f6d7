package models

import (
	"time"

	"gorm.io/gorm"
)

// AddOn 配料表（酱料、饮品等附加项）
type AddOn struct {
	ID        uint           `gorm:"primarykey" json:"id"`                         // 主键
	Name      string         `gorm:"not null" json:"name"`                         // 配料名称
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`            // 排序权重
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除时间
}

// TableName 指定表名
func (AddOn) TableName() string {
	return "add_ons"
}
