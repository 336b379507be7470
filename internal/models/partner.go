package models

import "time"

// Partner 合作伙伴表
type Partner struct {
	ID          uint      `gorm:"primarykey" json:"id"`                           // 主键
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`         // 名称
	Tier        string    `gorm:"type:varchar(20);not null;index" json:"tier"`    // 等级（GOLD/SILVER/BRONZE/PARTNER）
	Description *string   `gorm:"type:text" json:"description"`                   // 简介
	Logo        *string   `gorm:"type:varchar(500)" json:"logo"`                  // Logo
	Website     *string   `gorm:"type:varchar(500)" json:"website"`               // 官网
	Active      bool      `gorm:"default:true;index" json:"active"`               // 是否展示
	SortOrder   int       `gorm:"column:sort_order;default:0;index" json:"order"` // 排序权重
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`                         // 创建时间
}

// TableName 指定表名
func (Partner) TableName() string {
	return "partners"
}
