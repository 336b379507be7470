package models

import "time"

// AboutValue 关于页价值观条目表
type AboutValue struct {
	ID        uint      `gorm:"primarykey" json:"id"`                           // 主键
	Text      string    `gorm:"type:varchar(500);not null" json:"text"`         // 文案，去除首尾空白后非空
	SortOrder int       `gorm:"column:sort_order;default:0;index" json:"order"` // 排序权重
	IsActive  bool      `gorm:"default:true;index" json:"isActive"`             // 是否展示
	CreatedAt time.Time `gorm:"index" json:"createdAt"`                         // 创建时间
}

// TableName 指定表名
func (AboutValue) TableName() string {
	return "about_values"
}
