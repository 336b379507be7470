package models

import "time"

// AboutStat 关于页统计卡片表
type AboutStat struct {
	ID        uint      `gorm:"primarykey" json:"id"`                           // 主键
	Icon      string    `gorm:"type:varchar(60);not null" json:"icon"`          // 图标标识
	Number    string    `gorm:"type:varchar(60);not null" json:"number"`        // 展示数字
	Label     string    `gorm:"type:varchar(200);not null" json:"label"`        // 文案
	Color     string    `gorm:"type:varchar(120)" json:"color"`                 // 渐变色 token
	SortOrder int       `gorm:"column:sort_order;default:0;index" json:"order"` // 排序权重
	IsActive  bool      `gorm:"default:true;index" json:"isActive"`             // 是否展示
	CreatedAt time.Time `gorm:"index" json:"createdAt"`                         // 创建时间
}

// TableName 指定表名
func (AboutStat) TableName() string {
	return "about_stats"
}
