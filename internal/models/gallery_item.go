package models

import "time"

// GalleryItem 媒体库条目表
type GalleryItem struct {
	ID          uint        `gorm:"primarykey" json:"id"`                           // 主键
	Title       string      `gorm:"type:varchar(300);not null" json:"title"`        // 标题
	Type        string      `gorm:"type:varchar(20);not null;index" json:"type"`    // 媒体类型（PHOTO/VIDEO）
	URL         string      `gorm:"type:varchar(500);not null" json:"url"`          // 资源地址
	Thumbnail   *string     `gorm:"type:varchar(500)" json:"thumbnail"`             // 缩略图
	Category    string      `gorm:"type:varchar(60);default:'all';index" json:"category"` // 分类
	Tags        StringArray `gorm:"type:json" json:"tags"`                          // 标签数组
	Description string      `gorm:"type:text" json:"description"`                   // 描述
	Author      string      `gorm:"type:varchar(120)" json:"author"`                // 作者
	Featured    bool        `gorm:"default:false;index" json:"featured"`            // 是否精选
	SortOrder   int         `gorm:"column:sort_order;default:0;index" json:"order"` // 排序权重
	Duration    *string     `gorm:"type:varchar(30)" json:"duration"`               // 视频时长
	CreatedAt   time.Time   `gorm:"index" json:"createdAt"`                         // 创建时间
}

// TableName 指定表名
func (GalleryItem) TableName() string {
	return "gallery_items"
}
