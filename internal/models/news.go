package models

import "time"

// NewsArticle 新闻文章表
type NewsArticle struct {
	ID          uint        `gorm:"primarykey" json:"id"`                         // 主键
	Title       string      `gorm:"type:varchar(300);not null" json:"title"`      // 标题
	Slug        string      `gorm:"type:varchar(300);not null;index" json:"slug"` // URL 标识
	Summary     string      `gorm:"type:text" json:"summary"`                     // 摘要
	Content     string      `gorm:"type:text" json:"content"`                     // 正文
	Image       *string     `gorm:"type:varchar(500)" json:"image"`               // 封面图
	Category    string      `gorm:"type:varchar(60);index" json:"category"`       // 分类
	Tags        StringArray `gorm:"type:json" json:"tags"`                        // 标签数组
	Author      string      `gorm:"type:varchar(120)" json:"author"`              // 作者
	Published   bool        `gorm:"default:false;index" json:"published"`         // 是否发布
	Featured    bool        `gorm:"default:false" json:"featured"`                // 是否置顶推荐
	Trending    bool        `gorm:"default:false" json:"trending"`                // 是否热门
	ReadTime    string      `gorm:"type:varchar(30)" json:"readTime"`             // 阅读时长
	Views       int         `gorm:"default:0" json:"views"`                       // 浏览计数，仅经 IncrementViews 递增
	Comments    int         `gorm:"default:0" json:"comments"`                    // 评论计数
	Likes       int         `gorm:"default:0" json:"likes"`                       // 点赞计数
	PublishedAt *time.Time  `gorm:"index" json:"publishedAt"`                     // 发布时间，published 为 true 时非空
	CreatedAt   time.Time   `gorm:"index" json:"createdAt"`                       // 创建时间
}

// TableName 指定表名
func (NewsArticle) TableName() string {
	return "news_articles"
}
