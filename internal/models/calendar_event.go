package models

import "time"

// CalendarEvent 赛程/活动日历表
type CalendarEvent struct {
	ID          uint      `gorm:"primarykey" json:"id"`                    // 主键
	Title       string    `gorm:"type:varchar(300);not null" json:"title"` // 标题
	Description string    `gorm:"type:text" json:"description"`            // 描述
	Location    string    `gorm:"type:varchar(300)" json:"location"`       // 地点
	Date        time.Time `gorm:"not null;index" json:"date"`              // 活动时间，更新时整体替换
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`                  // 创建时间
}

// TableName 指定表名
func (CalendarEvent) TableName() string {
	return "calendar_events"
}
