package repository

import (
	"errors"

	"github.com/sdkthunder/site-api/internal/models"

	"gorm.io/gorm"
)

// CalendarRepository 日历数据访问接口
type CalendarRepository interface {
	List() ([]models.CalendarEvent, error)
	GetByID(id uint) (*models.CalendarEvent, error)
	Create(event *models.CalendarEvent) error
	Update(event *models.CalendarEvent) error
	Delete(id uint) error
}

// GormCalendarRepository GORM 实现
type GormCalendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository 创建日历仓库
func NewCalendarRepository(db *gorm.DB) *GormCalendarRepository {
	return &GormCalendarRepository{db: db}
}

// List 日历列表，按活动时间升序
func (r *GormCalendarRepository) List() ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if err := r.db.Order("date ASC, created_at ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID 根据 ID 获取日历事件
func (r *GormCalendarRepository) GetByID(id uint) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// Create 创建日历事件
func (r *GormCalendarRepository) Create(event *models.CalendarEvent) error {
	return r.db.Create(event).Error
}

// Update 更新日历事件
func (r *GormCalendarRepository) Update(event *models.CalendarEvent) error {
	return r.db.Save(event).Error
}

// Delete 删除日历事件
func (r *GormCalendarRepository) Delete(id uint) error {
	return r.db.Delete(&models.CalendarEvent{}, id).Error
}
