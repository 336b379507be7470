package service

import (
	"strings"
	"time"

	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/repository"
)

// 活动时间接受的输入格式
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CalendarEventInput 日历事件输入，创建与整体替换共用
type CalendarEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
}

// CalendarService 日历业务服务
type CalendarService struct {
	repo repository.CalendarRepository
}

// NewCalendarService 创建日历服务
func NewCalendarService(repo repository.CalendarRepository) *CalendarService {
	return &CalendarService{repo: repo}
}

// List 全部日历事件，按活动时间升序
func (s *CalendarService) List() ([]models.CalendarEvent, error) {
	return s.repo.List()
}

// Get 根据路径参数获取日历事件
func (s *CalendarService) Get(rawID string) (*models.CalendarEvent, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// Create 创建日历事件
func (s *CalendarService) Create(input CalendarEventInput) (*models.CalendarEvent, error) {
	event, err := buildCalendarEvent(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Replace 整体替换日历事件，所有字段重新校验
func (s *CalendarService) Replace(rawID string, input CalendarEventInput) (*models.CalendarEvent, error) {
	existing, err := s.Get(rawID)
	if err != nil {
		return nil, err
	}

	event, err := buildCalendarEvent(input)
	if err != nil {
		return nil, err
	}
	event.ID = existing.ID
	event.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete 删除日历事件
func (s *CalendarService) Delete(rawID string) error {
	event, err := s.Get(rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(event.ID)
}

// buildCalendarEvent 校验输入并构造实体
func buildCalendarEvent(input CalendarEventInput) (*models.CalendarEvent, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, NewValidationError("title", "标题不能为空")
	}
	date, err := parseEventDate(input.Date)
	if err != nil {
		return nil, err
	}
	return &models.CalendarEvent{
		Title:       title,
		Description: input.Description,
		Location:    strings.TrimSpace(input.Location),
		Date:        date,
	}, nil
}

// parseEventDate 解析活动时间，依次尝试支持的格式
func parseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, NewValidationError("date", "活动时间不能为空")
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewValidationError("date", "活动时间格式无效")
}
