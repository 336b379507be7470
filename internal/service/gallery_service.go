package service

import (
	"strings"

	"github.com/sdkthunder/site-api/internal/constants"
	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/repository"
)

// CreateGalleryItemInput 创建媒体条目的输入
type CreateGalleryItemInput struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	URL         string   `json:"url"`
	Thumbnail   *string  `json:"thumbnail"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Featured    bool     `json:"featured"`
	Order       *int     `json:"order"`
	Duration    *string  `json:"duration"`
}

// UpdateGalleryItemInput 更新媒体条目的输入，nil 字段表示不变
type UpdateGalleryItemInput struct {
	Title       *string   `json:"title"`
	Type        *string   `json:"type"`
	URL         *string   `json:"url"`
	Thumbnail   *string   `json:"thumbnail"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	Description *string   `json:"description"`
	Author      *string   `json:"author"`
	Featured    *bool     `json:"featured"`
	Order       *int      `json:"order"`
	Duration    *string   `json:"duration"`
}

// GalleryService 媒体库业务服务
type GalleryService struct {
	repo repository.GalleryRepository
}

// NewGalleryService 创建媒体库服务
func NewGalleryService(repo repository.GalleryRepository) *GalleryService {
	return &GalleryService{repo: repo}
}

// List 按分类与类型过滤的列表，管理端与公开端共用
func (s *GalleryService) List(category, mediaType string) ([]models.GalleryItem, error) {
	if mediaType != "" {
		normalized, err := normalizeGalleryType(mediaType)
		if err != nil {
			return nil, err
		}
		mediaType = normalized
	}
	return s.repo.List(repository.GalleryListFilter{
		Category: category,
		Type:     mediaType,
	})
}

// Get 根据路径参数获取媒体条目
func (s *GalleryService) Get(rawID string) (*models.GalleryItem, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create 创建媒体条目
func (s *GalleryService) Create(input CreateGalleryItemInput) (*models.GalleryItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, NewValidationError("title", "标题不能为空")
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, NewValidationError("url", "资源地址不能为空")
	}

	mediaType := constants.GalleryTypePhoto
	if strings.TrimSpace(input.Type) != "" {
		normalized, err := normalizeGalleryType(input.Type)
		if err != nil {
			return nil, err
		}
		mediaType = normalized
	}

	item := &models.GalleryItem{
		Title:       title,
		Type:        mediaType,
		URL:         url,
		Thumbnail:   input.Thumbnail,
		Category:    strings.TrimSpace(input.Category),
		Tags:        models.StringArray(input.Tags),
		Description: input.Description,
		Author:      strings.TrimSpace(input.Author),
		Featured:    input.Featured,
		Duration:    input.Duration,
	}
	if item.Category == "" {
		item.Category = constants.CategoryAll
	}
	if item.Author == "" {
		item.Author = constants.DefaultGalleryAuthor
	}
	if input.Order != nil {
		item.SortOrder = *input.Order
	}

	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update 按字段更新媒体条目
func (s *GalleryService) Update(rawID string, input UpdateGalleryItemInput) (*models.GalleryItem, error) {
	item, err := s.Get(rawID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, NewValidationError("title", "标题不能为空")
		}
		item.Title = title
	}
	if input.Type != nil {
		mediaType, err := normalizeGalleryType(*input.Type)
		if err != nil {
			return nil, err
		}
		item.Type = mediaType
	}
	if input.URL != nil {
		url := strings.TrimSpace(*input.URL)
		if url == "" {
			return nil, NewValidationError("url", "资源地址不能为空")
		}
		item.URL = url
	}
	if input.Thumbnail != nil {
		item.Thumbnail = input.Thumbnail
	}
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			category = constants.CategoryAll
		}
		item.Category = category
	}
	if input.Tags != nil {
		item.Tags = models.StringArray(*input.Tags)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Author != nil {
		item.Author = strings.TrimSpace(*input.Author)
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}
	if input.Order != nil {
		item.SortOrder = *input.Order
	}
	if input.Duration != nil {
		item.Duration = input.Duration
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除媒体条目
func (s *GalleryService) Delete(rawID string) error {
	item, err := s.Get(rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(item.ID)
}

// normalizeGalleryType 校验并归一化媒体类型
func normalizeGalleryType(mediaType string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(mediaType)) {
	case constants.GalleryTypePhoto:
		return constants.GalleryTypePhoto, nil
	case constants.GalleryTypeVideo:
		return constants.GalleryTypeVideo, nil
	default:
		return "", NewValidationError("type", "媒体类型必须是 PHOTO/VIDEO 之一")
	}
}
