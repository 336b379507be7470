package repository

import (
	"errors"
	"strings"

	"github.com/sdkthunder/site-api/internal/constants"
	"github.com/sdkthunder/site-api/internal/models"

	"gorm.io/gorm"
)

// 媒体库固定排序：精选优先，再按权重，最新的在前
const galleryOrderClause = "featured DESC, sort_order ASC, created_at DESC, id DESC"

// GalleryRepository 媒体库数据访问接口
type GalleryRepository interface {
	List(filter GalleryListFilter) ([]models.GalleryItem, error)
	GetByID(id uint) (*models.GalleryItem, error)
	Create(item *models.GalleryItem) error
	Update(item *models.GalleryItem) error
	Delete(id uint) error
}

// GormGalleryRepository GORM 实现
type GormGalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository 创建媒体库仓库
func NewGalleryRepository(db *gorm.DB) *GormGalleryRepository {
	return &GormGalleryRepository{db: db}
}

// List 媒体库列表
func (r *GormGalleryRepository) List(filter GalleryListFilter) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	query := r.db.Model(&models.GalleryItem{})

	if category := strings.TrimSpace(filter.Category); category != "" && category != constants.CategoryAll {
		query = query.Where("category = ?", category)
	}
	if mediaType := strings.TrimSpace(filter.Type); mediaType != "" {
		query = query.Where("type = ?", mediaType)
	}

	if err := query.Order(galleryOrderClause).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取媒体条目
func (r *GormGalleryRepository) GetByID(id uint) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建媒体条目
func (r *GormGalleryRepository) Create(item *models.GalleryItem) error {
	return r.db.Create(item).Error
}

// Update 更新媒体条目
func (r *GormGalleryRepository) Update(item *models.GalleryItem) error {
	return r.db.Save(item).Error
}

// Delete 删除媒体条目
func (r *GormGalleryRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryItem{}, id).Error
}
