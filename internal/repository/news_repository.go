package repository

import (
	"errors"
	"strings"

	"github.com/sdkthunder/site-api/internal/constants"
	"github.com/sdkthunder/site-api/internal/models"

	"gorm.io/gorm"
)

// NewsRepository 新闻数据访问接口
type NewsRepository interface {
	List(filter NewsListFilter) ([]models.NewsArticle, error)
	GetByID(id uint) (*models.NewsArticle, error)
	Create(article *models.NewsArticle) error
	Update(article *models.NewsArticle) error
	Delete(id uint) error
	IncrementViews(id uint, delta int) (int64, error)
}

// GormNewsRepository GORM 实现
type GormNewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository 创建新闻仓库
func NewNewsRepository(db *gorm.DB) *GormNewsRepository {
	return &GormNewsRepository{db: db}
}

// List 新闻列表
func (r *GormNewsRepository) List(filter NewsListFilter) ([]models.NewsArticle, error) {
	var articles []models.NewsArticle
	query := r.db.Model(&models.NewsArticle{})

	if category := strings.TrimSpace(filter.Category); category != "" && category != constants.CategoryAll {
		query = query.Where("category = ?", category)
	}
	if filter.OnlyPublished {
		query = query.Where("published = ?", true)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC, id DESC"
	}

	if err := query.Order(orderBy).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// GetByID 根据 ID 获取新闻
func (r *GormNewsRepository) GetByID(id uint) (*models.NewsArticle, error) {
	var article models.NewsArticle
	if err := r.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Create 创建新闻
func (r *GormNewsRepository) Create(article *models.NewsArticle) error {
	return r.db.Create(article).Error
}

// Update 更新新闻
// views 不在更新列内，避免整行回写覆盖并发的 IncrementViews。
func (r *GormNewsRepository) Update(article *models.NewsArticle) error {
	return r.db.Model(article).
		Select("*").
		Omit("id", "created_at", "views").
		Updates(article).Error
}

// Delete 删除新闻
func (r *GormNewsRepository) Delete(id uint) error {
	return r.db.Delete(&models.NewsArticle{}, id).Error
}

// IncrementViews 原子递增浏览计数，返回受影响行数
// 必须在存储层以相对当前值的方式累加，并发请求不得丢失更新。
func (r *GormNewsRepository) IncrementViews(id uint, delta int) (int64, error) {
	result := r.db.Model(&models.NewsArticle{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta))
	return result.RowsAffected, result.Error
}
