package repository

import (
	"errors"

	"github.com/sdkthunder/site-api/internal/models"

	"gorm.io/gorm"
)

// 关于页条目固定排序：权重优先，早创建的在前
const aboutOrderClause = "sort_order ASC, created_at ASC, id ASC"

// AboutStatRepository 关于页统计卡片数据访问接口
type AboutStatRepository interface {
	List(filter AboutListFilter) ([]models.AboutStat, error)
	GetByID(id uint) (*models.AboutStat, error)
	Create(stat *models.AboutStat) error
	Update(stat *models.AboutStat) error
	Delete(id uint) error
}

// GormAboutStatRepository GORM 实现
type GormAboutStatRepository struct {
	db *gorm.DB
}

// NewAboutStatRepository 创建统计卡片仓库
func NewAboutStatRepository(db *gorm.DB) *GormAboutStatRepository {
	return &GormAboutStatRepository{db: db}
}

// List 统计卡片列表
func (r *GormAboutStatRepository) List(filter AboutListFilter) ([]models.AboutStat, error) {
	var stats []models.AboutStat
	query := r.db.Model(&models.AboutStat{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order(aboutOrderClause).Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// GetByID 根据 ID 获取统计卡片
func (r *GormAboutStatRepository) GetByID(id uint) (*models.AboutStat, error) {
	var stat models.AboutStat
	if err := r.db.First(&stat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stat, nil
}

// Create 创建统计卡片
func (r *GormAboutStatRepository) Create(stat *models.AboutStat) error {
	return r.db.Create(stat).Error
}

// Update 更新统计卡片
func (r *GormAboutStatRepository) Update(stat *models.AboutStat) error {
	return r.db.Save(stat).Error
}

// Delete 删除统计卡片
func (r *GormAboutStatRepository) Delete(id uint) error {
	return r.db.Delete(&models.AboutStat{}, id).Error
}

// AboutValueRepository 关于页价值观条目数据访问接口
type AboutValueRepository interface {
	List(filter AboutListFilter) ([]models.AboutValue, error)
	GetByID(id uint) (*models.AboutValue, error)
	Create(value *models.AboutValue) error
	Update(value *models.AboutValue) error
	Delete(id uint) error
}

// GormAboutValueRepository GORM 实现
type GormAboutValueRepository struct {
	db *gorm.DB
}

// NewAboutValueRepository 创建价值观条目仓库
func NewAboutValueRepository(db *gorm.DB) *GormAboutValueRepository {
	return &GormAboutValueRepository{db: db}
}

// List 价值观条目列表
func (r *GormAboutValueRepository) List(filter AboutListFilter) ([]models.AboutValue, error) {
	var values []models.AboutValue
	query := r.db.Model(&models.AboutValue{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order(aboutOrderClause).Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// GetByID 根据 ID 获取价值观条目
func (r *GormAboutValueRepository) GetByID(id uint) (*models.AboutValue, error) {
	var value models.AboutValue
	if err := r.db.First(&value, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

// Create 创建价值观条目
func (r *GormAboutValueRepository) Create(value *models.AboutValue) error {
	return r.db.Create(value).Error
}

// Update 更新价值观条目
func (r *GormAboutValueRepository) Update(value *models.AboutValue) error {
	return r.db.Save(value).Error
}

// Delete 删除价值观条目
func (r *GormAboutValueRepository) Delete(id uint) error {
	return r.db.Delete(&models.AboutValue{}, id).Error
}
