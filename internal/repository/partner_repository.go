package repository

import (
	"errors"

	"github.com/sdkthunder/site-api/internal/models"

	"gorm.io/gorm"
)

// 合作伙伴固定排序：权重优先，再按等级（GOLD 最高），最后按创建时间
const partnerOrderClause = "sort_order ASC, " +
	"CASE tier WHEN 'GOLD' THEN 0 WHEN 'SILVER' THEN 1 WHEN 'BRONZE' THEN 2 ELSE 3 END ASC, " +
	"created_at ASC, id ASC"

// PartnerRepository 合作伙伴数据访问接口
type PartnerRepository interface {
	List(filter PartnerListFilter) ([]models.Partner, error)
	GetByID(id uint) (*models.Partner, error)
	Create(partner *models.Partner) error
	Update(partner *models.Partner) error
	Delete(id uint) error
}

// GormPartnerRepository GORM 实现
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository 创建合作伙伴仓库
func NewPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// List 合作伙伴列表
func (r *GormPartnerRepository) List(filter PartnerListFilter) ([]models.Partner, error) {
	var partners []models.Partner
	query := r.db.Model(&models.Partner{})

	if filter.OnlyActive {
		query = query.Where("active = ?", true)
	}

	if err := query.Order(partnerOrderClause).Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// GetByID 根据 ID 获取合作伙伴
func (r *GormPartnerRepository) GetByID(id uint) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

// Create 创建合作伙伴
func (r *GormPartnerRepository) Create(partner *models.Partner) error {
	return r.db.Create(partner).Error
}

// Update 更新合作伙伴
func (r *GormPartnerRepository) Update(partner *models.Partner) error {
	return r.db.Save(partner).Error
}

// Delete 删除合作伙伴
func (r *GormPartnerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Partner{}, id).Error
}
