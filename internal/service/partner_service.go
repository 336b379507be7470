package service

import (
	"strings"

	"github.com/sdkthunder/site-api/internal/constants"
	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/repository"
)

// CreatePartnerInput 创建合作伙伴的输入
type CreatePartnerInput struct {
	Name        string  `json:"name"`
	Tier        string  `json:"tier"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Website     *string `json:"website"`
	Active      *bool   `json:"active"`
	Order       *int    `json:"order"`
}

// UpdatePartnerInput 更新合作伙伴的输入，nil 字段表示不变
type UpdatePartnerInput struct {
	Name        *string `json:"name"`
	Tier        *string `json:"tier"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Website     *string `json:"website"`
	Active      *bool   `json:"active"`
	Order       *int    `json:"order"`
}

// PartnerService 合作伙伴业务服务
type PartnerService struct {
	repo repository.PartnerRepository
}

// NewPartnerService 创建合作伙伴服务
func NewPartnerService(repo repository.PartnerRepository) *PartnerService {
	return &PartnerService{repo: repo}
}

// ListAdmin 管理端列表，含隐藏条目
func (s *PartnerService) ListAdmin() ([]models.Partner, error) {
	return s.repo.List(repository.PartnerListFilter{})
}

// ListPublic 公开列表，仅展示中的条目
func (s *PartnerService) ListPublic() ([]models.Partner, error) {
	return s.repo.List(repository.PartnerListFilter{OnlyActive: true})
}

// Get 根据路径参数获取合作伙伴
func (s *PartnerService) Get(rawID string) (*models.Partner, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	partner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrNotFound
	}
	return partner, nil
}

// Create 创建合作伙伴
func (s *PartnerService) Create(input CreatePartnerInput) (*models.Partner, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError("name", "名称不能为空")
	}
	tier, err := normalizeTier(input.Tier)
	if err != nil {
		return nil, err
	}

	partner := &models.Partner{
		Name:        name,
		Tier:        tier,
		Description: input.Description,
		Logo:        input.Logo,
		Website:     input.Website,
		Active:      true,
	}
	if input.Active != nil {
		partner.Active = *input.Active
	}
	if input.Order != nil {
		partner.SortOrder = *input.Order
	}

	if err := s.repo.Create(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// Update 按字段更新合作伙伴
func (s *PartnerService) Update(rawID string, input UpdatePartnerInput) (*models.Partner, error) {
	partner, err := s.Get(rawID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, NewValidationError("name", "名称不能为空")
		}
		partner.Name = name
	}
	if input.Tier != nil {
		tier, err := normalizeTier(*input.Tier)
		if err != nil {
			return nil, err
		}
		partner.Tier = tier
	}
	if input.Description != nil {
		partner.Description = input.Description
	}
	if input.Logo != nil {
		partner.Logo = input.Logo
	}
	if input.Website != nil {
		partner.Website = input.Website
	}
	if input.Active != nil {
		partner.Active = *input.Active
	}
	if input.Order != nil {
		partner.SortOrder = *input.Order
	}

	if err := s.repo.Update(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// Delete 删除合作伙伴
func (s *PartnerService) Delete(rawID string) error {
	partner, err := s.Get(rawID)
	if err != nil {
		return err
	}
	return s.repo.Delete(partner.ID)
}

// normalizeTier 校验并归一化等级取值
func normalizeTier(tier string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(tier)) {
	case constants.PartnerTierGold:
		return constants.PartnerTierGold, nil
	case constants.PartnerTierSilver:
		return constants.PartnerTierSilver, nil
	case constants.PartnerTierBronze:
		return constants.PartnerTierBronze, nil
	case constants.PartnerTierPartner:
		return constants.PartnerTierPartner, nil
	default:
		return "", NewValidationError("tier", "等级必须是 GOLD/SILVER/BRONZE/PARTNER 之一")
	}
}
