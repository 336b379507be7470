package service

import (
	"strings"

	"github.com/sdkthunder/site-api/internal/constants"
	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/repository"
)

// CreateAboutStatInput 创建统计卡片的输入
type CreateAboutStatInput struct {
	Icon     string `json:"icon"`
	Number   string `json:"number"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

// UpdateAboutStatInput 更新统计卡片的输入，nil 字段表示不变
type UpdateAboutStatInput struct {
	Icon     *string `json:"icon"`
	Number   *string `json:"number"`
	Label    *string `json:"label"`
	Color    *string `json:"color"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

// CreateAboutValueInput 创建价值观条目的输入
type CreateAboutValueInput struct {
	Text     string `json:"text"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

// UpdateAboutValueInput 更新价值观条目的输入，nil 字段表示不变
type UpdateAboutValueInput struct {
	Text     *string `json:"text"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

// AboutService 关于页业务服务，统计卡片与价值观条目一并维护
type AboutService struct {
	stats  repository.AboutStatRepository
	values repository.AboutValueRepository
}

// NewAboutService 创建关于页服务
func NewAboutService(stats repository.AboutStatRepository, values repository.AboutValueRepository) *AboutService {
	return &AboutService{stats: stats, values: values}
}

// ListStatsAdmin 管理端统计卡片列表，含隐藏条目
func (s *AboutService) ListStatsAdmin() ([]models.AboutStat, error) {
	return s.stats.List(repository.AboutListFilter{})
}

// ListStatsPublic 公开统计卡片列表，仅展示中的条目
func (s *AboutService) ListStatsPublic() ([]models.AboutStat, error) {
	return s.stats.List(repository.AboutListFilter{OnlyActive: true})
}

// GetStat 根据路径参数获取统计卡片
func (s *AboutService) GetStat(rawID string) (*models.AboutStat, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	stat, err := s.stats.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return nil, ErrNotFound
	}
	return stat, nil
}

// CreateStat 创建统计卡片
func (s *AboutService) CreateStat(input CreateAboutStatInput) (*models.AboutStat, error) {
	fields := map[string]string{}
	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		fields["icon"] = "图标不能为空"
	}
	number := strings.TrimSpace(input.Number)
	if number == "" {
		fields["number"] = "展示数字不能为空"
	}
	label := strings.TrimSpace(input.Label)
	if label == "" {
		fields["label"] = "文案不能为空"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	stat := &models.AboutStat{
		Icon:     icon,
		Number:   number,
		Label:    label,
		Color:    strings.TrimSpace(input.Color),
		IsActive: true,
	}
	if stat.Color == "" {
		stat.Color = constants.DefaultStatColor
	}
	if input.Order != nil {
		stat.SortOrder = *input.Order
	}
	if input.IsActive != nil {
		stat.IsActive = *input.IsActive
	}

	if err := s.stats.Create(stat); err != nil {
		return nil, err
	}
	return stat, nil
}

// UpdateStat 按字段更新统计卡片
func (s *AboutService) UpdateStat(rawID string, input UpdateAboutStatInput) (*models.AboutStat, error) {
	stat, err := s.GetStat(rawID)
	if err != nil {
		return nil, err
	}

	if input.Icon != nil {
		icon := strings.TrimSpace(*input.Icon)
		if icon == "" {
			return nil, NewValidationError("icon", "图标不能为空")
		}
		stat.Icon = icon
	}
	if input.Number != nil {
		number := strings.TrimSpace(*input.Number)
		if number == "" {
			return nil, NewValidationError("number", "展示数字不能为空")
		}
		stat.Number = number
	}
	if input.Label != nil {
		label := strings.TrimSpace(*input.Label)
		if label == "" {
			return nil, NewValidationError("label", "文案不能为空")
		}
		stat.Label = label
	}
	if input.Color != nil {
		color := strings.TrimSpace(*input.Color)
		if color == "" {
			color = constants.DefaultStatColor
		}
		stat.Color = color
	}
	if input.Order != nil {
		stat.SortOrder = *input.Order
	}
	if input.IsActive != nil {
		stat.IsActive = *input.IsActive
	}

	if err := s.stats.Update(stat); err != nil {
		return nil, err
	}
	return stat, nil
}

// DeleteStat 删除统计卡片
func (s *AboutService) DeleteStat(rawID string) error {
	stat, err := s.GetStat(rawID)
	if err != nil {
		return err
	}
	return s.stats.Delete(stat.ID)
}

// ListValuesAdmin 管理端价值观条目列表，含隐藏条目
func (s *AboutService) ListValuesAdmin() ([]models.AboutValue, error) {
	return s.values.List(repository.AboutListFilter{})
}

// ListValuesPublic 公开价值观条目列表，仅展示中的条目
func (s *AboutService) ListValuesPublic() ([]models.AboutValue, error) {
	return s.values.List(repository.AboutListFilter{OnlyActive: true})
}

// GetValue 根据路径参数获取价值观条目
func (s *AboutService) GetValue(rawID string) (*models.AboutValue, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	value, err := s.values.GetByID(id)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, ErrNotFound
	}
	return value, nil
}

// CreateValue 创建价值观条目
func (s *AboutService) CreateValue(input CreateAboutValueInput) (*models.AboutValue, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, NewValidationError("text", "文案不能为空")
	}

	value := &models.AboutValue{
		Text:     text,
		IsActive: true,
	}
	if input.Order != nil {
		value.SortOrder = *input.Order
	}
	if input.IsActive != nil {
		value.IsActive = *input.IsActive
	}

	if err := s.values.Create(value); err != nil {
		return nil, err
	}
	return value, nil
}

// UpdateValue 按字段更新价值观条目
func (s *AboutService) UpdateValue(rawID string, input UpdateAboutValueInput) (*models.AboutValue, error) {
	value, err := s.GetValue(rawID)
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		if text == "" {
			return nil, NewValidationError("text", "文案不能为空")
		}
		value.Text = text
	}
	if input.Order != nil {
		value.SortOrder = *input.Order
	}
	if input.IsActive != nil {
		value.IsActive = *input.IsActive
	}

	if err := s.values.Update(value); err != nil {
		return nil, err
	}
	return value, nil
}

// DeleteValue 删除价值观条目
func (s *AboutService) DeleteValue(rawID string) error {
	value, err := s.GetValue(rawID)
	if err != nil {
		return err
	}
	return s.values.Delete(value.ID)
}
