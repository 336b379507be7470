package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/sdkthunder/site-api/internal/cache"
	"github.com/sdkthunder/site-api/internal/logger"
	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/repository"
)

// 每分钟阅读词数，用于推算阅读时长
const readingWordsPerMinute = 200

// CreateNewsInput 创建新闻的输入
type CreateNewsInput struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Summary   string   `json:"summary"`
	Content   string   `json:"content"`
	Image     *string  `json:"image"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Author    string   `json:"author"`
	Published bool     `json:"published"`
	Featured  bool     `json:"featured"`
	Trending  bool     `json:"trending"`
	ReadTime  string   `json:"readTime"`
}

// UpdateNewsInput 更新新闻的输入，nil 字段表示不变
type UpdateNewsInput struct {
	Title     *string   `json:"title"`
	Slug      *string   `json:"slug"`
	Summary   *string   `json:"summary"`
	Content   *string   `json:"content"`
	Image     *string   `json:"image"`
	Category  *string   `json:"category"`
	Tags      *[]string `json:"tags"`
	Author    *string   `json:"author"`
	Published *bool     `json:"published"`
	Featured  *bool     `json:"featured"`
	Trending  *bool     `json:"trending"`
	ReadTime  *string   `json:"readTime"`
	Comments  *int      `json:"comments"`
	Likes     *int      `json:"likes"`
}

// NewsService 新闻业务服务
type NewsService struct {
	repo    repository.NewsRepository
	cache   *cache.Cache // 可为 nil，此时公开列表不走缓存
	listTTL time.Duration
}

// NewNewsService 创建新闻服务
func NewNewsService(repo repository.NewsRepository, c *cache.Cache, listTTL time.Duration) *NewsService {
	if listTTL <= 0 {
		listTTL = time.Minute
	}
	return &NewsService{repo: repo, cache: c, listTTL: listTTL}
}

// ListAdmin 管理端列表，含未发布文章，按创建时间倒序
func (s *NewsService) ListAdmin(category string) ([]models.NewsArticle, error) {
	return s.repo.List(repository.NewsListFilter{
		Category: category,
		OrderBy:  "created_at DESC, id DESC",
	})
}

// ListPublic 公开列表，仅已发布文章，按发布时间倒序
func (s *NewsService) ListPublic(ctx context.Context, category string) ([]models.NewsArticle, error) {
	key, cached := s.publicListKey(ctx, category)
	if cached {
		var articles []models.NewsArticle
		hit, err := s.cache.GetJSON(ctx, key, &articles)
		if err != nil {
			logger.Warnw("news_cache_get_failed", "key", key, "error", err)
		} else if hit {
			return articles, nil
		}
	}

	articles, err := s.repo.List(repository.NewsListFilter{
		Category:      category,
		OnlyPublished: true,
		OrderBy:       "published_at DESC, id DESC",
	})
	if err != nil {
		return nil, err
	}

	if cached {
		if err := s.cache.SetJSON(ctx, key, articles, s.listTTL); err != nil {
			logger.Warnw("news_cache_set_failed", "key", key, "error", err)
		}
	}
	return articles, nil
}

// Get 根据路径参数获取单篇新闻
func (s *NewsService) Get(rawID string) (*models.NewsArticle, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// GetPublic 公开端获取单篇新闻，未发布视为不存在
func (s *NewsService) GetPublic(rawID string) (*models.NewsArticle, error) {
	article, err := s.Get(rawID)
	if err != nil {
		return nil, err
	}
	if !article.Published {
		return nil, ErrNotFound
	}
	return article, nil
}

// Create 创建新闻
func (s *NewsService) Create(ctx context.Context, input CreateNewsInput) (*models.NewsArticle, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, NewValidationError("title", "标题不能为空")
	}

	article := &models.NewsArticle{
		Title:    title,
		Slug:     strings.TrimSpace(input.Slug),
		Summary:  input.Summary,
		Content:  input.Content,
		Image:    input.Image,
		Category: strings.TrimSpace(input.Category),
		Tags:     models.StringArray(input.Tags),
		Author:   strings.TrimSpace(input.Author),
		Featured: input.Featured,
		Trending: input.Trending,
		ReadTime: strings.TrimSpace(input.ReadTime),
	}
	if article.Slug == "" {
		article.Slug = Slugify(title)
	}
	if article.ReadTime == "" {
		article.ReadTime = deriveReadTime(input.Content)
	}
	applyPublishState(article, input.Published, time.Now())

	if err := s.repo.Create(article); err != nil {
		return nil, err
	}
	s.invalidatePublicList(ctx)
	return article, nil
}

// Update 按字段更新新闻
func (s *NewsService) Update(ctx context.Context, rawID string, input UpdateNewsInput) (*models.NewsArticle, error) {
	article, err := s.Get(rawID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, NewValidationError("title", "标题不能为空")
		}
		article.Title = title
	}
	if input.Slug != nil {
		article.Slug = strings.TrimSpace(*input.Slug)
	}
	if input.Summary != nil {
		article.Summary = *input.Summary
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.Image != nil {
		article.Image = input.Image
	}
	if input.Category != nil {
		article.Category = strings.TrimSpace(*input.Category)
	}
	if input.Tags != nil {
		article.Tags = models.StringArray(*input.Tags)
	}
	if input.Author != nil {
		article.Author = strings.TrimSpace(*input.Author)
	}
	if input.Featured != nil {
		article.Featured = *input.Featured
	}
	if input.Trending != nil {
		article.Trending = *input.Trending
	}
	if input.ReadTime != nil {
		article.ReadTime = strings.TrimSpace(*input.ReadTime)
	}
	if input.Comments != nil {
		article.Comments = *input.Comments
	}
	if input.Likes != nil {
		article.Likes = *input.Likes
	}
	if input.Published != nil {
		applyPublishState(article, *input.Published, time.Now())
	}

	if err := s.repo.Update(article); err != nil {
		return nil, err
	}
	s.invalidatePublicList(ctx)

	// 重新读取，浏览计数以存储为准
	updated, err := s.repo.GetByID(article.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete 删除新闻
func (s *NewsService) Delete(ctx context.Context, rawID string) error {
	article, err := s.Get(rawID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(article.ID); err != nil {
		return err
	}
	s.invalidatePublicList(ctx)
	return nil
}

// IncrementViews 浏览计数加一，返回最新计数
func (s *NewsService) IncrementViews(ctx context.Context, rawID string) (int, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return 0, err
	}

	affected, err := s.repo.IncrementViews(id, 1)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, ErrNotFound
	}

	article, err := s.repo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if article == nil {
		return 0, ErrNotFound
	}
	s.invalidatePublicList(ctx)
	return article.Views, nil
}

// applyPublishState 统一推导发布状态：发布时补齐时间戳，撤稿时清空
func applyPublishState(article *models.NewsArticle, published bool, now time.Time) {
	article.Published = published
	if published {
		if article.PublishedAt == nil {
			article.PublishedAt = &now
		}
	} else {
		article.PublishedAt = nil
	}
}

// publicListKey 公开列表缓存键，带版本号实现整体失效
func (s *NewsService) publicListKey(ctx context.Context, category string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	version, err := s.cache.GetInt(ctx, s.cache.Key("news", "ver"))
	if err != nil {
		logger.Warnw("news_cache_version_failed", "error", err)
		return "", false
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "all"
	}
	return s.cache.Key("news", "list", fmt.Sprintf("v%d", version), category), true
}

// invalidatePublicList 写操作后递增版本号，旧键等 TTL 过期
func (s *NewsService) invalidatePublicList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Incr(ctx, s.cache.Key("news", "ver")); err != nil {
		logger.Warnw("news_cache_invalidate_failed", "error", err)
	}
}

// Slugify 从标题生成 URL 别名
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// deriveReadTime 按词数推算阅读时长
func deriveReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := words / readingWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
