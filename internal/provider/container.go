package provider

import (
	"time"

	"github.com/sdkthunder/site-api/internal/cache"
	"github.com/sdkthunder/site-api/internal/config"
	"github.com/sdkthunder/site-api/internal/repository"
	"github.com/sdkthunder/site-api/internal/service"

	"gorm.io/gorm"
)

// Container 依赖容器，集中组装仓库与服务
type Container struct {
	Cfg   *config.Config
	Cache *cache.Cache // Redis 未启用时为 nil

	Auth    *service.AuthService
	Captcha *service.CaptchaService

	News     *service.NewsService
	Partner  *service.PartnerService
	Gallery  *service.GalleryService
	Calendar *service.CalendarService
	About    *service.AboutService
}

// New 组装依赖容器
func New(cfg *config.Config, db *gorm.DB, c *cache.Cache) *Container {
	newsRepo := repository.NewNewsRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	statRepo := repository.NewAboutStatRepository(db)
	valueRepo := repository.NewAboutValueRepository(db)

	newsListTTL := time.Duration(cfg.Cache.NewsListTTLSeconds) * time.Second

	return &Container{
		Cfg:      cfg,
		Cache:    c,
		Auth:     service.NewAuthService(cfg.Admin, cfg.JWT),
		Captcha:  service.NewCaptchaService(cfg.Captcha),
		News:     service.NewNewsService(newsRepo, c, newsListTTL),
		Partner:  service.NewPartnerService(partnerRepo),
		Gallery:  service.NewGalleryService(galleryRepo),
		Calendar: service.NewCalendarService(calendarRepo),
		About:    service.NewAboutService(statRepo, valueRepo),
	}
}
