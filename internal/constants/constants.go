package constants

// 管理端路径
const (
	AdminPathPrefix = "/admin"
	AdminLoginPath  = "/admin/login"
)

// 会话角色
const RoleAdmin = "admin"

// SessionCookieName 管理后台页面使用的会话 Cookie
const SessionCookieName = "st_session"

// 合作伙伴等级
const (
	PartnerTierGold    = "GOLD"
	PartnerTierSilver  = "SILVER"
	PartnerTierBronze  = "BRONZE"
	PartnerTierPartner = "PARTNER"
)

// 媒体类型
const (
	GalleryTypePhoto = "PHOTO"
	GalleryTypeVideo = "VIDEO"
)

// 分类 "all" 为不过滤的哨兵值
const CategoryAll = "all"

// 默认值
const (
	DefaultGalleryAuthor = "SDKThunder"
	DefaultStatColor     = "from-blue-500 to-cyan-500"
)
