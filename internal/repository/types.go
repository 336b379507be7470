package repository

// NewsListFilter 查询新闻列表的过滤条件
type NewsListFilter struct {
	Category      string // 空值或 "all" 不过滤
	OnlyPublished bool
	OrderBy       string
}

// PartnerListFilter 查询合作伙伴列表的过滤条件
type PartnerListFilter struct {
	OnlyActive bool
}

// GalleryListFilter 查询媒体库列表的过滤条件
type GalleryListFilter struct {
	Category string // 空值或 "all" 不过滤
	Type     string // 空值不过滤
}

// AboutListFilter 查询关于页条目的过滤条件
type AboutListFilter struct {
	OnlyActive bool
}
