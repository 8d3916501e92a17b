// Package catalog serves the studio's static product, style, and portfolio
// data. The data is compiled in; nothing here touches storage.
package catalog

var products = []Product{
	{
		ID:          "logo",
		Name:        "Logo 設計",
		Emoji:       "🎨",
		Description: "專屬品牌識別，讓顧客一眼記住你",
		Available:   true,
		Plans: []Plan{
			{
				ID:           "basic",
				Name:         "基礎版",
				Price:        990,
				DeliveryDays: 3,
				Revisions:    1,
				Formats:      []string{"PNG"},
				Description:  "適合剛起步的小店",
			},
			{
				ID:           "pro",
				Name:         "專業版",
				Price:        1680,
				DeliveryDays: 2,
				Revisions:    3,
				Formats:      []string{"PNG", "AI 向量檔"},
				Description:  "可用於印刷、招牌製作",
				Recommended:  true,
			},
		},
	},
	{
		ID:          "website",
		Name:        "網站設計",
		Emoji:       "🌐",
		Description: "簡潔單頁網站，建立線上門面",
		Available:   true,
		Plans: []Plan{
			{
				ID:           "basic",
				Name:         "單頁網站",
				Price:        6800,
				DeliveryDays: 7,
				Revisions:    2,
				Description:  "一頁式品牌門面",
			},
		},
	},
	{
		ID:          "namecard",
		Name:        "名片設計",
		Emoji:       "💼",
		Description: "專業名片，提升品牌形象",
		ComingSoon:  true,
	},
	{
		ID:          "dm",
		Name:        "DM 傳單",
		Emoji:       "📄",
		Description: "吸睛傳單，有效宣傳",
		ComingSoon:  true,
	},
	{
		ID:          "social",
		Name:        "社群圖片",
		Emoji:       "📱",
		Description: "IG、FB 貼文與限動設計",
		ComingSoon:  true,
	},
	{
		ID:          "menu",
		Name:        "菜單設計",
		Emoji:       "🍽️",
		Description: "精美菜單，提升點餐體驗",
		ComingSoon:  true,
	},
}

var styles = []DesignStyle{
	{
		ID:          "food-chinese",
		Name:        "中式餐飲",
		Category:    "food",
		Description: "傳統元素結合現代設計，適合中式餐廳、小吃店、茶館",
		Emoji:       "🍜",
		Image:       "/portfolio/logo-laochang-beef-noodle.webp",
		Tags:        []string{"中式", "餐飲", "傳統", "食品"},
		ForProducts: []string{"logo", "menu", "namecard"},
	},
	{
		ID:          "minimal-modern",
		Name:        "極簡現代",
		Category:    "minimal",
		Description: "留白與幾何線條，適合科技、設計、選品品牌",
		Emoji:       "🔷",
		Image:       "/portfolio/logo-minimal.webp",
		Tags:        []string{"極簡", "現代", "幾何"},
		ForProducts: []string{"logo", "website", "namecard"},
	},
	{
		ID:          "elegant-classic",
		Name:        "優雅質感",
		Category:    "elegant",
		Description: "細緻襯線與柔和配色，適合美業、婚禮、精品",
		Emoji:       "👗",
		Image:       "/portfolio/logo-elegant.webp",
		Tags:        []string{"優雅", "質感", "精品"},
		ForProducts: []string{"logo", "namecard"},
	},
}

var portfolio = []PortfolioItem{
	{
		ID:          "laochang-beef-noodle",
		Title:       "老張牛肉麵",
		Category:    "logo",
		Industry:    "餐飲",
		Description: "傳統與現代結合的中式餐飲品牌識別",
		Image:       "/portfolio/logo-laochang-beef-noodle.webp",
		Tags:        []string{"中式餐飲", "傳統", "牛肉麵"},
		Featured:    true,
		CreatedAt:   "2026-01-03",
	},
	{
		ID:        "hana-floral",
		Title:     "花奈花藝",
		Category:  "logo",
		Industry:  "花藝",
		Image:     "/portfolio/logo-hana-floral.webp",
		Tags:      []string{"花藝", "優雅"},
		CreatedAt: "2026-02-14",
	},
	{
		ID:        "bistro-menu",
		Title:     "巷口餐酒館菜單",
		Category:  "menu",
		Industry:  "餐飲",
		Image:     "/portfolio/menu-bistro.webp",
		Tags:      []string{"菜單", "餐酒館"},
		CreatedAt: "2026-03-02",
	},
}

// Products returns the product catalog.
func Products() []Product { return products }

// Styles returns the design style references.
func Styles() []DesignStyle { return styles }

// Portfolio returns the published works.
func Portfolio() []PortfolioItem { return portfolio }
