package catalog

// Plan is a purchasable tier of a product.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        int64    `json:"price"`
	DeliveryDays int      `json:"deliveryDays"`
	Revisions    int      `json:"revisions"`
	Formats      []string `json:"formats,omitempty"`
	Description  string   `json:"description"`
	Recommended  bool     `json:"recommended,omitempty"`
}

// Product is a design service offered by the studio.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	ComingSoon  bool   `json:"comingSoon,omitempty"`
	Plans       []Plan `json:"plans"`
}

// DesignStyle is a style direction reference, not a template.
type DesignStyle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	ForProducts []string `json:"forProducts"`
}

// PortfolioItem is a published past work.
type PortfolioItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Industry    string   `json:"industry,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}
