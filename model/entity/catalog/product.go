package catalog

// Product status lifecycle, managed by the backend. The storefront only reads.
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
)

type Attribute struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Slug    string   `json:"slug"`
	Choices []string `json:"choices"`
}

type ProductType struct {
	ID                uint        `json:"id"`
	Name              string      `json:"name"`
	AllowedAttributes []Attribute `json:"allowed_attributes"`
}

type ProductGalleryImage struct {
	ID        uint   `json:"id"`
	Image     string `json:"image"`
	AltText   string `json:"alt_text"`
	IsFeature bool   `json:"is_feature"`
	Variant   *uint  `json:"variant"`
}

type ProductVariant struct {
	ID             uint              `json:"id"`
	SKU            string            `json:"sku"`
	Price          string            `json:"price"`
	CompareAtPrice *string           `json:"compare_at_price"`
	StockQuantity  int               `json:"stock_quantity"`
	IsInStock      bool              `json:"is_in_stock"`
	Image          string            `json:"image"`
	Attributes     map[string]string `json:"attributes"`
}

type ProductListItem struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Status        string   `json:"status"`
	Thumbnail     string   `json:"thumbnail"`
	BasePrice     string   `json:"base_price"`
	CategoryNames []string `json:"category_names"`
	CreatedAt     string   `json:"created_at"`
}

type ProductDetail struct {
	ID            uint                  `json:"id"`
	Title         string                `json:"title"`
	Slug          string                `json:"slug"`
	Status        string                `json:"status"`
	Description   string                `json:"description"`
	BasePrice     string                `json:"base_price"`
	Thumbnail     string                `json:"thumbnail"`
	ProductType   ProductType           `json:"product_type"`
	Categories    []Category            `json:"categories"`
	Variants      []ProductVariant      `json:"variants"`
	GalleryImages []ProductGalleryImage `json:"gallery_images"`
}

// ProductListResponse is the backend's paginated list envelope.
type ProductListResponse struct {
	Count    int               `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []ProductListItem `json:"results"`
}

// ProductListParams are the supported list query filters.
type ProductListParams struct {
	Page           int
	PageSize       int
	Search         string
	Ordering       string
	CategorySlug   string
	CollectionSlug string
}
