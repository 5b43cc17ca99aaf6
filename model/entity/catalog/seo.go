package catalog

// SeoPrice is the optional price block inside precomputed SEO metadata.
type SeoPrice struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// SeoTags is the flat metadata bag the backend precomputes per entity.
// It has no lifecycle of its own; pages re-derive meta tags from it on
// every render.
type SeoTags struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	Canonical string `json:"canonical"`

	OgTitle       string `json:"ogTitle"`
	OgDescription string `json:"ogDescription"`
	OgImage       string `json:"ogImage"`
	OgURL         string `json:"ogUrl"`
	OgType        string `json:"ogType"`
	OgSiteName    string `json:"ogSiteName"`

	TwitterCard        string `json:"twitterCard"`
	TwitterTitle       string `json:"twitterTitle"`
	TwitterDescription string `json:"twitterDescription"`
	TwitterImage       string `json:"twitterImage"`

	Price *SeoPrice `json:"price,omitempty"`

	Robots string `json:"robots"`
}
