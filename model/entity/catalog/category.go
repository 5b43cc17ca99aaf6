package catalog

// Category is a taxonomy node as returned by the category detail endpoint.
type Category struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Parent      *uint   `json:"parent"`
	SeoMetadata SeoTags `json:"seo_metadata"`
}

// CategoryTree is a taxonomy node with its children. The backend guarantees a
// tree shape: no cycles, a single parent per node.
type CategoryTree struct {
	ID       uint           `json:"id"`
	Title    string         `json:"title"`
	Slug     string         `json:"slug"`
	Image    string         `json:"image"`
	Children []CategoryTree `json:"children"`
}
