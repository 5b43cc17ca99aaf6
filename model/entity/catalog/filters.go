package catalog

// DimensionPreset is a size filter preset with its product count.
type DimensionPreset struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Count int    `json:"count"`
}
