package seo

import (
	"sculpturesly.GO/config"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

// DefaultRobots is the index directive applied when a page sets none.
const DefaultRobots = "index, follow, max-image-preview:large, max-snippet:-1, max-video-preview:-1"

// MetaTags maps final tag names (og:title, twitter:card, ...) to values.
// Pure data: pages re-derive it from the source entity on every render,
// nothing is bound lazily. Empty values are omitted.
type MetaTags map[string]string

func (m MetaTags) set(key, value string) {
	if value != "" {
		m[key] = value
	}
}

// ResolveSeoTags lifts a backend-precomputed tag bag into renderable meta
// tags. Nil input yields an empty set.
func ResolveSeoTags(t *catalogEntity.SeoTags) MetaTags {
	m := MetaTags{}
	if t == nil {
		return m
	}
	m.set("title", t.Title)
	m.set("description", t.Description)
	m.set("canonical", t.Canonical)

	m.set("og:title", t.OgTitle)
	m.set("og:description", t.OgDescription)
	m.set("og:image", t.OgImage)
	m.set("og:url", t.OgURL)
	m.set("og:type", t.OgType)
	m.set("og:site_name", t.OgSiteName)

	m.set("twitter:card", t.TwitterCard)
	m.set("twitter:title", t.TwitterTitle)
	m.set("twitter:description", t.TwitterDescription)
	m.set("twitter:image", t.TwitterImage)

	m.set("robots", t.Robots)

	if t.Price != nil {
		m.set("product:price:amount", t.Price.Amount)
		m.set("product:price:currency", t.Price.Currency)
	}
	return m
}

// Availability values for product meta.
const (
	AvailabilityInStock    = "instock"
	AvailabilityOutOfStock = "oos"
)

// BuilderOptions feed BuildSeoMeta for pages without backend-precomputed tags.
type BuilderOptions struct {
	Title       string
	Description string
	ImageURL    string
	URL         string
	Robots      string
	SiteName    string

	// Optional overrides if social tags should differ from the main tags
	OgTitle      string
	TwitterTitle string

	Price        *catalogEntity.SeoPrice
	Availability string
}

func siteName() string {
	if config.AppConfig != nil && config.AppConfig.SiteName != "" {
		return config.AppConfig.SiteName
	}
	return "Sculpturesly"
}

// BuildSeoMeta synthesizes a full tag set from a smaller option set.
// The og:type flips to "product" when a price is present, and the twitter
// card is chosen by whether an image exists.
func BuildSeoMeta(opts BuilderOptions) MetaTags {
	m := MetaTags{}
	m.set("title", opts.Title)
	m.set("description", opts.Description)
	m.set("canonical", opts.URL)

	ogTitle := opts.OgTitle
	if ogTitle == "" {
		ogTitle = opts.Title
	}
	m.set("og:title", ogTitle)
	m.set("og:description", opts.Description)
	m.set("og:image", opts.ImageURL)
	m.set("og:url", opts.URL)
	if opts.Price != nil {
		m.set("og:type", "product")
	} else {
		m.set("og:type", "website")
	}
	name := opts.SiteName
	if name == "" {
		name = siteName()
	}
	m.set("og:site_name", name)

	if opts.ImageURL != "" {
		m.set("twitter:card", "summary_large_image")
	} else {
		m.set("twitter:card", "summary")
	}
	twitterTitle := opts.TwitterTitle
	if twitterTitle == "" {
		twitterTitle = opts.Title
	}
	m.set("twitter:title", twitterTitle)
	m.set("twitter:description", opts.Description)
	m.set("twitter:image", opts.ImageURL)

	robots := opts.Robots
	if robots == "" {
		robots = DefaultRobots
	}
	m.set("robots", robots)

	if opts.Price != nil {
		m.set("product:price:amount", opts.Price.Amount)
		m.set("product:price:currency", opts.Price.Currency)
	}
	m.set("product:availability", opts.Availability)

	return m
}
