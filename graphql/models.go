package graphql

import (
	"strconv"

	gql "github.com/graph-gophers/graphql-go"

	cartEntity "sculpturesly.GO/model/entity/cart"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

// Read-surface models. Exported fields double as field resolvers
// (graphql-go UseFieldResolvers).

type Product struct {
	ID          gql.ID
	Title       string
	Slug        string
	Status      string
	Description string
	BasePrice   string
	Thumbnail   string
	Variants    []Variant
}

type Variant struct {
	ID        gql.ID
	SKU       string
	Price     string
	IsInStock bool
	Image     string
}

type ProductList struct {
	Count   int32
	Results []ProductListItem
}

type ProductListItem struct {
	ID        gql.ID
	Title     string
	Slug      string
	BasePrice string
	Thumbnail string
}

type CategoryTree struct {
	ID       gql.ID
	Title    string
	Slug     string
	Image    string
	Children []CategoryTree
}

type Category struct {
	ID          gql.ID
	Title       string
	Slug        string
	Image       string
	Description string
}

type Country struct {
	Code string
	Name string
}

type Cart struct {
	ID         gql.ID
	TotalItems int32
	TotalPrice string
	Items      []CartItem
}

type CartItem struct {
	ID           gql.ID
	Quantity     int32
	TotalPrice   string
	VariantSku   string
	ProductTitle string
	ProductSlug  string
}

func id(v uint) gql.ID {
	return gql.ID(strconv.FormatUint(uint64(v), 10))
}

func MapProduct(p *catalogEntity.ProductDetail) *Product {
	variants := make([]Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, Variant{
			ID:        id(v.ID),
			SKU:       v.SKU,
			Price:     v.Price,
			IsInStock: v.IsInStock,
			Image:     v.Image,
		})
	}
	return &Product{
		ID:          id(p.ID),
		Title:       p.Title,
		Slug:        p.Slug,
		Status:      p.Status,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		Thumbnail:   p.Thumbnail,
		Variants:    variants,
	}
}

func MapProductList(res *catalogEntity.ProductListResponse) *ProductList {
	items := make([]ProductListItem, 0, len(res.Results))
	for _, p := range res.Results {
		items = append(items, ProductListItem{
			ID:        id(p.ID),
			Title:     p.Title,
			Slug:      p.Slug,
			BasePrice: p.BasePrice,
			Thumbnail: p.Thumbnail,
		})
	}
	return &ProductList{Count: int32(res.Count), Results: items}
}

func MapCategoryTree(nodes []catalogEntity.CategoryTree) []CategoryTree {
	out := make([]CategoryTree, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, CategoryTree{
			ID:       id(n.ID),
			Title:    n.Title,
			Slug:     n.Slug,
			Image:    n.Image,
			Children: MapCategoryTree(n.Children),
		})
	}
	return out
}

func MapCategory(c *catalogEntity.Category) *Category {
	return &Category{
		ID:          id(c.ID),
		Title:       c.Title,
		Slug:        c.Slug,
		Image:       c.Image,
		Description: c.Description,
	}
}

func MapCountries(countries []catalogEntity.Country) []Country {
	out := make([]Country, 0, len(countries))
	for _, c := range countries {
		out = append(out, Country{Code: c.Code, Name: c.Name})
	}
	return out
}

func MapCart(c *cartEntity.Cart) *Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItem{
			ID:           id(item.ID),
			Quantity:     int32(item.Quantity),
			TotalPrice:   item.TotalPrice,
			VariantSku:   item.Variant.SKU,
			ProductTitle: item.Variant.ProductTitle,
			ProductSlug:  item.Variant.ProductSlug,
		})
	}
	return &Cart{
		ID:         id(c.ID),
		TotalItems: int32(c.TotalItems),
		TotalPrice: c.TotalPrice,
		Items:      items,
	}
}
