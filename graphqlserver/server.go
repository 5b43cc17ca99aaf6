package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sculpturesly.GO/api"
	"sculpturesly.GO/client"
	"sculpturesly.GO/graphql"
	"sculpturesly.GO/graphql/registry"
	catalogEntity "sculpturesly.GO/model/entity/catalog"
	cartRepo "sculpturesly.GO/model/repository/cart"
	catalogService "sculpturesly.GO/service/catalog"
)

func init() {
	api.RegisterRoute(RegisterGraphQLRoutes)
}

// RootResolver is the root for graphql-go. The read surface mirrors the REST
// routes: catalog data through the cached service, carts from the local store.
type RootResolver struct {
	catalog *catalogService.Service
	carts   *cartRepo.CartRepository
}

type ProductArgs struct {
	Slug string
}

func (r *RootResolver) Product(ctx context.Context, args ProductArgs) (*graphql.Product, error) {
	p, err := r.catalog.Product(ctx, args.Slug, nil)
	if err != nil {
		return nil, err
	}
	return graphql.MapProduct(p), nil
}

type ProductsArgs struct {
	Search   *string
	Page     int32
	PageSize int32
	Category *string
}

func (r *RootResolver) Products(ctx context.Context, args ProductsArgs) (*graphql.ProductList, error) {
	params := catalogEntity.ProductListParams{
		Page:     int(args.Page),
		PageSize: int(args.PageSize),
	}
	if args.Search != nil {
		params.Search = *args.Search
	}
	if args.Category != nil {
		params.CategorySlug = *args.Category
	}
	res, err := r.catalog.Products(ctx, params, nil)
	if err != nil {
		return nil, err
	}
	return graphql.MapProductList(res), nil
}

func (r *RootResolver) Categories(ctx context.Context) ([]graphql.CategoryTree, error) {
	tree, err := r.catalog.Categories(ctx, nil)
	if err != nil {
		return nil, err
	}
	return graphql.MapCategoryTree(tree), nil
}

type CategoryArgs struct {
	Slug string
}

func (r *RootResolver) Category(ctx context.Context, args CategoryArgs) (*graphql.Category, error) {
	cat, err := r.catalog.Category(ctx, args.Slug, nil)
	if err != nil {
		return nil, err
	}
	return graphql.MapCategory(cat), nil
}

func (r *RootResolver) Countries(ctx context.Context) ([]graphql.Country, error) {
	countries, err := r.catalog.Countries(ctx, nil)
	if err != nil {
		return nil, err
	}
	return graphql.MapCountries(countries), nil
}

type CartArgs struct {
	SessionKey *string
}

func (r *RootResolver) Cart(ctx context.Context, args CartArgs) (*graphql.Cart, error) {
	key := graphql.SessionKeyFromContext(ctx)
	if args.SessionKey != nil && *args.SessionKey != "" {
		key = *args.SessionKey
	}
	if key == "" {
		return nil, nil
	}
	c, err := r.carts.GetBySession(key)
	if err != nil || c == nil {
		return nil, err
	}
	return graphql.MapCart(c), nil
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema against the root resolver.
func NewSchema(catalog *catalogService.Service, carts *cartRepo.CartRepository) (*gql.Schema, error) {
	root := &RootResolver{catalog: catalog, carts: carts}
	return gql.ParseSchema(graphql.Schema(), root, gql.UseFieldResolvers())
}

// RegisterGraphQLRoutes mounts POST /graphql with the session key attached to
// the request context for the cart query.
func RegisterGraphQLRoutes(e *echo.Echo, db *gorm.DB) {
	schema, err := NewSchema(catalogService.NewService(client.New()), cartRepo.NewCartRepository(db))
	if err != nil {
		e.Logger.Fatalf("graphql schema: %v", err)
	}
	handler := &relay.Handler{Schema: schema}

	e.POST("/graphql", func(c echo.Context) error {
		r := c.Request()
		ctx := graphql.WithSessionKey(r.Context(), graphql.GetSessionKey(r))
		handler.ServeHTTP(c.Response(), r.WithContext(ctx))
		return nil
	})
}
