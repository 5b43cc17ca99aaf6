package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"

	catalogEntity "sculpturesly.GO/model/entity/catalog"
)

// Client accelerates product search against a local Elasticsearch index that
// mirrors the backend catalog. Optional: when ELASTIC_ADDR is unset the
// storefront falls back to the backend's ?search= filter.
type Client struct {
	es    *elasticsearch.Client
	index string
}

// NewFromEnv returns nil when Elasticsearch is not configured.
func NewFromEnv() *Client {
	addr := os.Getenv("ELASTIC_ADDR")
	if addr == "" {
		return nil
	}
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{addr},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASS"),
	})
	if err != nil {
		log.Println("Elasticsearch not available, search acceleration disabled:", err)
		return nil
	}
	index := os.Getenv("ELASTIC_INDEX")
	if index == "" {
		index = "products"
	}
	return &Client{es: es, index: index}
}

type searchHit struct {
	Source catalogEntity.ProductListItem `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

// Products runs a full-text query over title and category names. Returns
// (nil, error) on transport problems so the caller can fall back.
func (c *Client) Products(ctx context.Context, query string, page, pageSize int) (*catalogEntity.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	body := map[string]interface{}{
		"from": (page - 1) * pageSize,
		"size": pageSize,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title^2", "category_names"},
			},
		},
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(strings.NewReader(string(data))),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		log.Printf("Elasticsearch search failed: %s", res.String())
		return nil, fmt.Errorf("elasticsearch: %s", res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := &catalogEntity.ProductListResponse{Count: parsed.Hits.Total.Value}
	for _, hit := range parsed.Hits.Hits {
		out.Results = append(out.Results, hit.Source)
	}
	return out, nil
}
