package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type esProductDoc struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Tags        []string `json:"tags"`
	Stock       int64    `json:"stock"`
	ImageUrl    string   `json:"image_url"`
	CreatedAt   int64    `json:"created_at"`
}

type esSearchResult struct {
	Hits struct {
		Hits []struct {
			Source esProductDoc `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (s *Store) esSearch(ctx context.Context, terms []string) ([]Product, error) {
	query := map[string]any{
		"size": textSearchLimit,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  strings.Join(terms, " "),
				"fields": []string{"name^3", "tags^2", "description", "category"},
			},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(s.esIndex),
		s.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return nil, fmt.Errorf("es search: %s", resp.Status())
	}

	var result esSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(result.Hits.Hits))
	for _, h := range result.Hits.Hits {
		d := h.Source
		out = append(out, Product{
			Id:          d.Id,
			Name:        d.Name,
			Description: d.Description,
			Category:    d.Category,
			Price:       d.Price,
			Sizes:       d.Sizes,
			Colors:      d.Colors,
			Tags:        d.Tags,
			Stock:       d.Stock,
			ImageUrl:    d.ImageUrl,
			CreatedAt:   time.Unix(d.CreatedAt, 0),
		})
	}
	return out, nil
}
