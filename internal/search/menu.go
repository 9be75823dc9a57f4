package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

const DefaultIndex = "menu_items"

type Config struct {
	URL      string
	User     string
	Password string
	Index    string
}

// MenuIndex is the Elasticsearch side of menu search.
type MenuIndex struct {
	Client *elasticsearch.Client
	Name   string
}

func NewClient(ctx context.Context, cfg Config) (*elasticsearch.Client, error) {
	l := logging.FromContext(ctx).With("component", "elasticsearch", "url", cfg.URL)

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.User,
		Password:  cfg.Password,
	})
	if err != nil {
		l.Error("es_client_failed", "error", err)
		return nil, err
	}

	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		l.Error("es_info_failed", "error", err)
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		l.Error("es_info_failed", "status", res.StatusCode, "body", string(body))
		return nil, fmt.Errorf("elasticsearch: %s", res.Status())
	}

	l.Info("es_connected")
	return client, nil
}

func NewMenuIndex(ctx context.Context, cfg Config) (*MenuIndex, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	name := cfg.Index
	if name == "" {
		name = DefaultIndex
	}
	return &MenuIndex{Client: client, Name: name}, nil
}

var menuMapping = map[string]any{
	"mappings": map[string]any{
		"properties": map[string]any{
			"id":          map[string]any{"type": "long"},
			"name":        map[string]any{"type": "text"},
			"description": map[string]any{"type": "text"},
			"price":       map[string]any{"type": "double"},
			"image":       map[string]any{"type": "keyword", "index": false},
		},
	},
}

// EnsureIndex creates the index with its mapping when it does not exist yet.
func (m *MenuIndex) EnsureIndex(ctx context.Context) error {
	res, err := m.Client.Indices.Exists([]string{m.Name}, m.Client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return err
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(menuMapping); err != nil {
		return err
	}
	res, err = m.Client.Indices.Create(m.Name,
		m.Client.Indices.Create.WithContext(ctx),
		m.Client.Indices.Create.WithBody(&buf),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("create index %s: %s", m.Name, res.Status())
	}
	return nil
}

func (m *MenuIndex) Index(ctx context.Context, item models.MenuItem) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(item); err != nil {
		return err
	}

	res, err := m.Client.Index(m.Name, &buf,
		m.Client.Index.WithContext(ctx),
		m.Client.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index menu item %d: %s", item.ID, res.Status())
	}
	return nil
}

// Delete removes a menu item document. A document that is already gone is
// not an error.
func (m *MenuIndex) Delete(ctx context.Context, id uint) error {
	res, err := m.Client.Delete(m.Name, strconv.FormatUint(uint64(id), 10),
		m.Client.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete menu item %d: %s", id, res.Status())
	}
	return nil
}

func (m *MenuIndex) Search(ctx context.Context, q string, size int) (int64, []models.MenuItem, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, err
	}

	res, err := m.Client.Search(
		m.Client.Search.WithContext(ctx),
		m.Client.Search.WithIndex(m.Name),
		m.Client.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search %s: %s", m.Name, res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.MenuItem `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	items := make([]models.MenuItem, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source
	}
	return r.Hits.Total.Value, items, nil
}
