package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/restaurant/internal/models"
)

type call struct {
	Method string
	Path   string
	Body   string
}

type fakeES struct {
	mu    sync.Mutex
	calls []call
}

func (f *fakeES) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.calls = append(f.calls, call{Method: r.Method, Path: r.URL.Path, Body: string(body)})
		f.mu.Unlock()

		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/":
			_, _ = w.Write([]byte(`{"version":{"number":"9.0.0"}}`))
		case strings.HasSuffix(r.URL.Path, "/_search"):
			_, _ = w.Write([]byte(`{"hits":{"total":{"value":1},"hits":[{"_source":{"id":3,"name":"Pizza","price":10}}]}}`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"result":"not_found"}`))
		case r.Method == http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		default:
			_, _ = w.Write([]byte(`{"result":"created"}`))
		}
	}
}

func (f *fakeES) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func newTestIndex(t *testing.T) (*MenuIndex, *fakeES) {
	t.Helper()
	fake := &fakeES{}
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return &MenuIndex{Client: client, Name: DefaultIndex}, fake
}

func TestMenuIndexSearch(t *testing.T) {
	idx, fake := newTestIndex(t)

	total, items, err := idx.Search(context.Background(), "piza", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza", items[0].Name)

	calls := fake.Calls()
	require.NotEmpty(t, calls)
	last := calls[len(calls)-1]
	assert.Equal(t, "/menu_items/_search", last.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(last.Body), &body))
	mm := body["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "piza", mm["query"])
	assert.Equal(t, "AUTO", mm["fuzziness"])
	assert.Equal(t, float64(5), body["size"])
}

func TestMenuIndexIndexAndDelete(t *testing.T) {
	idx, fake := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Index(ctx, models.MenuItem{ID: 7, Name: "Salad"}))
	require.NoError(t, idx.Delete(ctx, 7))

	var paths []string
	for _, c := range fake.Calls() {
		paths = append(paths, c.Method+" "+c.Path)
	}
	assert.Contains(t, paths, "PUT /menu_items/_doc/7")
	assert.Contains(t, paths, "DELETE /menu_items/_doc/7")
}

func TestMenuIndexEnsureIndexCreatesMissing(t *testing.T) {
	idx, fake := newTestIndex(t)

	require.NoError(t, idx.EnsureIndex(context.Background()))

	var created bool
	for _, c := range fake.Calls() {
		if c.Method == http.MethodPut && c.Path == "/menu_items" {
			created = true
			assert.Contains(t, c.Body, `"mappings"`)
		}
	}
	assert.True(t, created)
}
