package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
)

const (
	contentIndex        = "blog_content"
	healthCheckInterval = 10 * time.Second
)

var errUnhealthy = errors.New("meilisearch unhealthy")

// Meili implements Engine via Meilisearch.
type Meili struct {
	client  meili.ServiceManager
	healthy atomic.Bool
	done    chan struct{}
}

// NewMeili creates a Meilisearch client, configures the content index
// and starts a background health monitor. An unreachable server is not an
// error: the engine reports itself unhealthy until it recovers.
func NewMeili(url, apiKey string) *Meili {
	m := &Meili{
		client: meili.New(url, meili.WithAPIKey(apiKey)),
		done:   make(chan struct{}),
	}

	if _, err := m.client.Health(); err != nil {
		logger.Warn("Meilisearch unavailable, using Postgres search",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
	} else {
		m.healthy.Store(true)
		m.configureIndex()
	}

	go m.healthLoop()
	return m
}

func (m *Meili) configureIndex() {
	if _, err := m.client.CreateIndex(&meili.IndexConfig{
		Uid:        contentIndex,
		PrimaryKey: "id",
	}); err != nil {
		logger.Debug("Create search index (may already exist)", slog.String("error", err.Error()))
	}

	index := m.client.Index(contentIndex)
	filterable := []interface{}{"authorId", "featured"}
	if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
		logger.Warn("Update filterable attributes failed", slog.String("error", err.Error()))
	}
	searchable := []string{"title", "description", "content"}
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		logger.Warn("Update searchable attributes failed", slog.String("error", err.Error()))
	}
	sortable := []string{"createdAt"}
	if _, err := index.UpdateSortableAttributes(&sortable); err != nil {
		logger.Warn("Update sortable attributes failed", slog.String("error", err.Error()))
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Swap(err == nil)
			if err == nil && !wasHealthy {
				logger.Info("Meilisearch recovered, reconfiguring index")
				m.configureIndex()
			}
		}
	}
}

// Close stops the background health monitor.
func (m *Meili) Close() {
	close(m.done)
}

// Healthy reports whether Meilisearch is reachable.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// SearchIDs returns the ids of matching documents in rank order.
func (m *Meili) SearchIDs(ctx context.Context, q Query) ([]string, error) {
	if !m.healthy.Load() {
		return nil, errUnhealthy
	}

	resp, err := m.client.MultiSearchWithContext(ctx, &meili.MultiSearchRequest{
		Queries: []*meili.SearchRequest{buildRequest(q)},
	})
	if err != nil {
		m.healthy.Store(false)
		return nil, fmt.Errorf("meilisearch search: %w", err)
	}

	ids := []string{}
	for _, result := range resp.Results {
		for _, hit := range result.Hits {
			if id := decodeString(hit, "id"); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func buildRequest(q Query) *meili.SearchRequest {
	limit := int64(q.Limit)
	if limit <= 0 {
		limit = int64(domain.DefaultContentTake)
	}

	req := &meili.SearchRequest{
		IndexUID:             contentIndex,
		Query:                q.Text,
		Limit:                limit,
		Offset:               int64(q.Offset),
		AttributesToRetrieve: []string{"id"},
	}

	var filters []string
	if q.AuthorID != "" {
		filters = append(filters, fmt.Sprintf("authorId = %q", q.AuthorID))
	}
	if q.Featured != nil {
		filters = append(filters, fmt.Sprintf("featured = %t", *q.Featured))
	}
	if len(filters) > 0 {
		req.Filter = filters
	}
	return req
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Index adds or replaces documents in the content index.
func (m *Meili) Index(ctx context.Context, docs ...Document) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := m.client.Index(contentIndex).AddDocumentsWithContext(ctx, docs, nil)
	return err
}

// Delete removes a document from the content index.
func (m *Meili) Delete(ctx context.Context, id string) error {
	_, err := m.client.Index(contentIndex).DeleteDocumentWithContext(ctx, id, nil)
	return err
}
