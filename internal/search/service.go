package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"blog-platform/internal/domain"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
)

const reindexBatchSize = 500

// Service is the facade that tries Meilisearch first and falls back to Postgres.
type Service struct {
	engine Engine
	source ContentSource
	wg     sync.WaitGroup
}

// NewService creates a search service. engine may be nil when Meilisearch is not configured.
func NewService(engine Engine, source ContentSource) *Service {
	return &Service{engine: engine, source: source}
}

// Search returns published content matching filter.Query.
func (s *Service) Search(ctx context.Context, filter domain.ContentFilter) ([]domain.Content, error) {
	filter.Normalize()
	published := true
	filter.Published = &published

	if s.engineReady() {
		items, err := s.searchEngine(ctx, filter)
		if err == nil {
			metrics.SearchRequestsTotal.WithLabelValues("meilisearch", "success").Inc()
			return items, nil
		}
		metrics.SearchRequestsTotal.WithLabelValues("meilisearch", "error").Inc()
		logger.WarnContext(ctx, "Meilisearch query failed, falling back to Postgres",
			slog.String("error", err.Error()),
		)
	}

	items, err := s.source.List(ctx, filter)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("postgres", "error").Inc()
		return nil, err
	}
	metrics.SearchRequestsTotal.WithLabelValues("postgres", "success").Inc()
	return items, nil
}

func (s *Service) searchEngine(ctx context.Context, filter domain.ContentFilter) ([]domain.Content, error) {
	ids, err := s.engine.SearchIDs(ctx, Query{
		Text:     strings.TrimSpace(filter.Query),
		AuthorID: filter.AuthorID,
		Featured: filter.Featured,
		Limit:    filter.Take,
		Offset:   filter.Skip,
	})
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Content{}, nil
	}

	items, err := s.source.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The index can lag behind the database; drop hits that are no longer public.
	visible := make([]domain.Content, 0, len(items))
	for _, item := range items {
		if item.Published {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

// IndexContent pushes a post to the index, or removes it when it is not published.
// The write happens in the background.
func (s *Service) IndexContent(c domain.Content) {
	if !s.engineReady() {
		return
	}
	if !c.Published {
		s.RemoveContent(c.ID)
		return
	}

	doc := DocumentFromContent(c)
	s.background(func(ctx context.Context) {
		if err := s.engine.Index(ctx, doc); err != nil {
			logger.Warn("Index content failed",
				slog.String("content_id", doc.ID),
				slog.String("error", err.Error()),
			)
		}
	})
}

// RemoveContent deletes a post from the index in the background.
func (s *Service) RemoveContent(id string) {
	if !s.engineReady() {
		return
	}
	s.background(func(ctx context.Context) {
		if err := s.engine.Delete(ctx, id); err != nil {
			logger.Warn("Remove content from index failed",
				slog.String("content_id", id),
				slog.String("error", err.Error()),
			)
		}
	})
}

// ReindexAll streams every published post from the database into the index.
func (s *Service) ReindexAll(ctx context.Context) (int, error) {
	if !s.engineReady() {
		return 0, nil
	}

	total := 0
	batch := make([]Document, 0, reindexBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.engine.Index(ctx, batch...); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	err := s.source.StreamAll(ctx, func(c domain.Content) error {
		if !c.Published {
			return nil
		}
		batch = append(batch, DocumentFromContent(c))
		if len(batch) >= reindexBatchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return total, err
	}
	if err := flush(); err != nil {
		return total, err
	}

	logger.InfoContext(ctx, "Search index rebuilt", slog.Int("documents", total))
	return total, nil
}

// Wait blocks until background index writes have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) engineReady() bool {
	return s.engine != nil && s.engine.Healthy()
}

func (s *Service) background(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(context.Background())
	}()
}
