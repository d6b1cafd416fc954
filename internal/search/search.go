// Package search provides full-text search over published content.
// Meilisearch answers when it is configured and healthy; Postgres ILIKE matching answers otherwise.
package search

import (
	"context"

	"blog-platform/internal/domain"
)

// Document is the data indexed for one published post.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"content"`
	AuthorID    string `json:"authorId"`
	Featured    bool   `json:"featured"`
	CreatedAt   int64  `json:"createdAt"`
}

// DocumentFromContent converts a post into its index document.
func DocumentFromContent(c domain.Content) Document {
	doc := Document{
		ID:        c.ID,
		Title:     c.Title,
		Body:      c.Body,
		AuthorID:  c.AuthorID,
		Featured:  c.Featured,
		CreatedAt: c.CreatedAt.Unix(),
	}
	if c.Description != nil {
		doc.Description = *c.Description
	}
	return doc
}

// Query describes a search request against the index.
type Query struct {
	Text     string
	AuthorID string
	Featured *bool
	Limit    int
	Offset   int
}

// Engine is a search index that returns matching content ids in rank order.
type Engine interface {
	Healthy() bool
	SearchIDs(ctx context.Context, q Query) ([]string, error)
	Index(ctx context.Context, docs ...Document) error
	Delete(ctx context.Context, id string) error
}

// ContentSource is the system of record the index is built from.
type ContentSource interface {
	List(ctx context.Context, filter domain.ContentFilter) ([]domain.Content, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Content, error)
	StreamAll(ctx context.Context, callback func(domain.Content) error) error
}
