package domain

import "time"

// Content is a blog post.
type Content struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	Body         string    `json:"content"`
	Excerpt      *string   `json:"excerpt,omitempty"`
	CoverImage   *string   `json:"coverImage,omitempty"`
	Published    bool      `json:"published"`
	Featured     bool      `json:"featured"`
	Views        int64     `json:"views"`
	CommentCount int64     `json:"comments"`
	AuthorID     string    `json:"authorId"`
	Author       Author    `json:"author"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ContentInput carries the editable fields of a post.
type ContentInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Body        string  `json:"content"`
	Excerpt     *string `json:"excerpt,omitempty"`
	CoverImage  *string `json:"coverImage,omitempty"`
	Published   bool    `json:"published"`
	Featured    bool    `json:"featured"`
}

// ContentFilter narrows a content listing.
type ContentFilter struct {
	Published *bool
	Featured  *bool
	AuthorID  string
	Query     string
	Take      int
	Skip      int
}

const (
	DefaultContentTake = 20
	MaxContentTake     = 100
)

// Normalize clamps paging values into range.
func (f *ContentFilter) Normalize() {
	if f.Take <= 0 {
		f.Take = DefaultContentTake
	}
	if f.Take > MaxContentTake {
		f.Take = MaxContentTake
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
}
