package domain

import "time"

// MaxCommentLength is the maximum number of characters in a comment.
const MaxCommentLength = 5000

// Comment is a stored comment row.
type Comment struct {
	ID        string    `json:"id"`
	ContentID string    `json:"contentId"`
	UserID    string    `json:"userId"`
	ParentID  *string   `json:"parentId,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentRecord is a comment as read for display, with its author resolved.
type CommentRecord struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	ParentID  *string   `json:"parentId"`
	Author    Author    `json:"author"`
}

// IsRoot reports whether the record has no parent reference.
func (r CommentRecord) IsRoot() bool {
	return r.ParentID == nil || *r.ParentID == ""
}

// CommentNode is a CommentRecord with its ordered replies.
type CommentNode struct {
	CommentRecord
	Replies []CommentNode `json:"replies"`
}

// NewCommentInput is the payload of a new comment or reply.
type NewCommentInput struct {
	Text     string  `json:"text"`
	ParentID *string `json:"parentId,omitempty"`
}
