package domain

import "time"

// ReactionType identifies a kind of reaction.
type ReactionType string

const (
	ReactionUpvote   ReactionType = "UPVOTE"
	ReactionDownvote ReactionType = "DOWNVOTE"
	ReactionFavorite ReactionType = "FAVORITE"
	ReactionBookmark ReactionType = "BOOKMARK"
)

// ValidReactionTypes are the types accepted on the reactions endpoint.
// Bookmarks have their own endpoint and table.
var ValidReactionTypes = []ReactionType{ReactionUpvote, ReactionDownvote, ReactionFavorite}

// IsValidReactionType checks if t can be posted as a reaction.
func IsValidReactionType(t ReactionType) bool {
	for _, v := range ValidReactionTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsVote reports whether t is one of the two exclusive vote types.
func (t ReactionType) IsVote() bool {
	return t == ReactionUpvote || t == ReactionDownvote
}

// Opposite returns the other vote type. Only meaningful for votes.
func (t ReactionType) Opposite() ReactionType {
	if t == ReactionUpvote {
		return ReactionDownvote
	}
	return ReactionUpvote
}

// Reaction is a stored reaction row.
type Reaction struct {
	ID        string       `json:"id"`
	ContentID string       `json:"contentId"`
	UserID    string       `json:"userId"`
	Type      ReactionType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
}

// VoteSummary is the vote tally of a content item as seen by one caller.
type VoteSummary struct {
	Upvotes   int64         `json:"upvotes"`
	Downvotes int64         `json:"downvotes"`
	UserVote  *ReactionType `json:"userVote"`
	Removed   bool          `json:"removed,omitempty"`
}

// ToggleResult is the outcome of toggling a non-vote reaction.
type ToggleResult struct {
	Active  bool `json:"active"`
	Removed bool `json:"removed"`
}

// Bookmark is a saved content item.
type Bookmark struct {
	ID        string    `json:"id"`
	ContentID string    `json:"contentId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SavedItems lists what a user bookmarked and favorited.
type SavedItems struct {
	Bookmarks []Content `json:"bookmarks"`
	Favorites []Content `json:"favorites"`
}

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is one user's score of a content item.
type Rating struct {
	ID        string    `json:"id"`
	ContentID string    `json:"contentId"`
	UserID    string    `json:"userId"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RatingSummary aggregates all ratings of a content item.
type RatingSummary struct {
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
	UserValue *int    `json:"userValue,omitempty"`
}
