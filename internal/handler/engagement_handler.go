package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// EngagementHandler handles reactions, bookmarks and ratings.
type EngagementHandler struct {
	reactions service.ReactionServiceInterface
	bookmarks service.BookmarkServiceInterface
	ratings   service.RatingServiceInterface
}

// NewEngagementHandler creates a new EngagementHandler.
func NewEngagementHandler(
	reactions service.ReactionServiceInterface,
	bookmarks service.BookmarkServiceInterface,
	ratings service.RatingServiceInterface,
) *EngagementHandler {
	return &EngagementHandler{reactions: reactions, bookmarks: bookmarks, ratings: ratings}
}

// ReactionRequest is the body of POST /content/:id/reactions.
type ReactionRequest struct {
	Type string `json:"type"`
}

// RatingRequest is the body of POST /content/:id/ratings.
type RatingRequest struct {
	Value int `json:"value"`
}

// Reactions handles GET /api/v1/content/:id/reactions[?type=]
// With a type it answers whether the caller has that reaction, otherwise the vote tally.
func (h *EngagementHandler) Reactions(c *gin.Context) {
	ctx := c.Request.Context()
	identity := middleware.GetIdentity(c)
	contentID := c.Param("id")

	if raw := c.Query("type"); raw != "" {
		has, err := h.reactions.Has(ctx, identity, contentID, domain.ReactionType(strings.ToUpper(raw)))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"has": has})
		return
	}

	summary, err := h.reactions.Summary(ctx, identity, contentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// React handles POST /api/v1/content/:id/reactions
func (h *EngagementHandler) React(c *gin.Context) {
	var req ReactionRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	identity := middleware.GetIdentity(c)
	reactionType := domain.ReactionType(strings.ToUpper(strings.TrimSpace(req.Type)))

	switch {
	case reactionType.IsVote():
		summary, err := h.reactions.Vote(ctx, identity, c.Param("id"), reactionType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	case reactionType == domain.ReactionFavorite:
		result, err := h.reactions.ToggleFavorite(ctx, identity, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	default:
		respondError(c, fmt.Errorf("%w: type must be one of UPVOTE, DOWNVOTE, FAVORITE", domain.ErrInvalidInput))
	}
}

// Bookmark handles GET /api/v1/content/:id/bookmarks
func (h *EngagementHandler) Bookmark(c *gin.Context) {
	saved, err := h.bookmarks.IsSaved(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// ToggleBookmark handles POST /api/v1/content/:id/bookmarks
func (h *EngagementHandler) ToggleBookmark(c *gin.Context) {
	result, err := h.bookmarks.Toggle(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": result.Active})
}

// Rating handles GET /api/v1/content/:id/ratings
func (h *EngagementHandler) Rating(c *gin.Context) {
	summary, err := h.ratings.Summary(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Rate handles POST /api/v1/content/:id/ratings
func (h *EngagementHandler) Rate(c *gin.Context) {
	var req RatingRequest
	if !bindJSON(c, &req) {
		return
	}

	summary, err := h.ratings.Rate(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
