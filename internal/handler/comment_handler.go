package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List handles GET /api/v1/content/:id/comments
// The response is the full comment tree: roots newest first, replies oldest first.
func (h *CommentHandler) List(c *gin.Context) {
	tree, err := h.commentService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if tree == nil {
		tree = []domain.CommentNode{}
	}

	c.JSON(http.StatusOK, tree)
}

// Create handles POST /api/v1/content/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var input domain.NewCommentInput
	if !bindJSON(c, &input) {
		return
	}

	node, err := h.commentService.Create(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, node)
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentService.Delete(c.Request.Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
