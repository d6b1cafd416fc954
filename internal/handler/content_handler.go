package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// ContentHandler handles blog post HTTP requests.
type ContentHandler struct {
	contentService service.ContentServiceInterface
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentServiceInterface) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ListResponse wraps a list of posts.
type ListResponse struct {
	Items []domain.Content `json:"items"`
	Take  int              `json:"take"`
	Skip  int              `json:"skip"`
}

// List handles GET /api/v1/content?published=&featured=&authorId=&q=&take=&skip=
// Non-admins only see drafts when listing their own posts.
func (h *ContentHandler) List(c *gin.Context) {
	filter := domain.ContentFilter{
		Published: queryBool(c, "published"),
		Featured:  queryBool(c, "featured"),
		AuthorID:  c.Query("authorId"),
		Query:     c.Query("q"),
		Take:      queryInt(c, "take", domain.DefaultContentTake),
		Skip:      queryInt(c, "skip", 0),
	}

	identity := middleware.GetIdentity(c)
	if !identity.IsAdmin() {
		ownDrafts := identity != nil &&
			(filter.AuthorID == identity.UserID || (filter.Published != nil && !*filter.Published))
		if ownDrafts {
			filter.AuthorID = identity.UserID
		} else {
			published := true
			filter.Published = &published
		}
	}
	filter.Normalize()

	items, err := h.contentService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.Content{}
	}

	c.JSON(http.StatusOK, ListResponse{Items: items, Take: filter.Take, Skip: filter.Skip})
}

// Featured handles GET /api/v1/content/featured
func (h *ContentHandler) Featured(c *gin.Context) {
	items, err := h.contentService.Featured(c.Request.Context(), queryInt(c, "limit", service.DefaultFeaturedLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.Content{}
	}

	c.JSON(http.StatusOK, items)
}

// Get handles GET /api/v1/content/:id
// Drafts are reported as missing to everyone but their author and admins.
func (h *ContentHandler) Get(c *gin.Context) {
	item, err := h.contentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if !item.Published && !middleware.GetIdentity(c).CanModify(item.AuthorID) {
		respondError(c, domain.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Create handles POST /api/v1/content
func (h *ContentHandler) Create(c *gin.Context) {
	var input domain.ContentInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.contentService.Create(c.Request.Context(), middleware.GetIdentity(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /api/v1/content/:id
func (h *ContentHandler) Update(c *gin.Context) {
	var input domain.ContentInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.contentService.Update(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/v1/content/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contentService.Delete(c.Request.Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Related handles GET /api/v1/content/:id/related
func (h *ContentHandler) Related(c *gin.Context) {
	items, err := h.contentService.Related(c.Request.Context(), c.Param("id"), queryInt(c, "limit", service.DefaultRelatedLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.Content{}
	}

	c.JSON(http.StatusOK, items)
}
