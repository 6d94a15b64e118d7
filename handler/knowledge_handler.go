package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tieubaoca/csbot-be/service"
	"github.com/tieubaoca/csbot-be/types"
)

type KnowledgeHandler struct {
	knowledgeService *service.KnowledgeService
}

func NewKnowledgeHandler(knowledgeService *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
	}
}

func (h *KnowledgeHandler) HandleListKnowledge(c *gin.Context) {
	entries, err := h.knowledgeService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// HandleAddKnowledge accepts two body shapes: {url} for scraped ingestion and
// {title, content} for manual entries. Anything else is rejected before the
// services run.
func (h *KnowledgeHandler) HandleAddKnowledge(c *gin.Context) {
	var req types.KnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body"})
		return
	}

	var (
		entry *types.KnowledgeEntry
		err   error
	)
	switch {
	case req.URL != "":
		entry, err = h.knowledgeService.IngestURL(c.Request.Context(), req.URL)
	case req.Title != "" && req.Content != "":
		entry, err = h.knowledgeService.IngestManual(c.Request.Context(), req.Title, req.Content)
	default:
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: service.ErrNoSource.Error()})
		return
	}

	if err != nil {
		var fetchErr *service.FetchError
		switch {
		case errors.As(err, &fetchErr),
			errors.Is(err, service.ErrTitleRequired),
			errors.Is(err, service.ErrContentRequired):
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *KnowledgeHandler) HandleDeleteKnowledge(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid knowledge id"})
		return
	}

	if err := h.knowledgeService.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "knowledge entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Knowledge deleted successfully"})
}
