package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobquestapp/jobquest-backend/internal/dtos"
	"github.com/jobquestapp/jobquest-backend/internal/models"
	"github.com/jobquestapp/jobquest-backend/internal/services"
)

// JobSearcher runs the ingestion pipeline for one request.
type JobSearcher interface {
	Search(ctx context.Context, token string, req dtos.SearchRequest) ([]models.Job, error)
}

type JobHandler struct {
	searcher JobSearcher
}

func NewJobHandler(searcher JobSearcher) *JobHandler {
	return &JobHandler{searcher: searcher}
}

// FetchJobs is the POST /api/v1/jobs/fetch endpoint.
func (h *JobHandler) FetchJobs(c *gin.Context) {
	var req dtos.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	jobs, err := h.searcher.Search(c.Request.Context(), bearerToken(c), req)
	if err != nil {
		status, msg := http.StatusInternalServerError, err.Error()
		switch {
		case errors.Is(err, services.ErrInvalidRequest):
			status = http.StatusBadRequest
		case errors.Is(err, services.ErrUnauthorized):
			status, msg = http.StatusUnauthorized, "Unauthorized"
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
