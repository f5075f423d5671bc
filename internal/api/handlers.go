package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avdleeuw/animevault/internal/database"
	"github.com/avdleeuw/animevault/internal/models"
)

func (s *Server) healthCheck(c *gin.Context) {
	if err := database.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"breaker": s.cache.BreakerState().String(),
	})
}

func (s *Server) listFilters(c *gin.Context) {
	filters, err := s.repo.AllFilters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "database error", Message: err.Error(),
		})
		return
	}

	out := make([]FilterResponse, 0, len(filters))
	for i := range filters {
		out = append(out, filterToResponse(&filters[i]))
	}
	c.JSON(http.StatusOK, gin.H{"filters": out})
}

func (s *Server) getFilter(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	filter, err := s.repo.FilterByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "database error", Message: err.Error(),
		})
		return
	}
	if filter == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "not found", Message: "no such filter",
		})
		return
	}

	c.JSON(http.StatusOK, filterToResponse(filter))
}

// filterGroups returns the groups a filter admits for a user, ordered by
// the filter's sort criteria. Filter ID 0 is the synthetic "All" filter.
func (s *Server) filterGroups(c *gin.Context) {
	filterID, ok := parseID(c, "id")
	if !ok {
		return
	}

	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request", Message: "user_id query parameter is required",
		})
		return
	}

	ids, err := s.cache.SortedMembership(uint(userID), filterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "membership lookup failed", Message: err.Error(),
		})
		return
	}
	if ids == nil {
		ids = []uint{}
	}

	c.JSON(http.StatusOK, MembershipResponse{
		FilterID: filterID,
		UserID:   uint(userID),
		GroupIDs: ids,
	})
}

func (s *Server) previewFilter(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request", Message: err.Error(),
		})
		return
	}

	filter := &models.GroupFilter{BasePolicy: req.BasePolicy}
	if filter.BasePolicy == "" {
		filter.BasePolicy = models.FilterBaseInclude
	}
	for i, cond := range req.Conditions {
		filter.Conditions = append(filter.Conditions, models.GroupFilterCondition{
			Type:      cond.Type,
			Operator:  cond.Operator,
			Parameter: cond.Parameter,
			Position:  i,
		})
	}

	matches, err := s.cache.EvaluateFilterAdHoc(filter, req.GroupID, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "preview failed", Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, PreviewResponse{
		GroupID: req.GroupID,
		UserID:  req.UserID,
		Matches: matches,
	})
}

func (s *Server) groupStats(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	agg, found := s.cache.GetAggregate(id)
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "not found", Message: "no statistics for this group",
		})
		return
	}

	c.JSON(http.StatusOK, aggregateToResponse(agg))
}

func (s *Server) rebuildStats(c *gin.Context) {
	if err := s.cache.InitStats(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "rebuild failed", Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rebuilt"})
}

// refreshStats queues a debounced recompute; the work runs after the
// coalescing window, so the response is an acknowledgement only.
func (s *Server) refreshStats(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request", Message: err.Error(),
		})
		return
	}

	switch req.Kind {
	case "group":
		s.debouncer.QueueGroup(req.GroupID)
	case "series":
		s.debouncer.QueueSeries(req.SeriesID)
	case "file":
		s.debouncer.QueueFile(req.Hash)
	case "catalog_entry":
		s.debouncer.QueueCatalogEntry(req.AniDBID)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Message: "kind must be one of: group, series, file, catalog_entry",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request", Message: name + " must be a number",
		})
		return 0, false
	}
	return uint(id), true
}
