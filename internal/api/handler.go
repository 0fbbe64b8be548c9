package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/communityrides/ride-matcher/internal/resultstore"
	"github.com/communityrides/ride-matcher/internal/ridematch"
	"github.com/communityrides/ride-matcher/pkg/common"
	"github.com/communityrides/ride-matcher/pkg/metrics"
	"github.com/communityrides/ride-matcher/pkg/validation"
)

// Handler handles HTTP requests for the matching service.
type Handler struct {
	service *ridematch.Service
	store   resultstore.Store
}

// NewHandler creates a new matcher handler.
func NewHandler(service *ridematch.Service, store resultstore.Store) *Handler {
	return &Handler{service: service, store: store}
}

// RegisterRoutes wires the matcher's routes onto router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/v1")
	v1.POST("/match", h.Match)
	v1.GET("/match/:id", h.GetMatch)
}

// Match runs one matching call and persists the result.
func (h *Handler) Match(c *gin.Context) {
	var body validation.MatchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidateStruct(body); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	req := toMatchRequest(body)
	result, err := h.service.Match(c.Request.Context(), req)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to run matching")
		return
	}

	unmatchedReasons := make([]string, 0, len(result.UnmatchedPassengers))
	for _, u := range result.UnmatchedPassengers {
		unmatchedReasons = append(unmatchedReasons, u.Reason)
	}
	metrics.ObserveResult(string(result.TripDirection), unmatchedReasons, result.Metadata.MatchingDurationMs)

	if err := h.store.Put(c.Request.Context(), result.ID, result); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "matching succeeded but result could not be stored")
		return
	}

	common.CreatedResponse(c, result)
}

// GetMatch returns a previously computed matching result by ID.
func (h *Handler) GetMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid result ID")
		return
	}

	result, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, resultstore.ErrNotFound) {
			common.AppErrorResponse(c, common.NewNotFoundError("result not found"))
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to fetch result")
		return
	}

	common.SuccessResponse(c, result)
}
