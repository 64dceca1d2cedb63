package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deepanshu41008/Yapassio-platform/internal/services"
	"github.com/Deepanshu41008/Yapassio-platform/internal/services/dto"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

// FindMentors runs the full pipeline: filter, score, rank, explain.
func (h *MatchingHandler) FindMentors(c *gin.Context) {
	var req dto.FindMentorsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.matchingService.FindMentors(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, resp)
}

func (h *MatchingHandler) RequestConnection(c *gin.Context) {
	var req dto.ConnectionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.matchingService.RequestConnection(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, resp)
}

func (h *MatchingHandler) GetWeights(c *gin.Context) {
	h.Respond(c, http.StatusOK, gin.H{
		"weights":           h.matchingService.Weights(),
		"algorithm_version": services.AlgorithmVersion,
	})
}
