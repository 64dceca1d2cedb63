package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
	"github.com/Deepanshu41008/Yapassio-platform/internal/services"
	"github.com/Deepanshu41008/Yapassio-platform/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterMentor(c *gin.Context) {
	var req dto.RegisterMentorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.RegisterMentor(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, resp)
}

func (h *ProfileHandler) GetMentor(c *gin.Context) {
	resp, err := h.profileService.GetMentor(c.Request.Context(), c.Param("mentorId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, resp)
}

func (h *ProfileHandler) VerifyMentor(c *gin.Context) {
	var req dto.VerifyMentorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.VerifyMentor(c.Request.Context(), c.Param("mentorId"), models.VerificationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, resp)
}

func (h *ProfileHandler) UpsertStudent(c *gin.Context) {
	var req dto.UpsertStudentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.CreateOrUpdateStudent(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, resp)
}

func (h *ProfileHandler) GetStudent(c *gin.Context) {
	resp, err := h.profileService.GetStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, resp)
}
