package handlers

import (
	request "construction_quote/internal/adapter/http/dto/request"
	response "construction_quote/internal/adapter/http/dto/response"
	"construction_quote/internal/usecase"
	"construction_quote/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
)

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitLeadCommand{
		Name:              payload.Name,
		Phone:             payload.Phone,
		Email:             payload.Email,
		BuildingType:      payload.BuildingType,
		AreaM2:            payload.AreaM2,
		Region:            payload.Region,
		Message:           payload.Message,
		MeetingPreference: payload.MeetingPreference,
		Source:            payload.Source,
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.LeadAccepted(lead))
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLead), errors.Is(err, usecase.ErrInvalidLeadSource),
		errors.Is(err, usecase.ErrInvalidLeadStatus), errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadSubmission):
		return pkg.NewDomainError("LEAD_SUBMISSION_FAILED", "Could not submit the request, please try again", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
