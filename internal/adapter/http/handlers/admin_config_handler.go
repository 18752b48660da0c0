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
	errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid config payload", http.StatusBadRequest)
	errInvalidOptionPayload = pkg.NewDomainErrorSimple("INVALID_OPTION_INPUT", "Invalid option payload", http.StatusBadRequest)
	errInvalidRegionPayload = pkg.NewDomainErrorSimple("INVALID_REGION_INPUT", "Invalid region payload", http.StatusBadRequest)
)

// AdminConfigHandler exposes the back-office editor for configs, options and regions.
// Routes are expected to sit behind the admin guard.

type AdminConfigHandler struct {
	usecase usecase.IAdminConfigUseCase
}

func NewAdminConfigHandler(uc usecase.IAdminConfigUseCase) *AdminConfigHandler {
	return &AdminConfigHandler{usecase: uc}
}

func (h *AdminConfigHandler) ListConfigs(c *gin.Context) {
	configs, err := h.usecase.ListConfigs(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuildingTypes(configs))
}

func (h *AdminConfigHandler) CreateConfig(c *gin.Context) {
	var payload request.ConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}
	cfg, err := h.usecase.CreateConfig(c.Request.Context(), toConfigInput(payload))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBuildingType(cfg))
}

func (h *AdminConfigHandler) UpdateConfig(c *gin.Context) {
	var payload request.ConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}
	cfg, err := h.usecase.UpdateConfig(c.Request.Context(), c.Param("id"), toConfigInput(payload))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuildingType(cfg))
}

func (h *AdminConfigHandler) PublishConfig(c *gin.Context) {
	var payload request.PublishRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}
	cfg, err := h.usecase.SetConfigPublished(c.Request.Context(), c.Param("id"), *payload.IsPublished)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuildingType(cfg))
}

func (h *AdminConfigHandler) DeleteConfig(c *gin.Context) {
	if err := h.usecase.DeleteConfig(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminConfigHandler) ListOptions(c *gin.Context) {
	options, err := h.usecase.ListOptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOptions(options))
}

func (h *AdminConfigHandler) CreateOption(c *gin.Context) {
	var payload request.OptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOptionPayload.HTTPStatus, errInvalidOptionPayload.ToHTTPError())
		return
	}
	opt, err := h.usecase.CreateOption(c.Request.Context(), c.Param("id"), toOptionInput(payload))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOption(opt))
}

func (h *AdminConfigHandler) UpdateOption(c *gin.Context) {
	var payload request.OptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOptionPayload.HTTPStatus, errInvalidOptionPayload.ToHTTPError())
		return
	}
	opt, err := h.usecase.UpdateOption(c.Request.Context(), c.Param("id"), toOptionInput(payload))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOption(opt))
}

func (h *AdminConfigHandler) DeleteOption(c *gin.Context) {
	if err := h.usecase.DeleteOption(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminConfigHandler) ListRegions(c *gin.Context) {
	regions, err := h.usecase.ListRegions(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRegions(regions))
}

func (h *AdminConfigHandler) CreateRegion(c *gin.Context) {
	var payload request.RegionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegionPayload.HTTPStatus, errInvalidRegionPayload.ToHTTPError())
		return
	}
	region, err := h.usecase.CreateRegion(c.Request.Context(), toRegionInput(payload))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRegion(region))
}

func (h *AdminConfigHandler) UpdateRegion(c *gin.Context) {
	var payload request.RegionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegionPayload.HTTPStatus, errInvalidRegionPayload.ToHTTPError())
		return
	}
	region, err := h.usecase.UpdateRegion(c.Request.Context(), c.Param("id"), toRegionInput(payload))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRegion(region))
}

func (h *AdminConfigHandler) DeleteRegion(c *gin.Context) {
	if err := h.usecase.DeleteRegion(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminConfigHandler) fail(c *gin.Context, err error) {
	appErr := mapAdminConfigError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func toConfigInput(r request.ConfigRequest) usecase.ConfigInput {
	return usecase.ConfigInput{
		Slug:             r.Slug,
		BuildingType:     r.BuildingType,
		BasePriceMin:     r.BasePriceMin,
		BasePriceMax:     r.BasePriceMax,
		DurationMinWeeks: r.DurationMinWeeks,
		DurationMaxWeeks: r.DurationMaxWeeks,
		Notes:            r.Notes,
		IsPublished:      r.IsPublished,
		SortOrder:        r.SortOrder,
	}
}

func toOptionInput(r request.OptionRequest) usecase.OptionInput {
	return usecase.OptionInput{
		Name:        r.Name,
		AddPriceMin: r.AddPriceMin,
		AddPriceMax: r.AddPriceMax,
		SortOrder:   r.SortOrder,
	}
}

func toRegionInput(r request.RegionRequest) usecase.RegionInput {
	return usecase.RegionInput{
		Region:      r.Region,
		Coefficient: r.Coefficient,
		SortOrder:   r.SortOrder,
	}
}

func mapAdminConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidConfig):
		return pkg.NewDomainError("INVALID_CONFIG", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOption):
		return pkg.NewDomainError("INVALID_OPTION", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRegion):
		return pkg.NewDomainError("INVALID_REGION", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigSlugTaken):
		return pkg.NewDomainErrorSimple("SLUG_ALREADY_EXISTS", "Slug is already used by another config", http.StatusConflict)
	case errors.Is(err, usecase.ErrOptionNameTaken):
		return pkg.NewDomainErrorSimple("OPTION_ALREADY_EXISTS", "Option name already exists in this config", http.StatusConflict)
	case errors.Is(err, usecase.ErrRegionNameTaken):
		return pkg.NewDomainErrorSimple("REGION_ALREADY_EXISTS", "Region already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrConfigNotFound):
		return pkg.NewDomainErrorSimple("CONFIG_NOT_FOUND", "Config not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOptionNotFound):
		return pkg.NewDomainErrorSimple("OPTION_NOT_FOUND", "Option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegionModNotFound):
		return pkg.NewDomainErrorSimple("REGION_NOT_FOUND", "Region not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
