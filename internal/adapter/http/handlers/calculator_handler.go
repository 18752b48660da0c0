package handlers

import (
	request "construction_quote/internal/adapter/http/dto/request"
	response "construction_quote/internal/adapter/http/dto/response"
	"construction_quote/internal/domain/quotation"
	"construction_quote/internal/usecase"
	"construction_quote/pkg"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// CalculatorHandler serves the public calculator: published building types,
// regions, and quotations.

type CalculatorHandler struct {
	usecase usecase.ICalculatorUseCase
}

func NewCalculatorHandler(uc usecase.ICalculatorUseCase) *CalculatorHandler {
	return &CalculatorHandler{usecase: uc}
}

func (h *CalculatorHandler) ListBuildingTypes(c *gin.Context) {
	configs, err := h.usecase.ListBuildingTypes(c.Request.Context())
	if err != nil {
		appErr := mapCalculatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuildingTypes(configs))
}

func (h *CalculatorHandler) GetBuildingType(c *gin.Context) {
	catalog, err := h.usecase.GetCatalog(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapCalculatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(catalog))
}

func (h *CalculatorHandler) ListRegions(c *gin.Context) {
	regions, err := h.usecase.ListRegions(c.Request.Context())
	if err != nil {
		appErr := mapCalculatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRegions(regions))
}

// Quote blocks computation on the first missing field and names it in the error.
func (h *CalculatorHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		appErr := mapCalculatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.Quote(c.Request.Context(), usecase.QuoteCommand{
		Slug:    payload.BuildingType,
		Area:    payload.AreaValue(),
		Region:  payload.Region,
		Options: payload.Options,
	})
	if err != nil {
		appErr := mapCalculatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quote))
}

func missingField(field string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("MISSING_FIELD", field+" is required", http.StatusBadRequest)
}

func areaOutOfRange() *pkg.AppError {
	msg := fmt.Sprintf("area must not exceed %d", quotation.MaxArea)
	return pkg.NewDomainErrorSimple("AREA_OUT_OF_RANGE", msg, http.StatusBadRequest)
}

func mapCalculatorError(err error) *pkg.AppError {
	var fieldErr *request.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return missingField(fieldErr.Field)
	case errors.Is(err, request.ErrOutOfRange), errors.Is(err, usecase.ErrAreaTooLarge):
		return areaOutOfRange()
	case errors.Is(err, usecase.ErrMissingBuildingType):
		return missingField("building_type")
	case errors.Is(err, usecase.ErrInvalidArea):
		return missingField("area")
	case errors.Is(err, usecase.ErrMissingRegion):
		return missingField("region")
	case errors.Is(err, usecase.ErrCatalogNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_NOT_FOUND", "Building type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegionNotFound):
		return pkg.NewDomainErrorSimple("REGION_NOT_FOUND", "Region not found", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
