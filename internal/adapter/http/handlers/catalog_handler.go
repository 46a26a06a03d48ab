package handlers

import (
	"errors"
	"net/http"

	request "warsto_quotation/internal/adapter/http/dto/request"
	response "warsto_quotation/internal/adapter/http/dto/response"
	"warsto_quotation/internal/usecase"
	"warsto_quotation/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidCustomOptionPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOM_OPTION_INPUT", "All fields are required", http.StatusBadRequest)
)

// CatalogHandler serves the selectable options of the form.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	logger  *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{usecase: uc, logger: logger}
}

// GetOptions godoc
// @Summary      List options for a dwelling size
// @Description  Base catalog options merged with the visitor's custom options
// @Tags         catalog
// @Produce      json
// @Param        bhkType        path    string  true   "Dwelling size, e.g. 2 BHK"
// @Param        X-Visitor-Key  header  string  false  "Visitor key"
// @Success      200  {object}  map[string][]string
// @Failure      400  {object}  pkg.HTTPError
// @Router       /options/{bhkType} [get]
func (h *CatalogHandler) GetOptions(c *gin.Context) {
	opts, err := h.usecase.GetOptions(c.Request.Context(), VisitorKey(c), c.Param("bhkType"))
	if err != nil {
		appErr := mapCatalogError(err)
		h.logAppError(appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoomOptions(opts))
}

// AddCustomOption godoc
// @Summary      Add a custom option
// @Description  Adds a visitor-scoped item to an extensible room category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        payload        body    request.CustomOptionRequest  true   "Custom option"
// @Param        X-Visitor-Key  header  string                       false  "Visitor key"
// @Success      200  {object}  response.CustomOptionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /addCustomOption [post]
func (h *CatalogHandler) AddCustomOption(c *gin.Context) {
	var payload request.CustomOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomOptionPayload.HTTPStatus, errInvalidCustomOptionPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AddCustomOption(
		c.Request.Context(),
		VisitorKey(c),
		payload.ResolveDwellingSize(),
		payload.ResolveRoomCategory(),
		payload.ResolveItemName(),
	)
	if err != nil {
		appErr := mapCatalogError(err)
		h.logAppError(appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUpdatedOptions(updated))
}

func (h *CatalogHandler) logAppError(appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[catalog][handler] request failed", zap.String("code", appErr.Code), zap.Error(appErr.Err))
	}
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDwellingSize):
		return pkg.NewDomainErrorSimple("INVALID_BHK_TYPE", "Invalid BHK type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomOptionFieldsRequired):
		return errInvalidCustomOptionPayload
	case errors.Is(err, usecase.ErrInvalidRoomCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Invalid BHK type or category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImmutableRoomCategory):
		return pkg.NewDomainErrorSimple("IMMUTABLE_CATEGORY", "Cannot add custom options to this category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomOptionLength):
		return pkg.NewDomainErrorSimple("INVALID_OPTION_LENGTH", "Custom option must be between 2 and 50 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomOptionExists):
		return pkg.NewDomainErrorSimple("OPTION_EXISTS", "Option already exists", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVisitorKey):
		return pkg.NewDomainErrorSimple("INVALID_VISITOR", "Visitor key is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
