package handlers

import (
	"errors"
	"net/http"

	request "warsto_quotation/internal/adapter/http/dto/request"
	response "warsto_quotation/internal/adapter/http/dto/response"
	"warsto_quotation/internal/usecase"
	"warsto_quotation/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const submitErrorMessage = "Error submitting form"

// QuotationHandler handles form submission and the quotation page.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
	logger  *zap.Logger
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, logger *zap.Logger) *QuotationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotationHandler{usecase: uc, logger: logger}
}

// Submit godoc
// @Summary      Submit the form
// @Description  Stores the submission, computes and stores a quotation valid for 15 days
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Param        payload  body  request.SubmitRequest  true  "Submission"
// @Success      201  {object}  response.SubmitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /submit [post]
func (h *QuotationHandler) Submit(c *gin.Context) {
	var payload request.SubmitRequest
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SUBMISSION", submitErrorMessage, http.StatusBadRequest).
			WithDetails(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var raw []byte
	if body, ok := c.Get(gin.BodyBytesKey); ok {
		raw, _ = body.([]byte)
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToForm(VisitorKey(c), raw))
	if err != nil {
		appErr := mapSubmitError(err)
		h.logger.Warn("[quotation][handler] submission rejected", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmission(res))
}

// GetQuotation godoc
// @Summary      Get a quotation
// @Tags         quotation
// @Produce      json
// @Param        id  path  string  true  "Quotation id"
// @Success      200  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      410  {object}  pkg.HTTPError
// @Router       /quotation/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[quotation][handler] fetch failed", zap.String("id", c.Param("id")), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// mapSubmitError reports every submission failure, persistence included, as
// a 400 carrying the cause in details.
func mapSubmitError(err error) *pkg.AppError {
	code := "INVALID_SUBMISSION"
	switch {
	case errors.Is(err, usecase.ErrSubmissionPersistence), errors.Is(err, usecase.ErrQuotationPersistence):
		code = "PERSISTENCE_ERROR"
	case errors.Is(err, usecase.ErrInvalidDwellingSize):
		code = "INVALID_BHK_TYPE"
	case errors.Is(err, usecase.ErrMissingSelections), errors.Is(err, usecase.ErrEmptySubmission):
		code = "INVALID_SELECTIONS"
	}
	return pkg.NewDomainError(code, submitErrorMessage, err, http.StatusBadRequest).WithDetails(err.Error())
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationExpired):
		return pkg.NewDomainErrorSimple("QUOTATION_EXPIRED", "Quotation has expired", http.StatusGone)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
