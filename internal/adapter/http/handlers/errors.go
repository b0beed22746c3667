package handlers

import (
	"errors"
	"net/http"

	"ongeo_api/internal/adapter/http/middleware"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase"
	"ongeo_api/internal/usecase/interfaces"
	"ongeo_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidRequest   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidJSONBody  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Request body is not valid JSON", http.StatusBadRequest)
	errBudgetNotFound   = pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	errFormLinkNotFound = pkg.NewDomainErrorSimple("FORM_LINK_NOT_FOUND", "Link de formulário não encontrado", http.StatusNotFound)
)

// UseJSONFieldNames makes gin binding report fields by their json names.
func UseJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(usecase.JSONFieldName)
	}
}

// bindError renders a failed ShouldBindJSON. Binding rule violations are
// reported per field, like usecase validation errors.
func bindError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		appErr, _ := mapCommonError(usecase.FieldErrors(verrs))
		return appErr
	}
	return errInvalidJSONBody
}

// writeError renders an AppError and logs the cause of server errors.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log := logger.Component("http.handler")
		log.Error().
			Err(appErr.Cause).
			Str("code", appErr.Code).
			Str("path", c.FullPath()).
			Str("owner_id", middleware.OwnerID(c)).
			Msg("request failed")
	}
	_ = c.Error(appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// mapCommonError handles the errors every usecase can return.
func mapCommonError(err error) (*pkg.AppError, bool) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Dados inválidos", http.StatusBadRequest).WithFields(verr.Fields), true
	}

	var calcErr *interfaces.CalculatorError
	if errors.As(err, &calcErr) {
		status := http.StatusUnprocessableEntity
		if calcErr.StatusCode == 0 || calcErr.StatusCode >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		return pkg.NewDomainError("CALCULATOR_ERROR", calcErr.Message, err, status), true
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidOwner):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing owner", http.StatusUnauthorized), true
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Confirme a exclusão com confirm=true", http.StatusPreconditionRequired), true
	case errors.Is(err, usecase.ErrRequestInFlight):
		return pkg.NewDomainErrorSimple("REQUEST_IN_FLIGHT", "A request with this Idempotency-Key is still being processed", http.StatusConflict), true
	}
	return nil, false
}
