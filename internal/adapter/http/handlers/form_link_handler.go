package handlers

import (
	"errors"
	"net/http"

	request "ongeo_api/internal/adapter/http/dto/request"
	response "ongeo_api/internal/adapter/http/dto/response"
	"ongeo_api/internal/adapter/http/middleware"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase"
	"ongeo_api/pkg"

	"github.com/gin-gonic/gin"
)

// FormLinkHandler handles the caller's public intake form and the public
// routes that serve it.
type FormLinkHandler struct {
	usecase usecase.IFormLinkUseCase
}

func NewFormLinkHandler(uc usecase.IFormLinkUseCase) *FormLinkHandler {
	return &FormLinkHandler{usecase: uc}
}

// Create godoc
// @Summary Create the caller's intake form link
// @Tags form-link
// @Accept json
// @Produce json
// @Param body body request.FormLinkRequest true "Form link"
// @Success 201 {object} response.FormLinkResponse
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /api/form-link [post]
func (h *FormLinkHandler) Create(c *gin.Context) {
	var payload request.FormLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	l, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), payload.ToInput())
	if err != nil {
		writeError(c, mapFormLinkError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FormLinkResponse{Success: true, FormLink: l})
}

// GetMine godoc
// @Summary Get the caller's intake form link with its counters
// @Tags form-link
// @Produce json
// @Success 200 {object} response.FormLinkResponse
// @Security BearerAuth
// @Router /api/form-link [get]
func (h *FormLinkHandler) GetMine(c *gin.Context) {
	l, err := h.usecase.GetMine(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeError(c, mapFormLinkError(err))
		return
	}
	c.JSON(http.StatusOK, response.FormLinkResponse{Success: true, FormLink: l})
}

// Update godoc
// @Summary Update the caller's intake form link
// @Tags form-link
// @Accept json
// @Produce json
// @Param body body request.FormLinkRequest true "Form link"
// @Success 200 {object} response.FormLinkResponse
// @Security BearerAuth
// @Router /api/form-link [put]
func (h *FormLinkHandler) Update(c *gin.Context) {
	var payload request.FormLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	l, err := h.usecase.Update(c.Request.Context(), middleware.OwnerID(c), payload.ToInput())
	if err != nil {
		writeError(c, mapFormLinkError(err))
		return
	}
	c.JSON(http.StatusOK, response.FormLinkResponse{Success: true, FormLink: l})
}

// SetActive godoc
// @Summary Turn the intake form on or off
// @Tags form-link
// @Accept json
// @Produce json
// @Param body body request.FormLinkActiveRequest true "Active flag"
// @Success 200 {object} response.FormLinkResponse
// @Security BearerAuth
// @Router /api/form-link/active [patch]
func (h *FormLinkHandler) SetActive(c *gin.Context) {
	var payload request.FormLinkActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	l, err := h.usecase.SetActive(c.Request.Context(), middleware.OwnerID(c), *payload.IsActive)
	if err != nil {
		writeError(c, mapFormLinkError(err))
		return
	}
	c.JSON(http.StatusOK, response.FormLinkResponse{Success: true, FormLink: l})
}

// Resolve godoc
// @Summary Resolve an active intake form by slug
// @Tags public
// @Produce json
// @Param slug path string true "Form slug"
// @Success 200 {object} response.PublicFormLinkResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /api/form-links/{slug} [get]
func (h *FormLinkHandler) Resolve(c *gin.Context) {
	l, err := h.usecase.ResolveBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, mapFormLinkError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicFormLink(l))
}

// SubmitPublicRequest godoc
// @Summary Submit the public intake form
// @Tags public
// @Accept json
// @Produce json
// @Param body body request.PublicBudgetRequest true "Budget form and slug"
// @Success 201 {object} response.PublicRequestResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /api/public-budget-request [post]
func (h *FormLinkHandler) SubmitPublicRequest(c *gin.Context) {
	var payload request.PublicBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	b, err := h.usecase.SubmitPublicRequest(c.Request.Context(), payload.Slug, payload.ToDomain())
	if err != nil {
		writeError(c, mapFormLinkError(err))
		return
	}
	c.JSON(http.StatusCreated, response.PublicRequestResponse{
		Success: true,
		Data:    response.PublicRequestData{CustomLink: b.CustomLink},
		Message: "Solicitação enviada com sucesso",
	})
}

func mapFormLinkError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrFormLinkNotFound):
		return errFormLinkNotFound
	case errors.Is(err, usecase.ErrFormLinkInactive):
		// Same answer as a missing link; the distinction is only logged.
		lg := logger.Component("formlink.handler")
		lg.Info().Err(err).Msg("inactive form link requested")
		return errFormLinkNotFound
	case errors.Is(err, usecase.ErrFormLinkAlreadyExists):
		return pkg.NewDomainErrorSimple("FORM_LINK_ALREADY_EXISTS", "Você já possui um link de formulário", http.StatusConflict)
	case errors.Is(err, usecase.ErrFormLinkSlugTaken):
		return pkg.NewDomainErrorSimple("FORM_LINK_SLUG_TAKEN", "Este endereço já está em uso", http.StatusConflict)
	default:
		return internalError(err)
	}
}
