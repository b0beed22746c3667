package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "ongeo_api/internal/adapter/http/dto/request"
	response "ongeo_api/internal/adapter/http/dto/response"
	"ongeo_api/internal/adapter/http/middleware"
	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase"
	"ongeo_api/pkg"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles the caller's client book.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// Create godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param body body request.ClientRequest true "Client"
// @Success 201 {object} response.ClientResponse
// @Security BearerAuth
// @Router /api/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), payload.ToInput())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.ClientResponse{Success: true, Client: created})
}

// List godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Param include_inactive query bool false "Include deactivated clients"
// @Success 200 {object} response.ClientListResponse
// @Security BearerAuth
// @Router /api/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))

	clients, err := h.usecase.List(c.Request.Context(), middleware.OwnerID(c), includeInactive)
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	if clients == nil {
		clients = []entities.Client{}
	}
	c.JSON(http.StatusOK, response.ClientListResponse{Success: true, Clients: clients, Count: len(clients)})
}

// Get godoc
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param id path string true "Client id"
// @Success 200 {object} response.ClientResponse
// @Security BearerAuth
// @Router /api/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	cl, err := h.usecase.Get(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.ClientResponse{Success: true, Client: cl})
}

// Update godoc
// @Summary Update a client profile
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client id"
// @Param body body request.ClientRequest true "Client"
// @Success 200 {object} response.ClientResponse
// @Security BearerAuth
// @Router /api/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	cl, err := h.usecase.Update(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.ClientResponse{Success: true, Client: cl})
}

// Delete godoc
// @Summary Deactivate a client (budgets keep referencing it)
// @Tags clients
// @Produce json
// @Param id path string true "Client id"
// @Success 200 {object} response.SuccessResponse
// @Security BearerAuth
// @Router /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.usecase.Deactivate(c.Request.Context(), middleware.OwnerID(c), c.Param("id")); err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Detail: "Cliente desativado"})
}

func mapClientError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
