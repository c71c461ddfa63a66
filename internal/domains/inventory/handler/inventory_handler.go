package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"libreria-backend/internal/domains/inventory/service"
	"libreria-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

type entryRequest struct {
	Identifier string `json:"identifier"`
	Position   string `json:"position"`
}

type moveRequest struct {
	Identifier  string `json:"identifier"`
	OldPosition string `json:"old_position"`
	NewPosition string `json:"new_position"`
}

// AddOne - POST /api/v1/inventory/add
func (h *Handler) AddOne(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	quantity, err := h.service.AddOne(c.Request.Context(), req.Identifier, req.Position)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quantity": quantity})
}

// RemoveOne - POST /api/v1/inventory/remove
func (h *Handler) RemoveOne(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	quantity, err := h.service.RemoveOne(c.Request.Context(), req.Identifier, req.Position)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quantity": quantity})
}

// Move - POST /api/v1/inventory/move
func (h *Handler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	if err := h.service.Move(c.Request.Context(), req.Identifier, req.OldPosition, req.NewPosition); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

// ListFor - GET /api/v1/inventory/:identifier
func (h *Handler) ListFor(c *gin.Context) {
	entries, err := h.service.ListFor(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries)
}
