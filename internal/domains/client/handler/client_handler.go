package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"libreria-backend/internal/domains/client/model"
	"libreria-backend/internal/domains/client/service"
	"libreria-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// FindOrCreate - POST /api/v1/clients/find-or-create
// A name conflict is a regular outcome here, not an error: the GUI shows
// the existing name and lets the operator decide.
func (h *Handler) FindOrCreate(c *gin.Context) {
	var req model.FindOrCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	resolution, err := h.service.FindOrCreate(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resolution)
}

// Get - GET /api/v1/clients/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, "invalid client id")
		return
	}

	client, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, client)
}
