package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"libreria-backend/internal/domains/returns/model"
	"libreria-backend/internal/domains/returns/service"
	"libreria-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Process - POST /api/v1/returns
func (h *Handler) Process(c *gin.Context) {
	var req model.ProcessReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	id, err := h.service.ProcessReturn(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"return_id": id})
}

// Get - GET /api/v1/returns/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, "invalid return id")
		return
	}

	ret, err := h.service.GetReturn(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ret)
}
