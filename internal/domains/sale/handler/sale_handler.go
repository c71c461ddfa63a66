package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"libreria-backend/internal/domains/sale/model"
	"libreria-backend/internal/domains/sale/service"
	"libreria-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Create - POST /api/v1/sales
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	id, err := h.service.CreateSale(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"sale_id": id})
}

// Get - GET /api/v1/sales/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, "invalid sale id")
		return
	}

	sale, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sale)
}

// ListByDate - GET /api/v1/sales?date=YYYY-MM-DD
func (h *Handler) ListByDate(c *gin.Context) {
	sales, err := h.service.ListByDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sales)
}
