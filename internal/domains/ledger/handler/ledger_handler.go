package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"libreria-backend/internal/domains/ledger/model"
	"libreria-backend/internal/domains/ledger/service"
	"libreria-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// PostIncome - POST /api/v1/ledger/incomes
func (h *Handler) PostIncome(c *gin.Context) {
	var req model.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	id, err := h.service.PostIncome(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// PostExpense - POST /api/v1/ledger/expenses
func (h *Handler) PostExpense(c *gin.Context) {
	var req model.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	id, err := h.service.PostExpense(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// Statement - GET /api/v1/ledger/statement/:date
func (h *Handler) Statement(c *gin.Context) {
	statement, err := h.service.Statement(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, statement)
}
