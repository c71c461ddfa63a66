package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"libreria-backend/internal/domains/reservation/model"
	"libreria-backend/internal/domains/reservation/service"
	"libreria-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Create - POST /api/v1/reservations
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reservation_id": id})
}

// AddDeposit - POST /api/v1/reservations/:id/deposit
func (h *Handler) AddDeposit(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	reservation, err := h.service.AddDeposit(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reservation)
}

// ConvertToSale - POST /api/v1/reservations/:id/convert
func (h *Handler) ConvertToSale(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req model.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	saleID, err := h.service.ConvertToSale(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sale_id": saleID})
}

// Cancel - POST /api/v1/reservations/:id/cancel
func (h *Handler) Cancel(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req model.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id, req.WithRefund); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

// ListActive - GET /api/v1/reservations/active
func (h *Handler) ListActive(c *gin.Context) {
	reservations, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reservations)
}

// Details - GET /api/v1/reservations/:id
func (h *Handler) Details(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	details, err := h.service.Details(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, details)
}

func (h *Handler) reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, "invalid reservation id")
		return 0, false
	}
	return id, true
}
