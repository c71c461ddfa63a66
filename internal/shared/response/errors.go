package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	catalogModel "libreria-backend/internal/domains/catalog/model"
	clientModel "libreria-backend/internal/domains/client/model"
	invModel "libreria-backend/internal/domains/inventory/model"
	ledgerModel "libreria-backend/internal/domains/ledger/model"
	reservationModel "libreria-backend/internal/domains/reservation/model"
	returnsModel "libreria-backend/internal/domains/returns/model"
	saleModel "libreria-backend/internal/domains/sale/model"
	"libreria-backend/internal/infrastructure/database"
)

// Error kinds the GUI maps to user-facing messages.
const (
	CodeValidation        = "ValidationError"
	CodeNotFound          = "NotFound"
	CodeInsufficientStock = "InsufficientStock"
	CodeConflict          = "Conflict"
	CodeIneligible        = "Ineligible"
	CodeStorage           = "StorageError"
)

// notFoundErrors are the sentinels that mean a missing row for an id.
var notFoundErrors = []error{
	catalogModel.ErrBookNotFound,
	invModel.ErrEntryNotFound,
	clientModel.ErrClientNotFound,
	saleModel.ErrSaleNotFound,
	reservationModel.ErrReservationNotFound,
	returnsModel.ErrReturnNotFound,
}

// validationErrors are the sentinels raised on bad input before any write.
var validationErrors = []error{
	catalogModel.ErrInvalidIdentifier,
	catalogModel.ErrPriceBelowMinimum,
	catalogModel.ErrEmptyTitle,
	invModel.ErrInvalidPosition,
	clientModel.ErrInvalidPhone,
	clientModel.ErrInvalidName,
	ledgerModel.ErrInvalidAmount,
	ledgerModel.ErrInvalidDate,
	saleModel.ErrNoItems,
	saleModel.ErrInvalidLine,
	reservationModel.ErrInvalidDeposit,
	reservationModel.ErrDepositExceedsTotal,
	reservationModel.ErrInsufficientPayment,
	reservationModel.ErrNotPending,
}

// FromError maps a service error to the envelope the GUI expects. Unknown
// errors are reported as storage failures without leaking their message.
func FromError(c *gin.Context, err error) {
	var ozzoErrs validation.Errors
	if errors.As(err, &ozzoErrs) {
		ErrorWithDetails(c, http.StatusBadRequest, CodeValidation, "invalid input", ozzoErrs)
		return
	}

	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			ErrorResponse(c, http.StatusBadRequest, CodeValidation, err.Error())
			return
		}
	}
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			ErrorResponse(c, http.StatusNotFound, CodeNotFound, err.Error())
			return
		}
	}

	switch {
	case errors.Is(err, invModel.ErrInsufficientStock):
		ErrorResponse(c, http.StatusConflict, CodeInsufficientStock, err.Error())
	case errors.Is(err, clientModel.ErrNameConflict):
		ErrorResponse(c, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, returnsModel.ErrIneligible):
		ErrorResponse(c, http.StatusUnprocessableEntity, CodeIneligible, err.Error())
	case database.IsStorageError(err):
		ErrorResponse(c, http.StatusInternalServerError, CodeStorage, "storage failure")
	default:
		ErrorResponse(c, http.StatusInternalServerError, CodeStorage, "internal error")
	}
}
