package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"libreria-backend/internal/domains/catalog/model"
	"libreria-backend/internal/domains/catalog/service"
	"libreria-backend/internal/infrastructure/metadata"
	"libreria-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
	lookup  *metadata.Lookup
}

func NewHandler(service service.ServiceInterface, lookup *metadata.Lookup) *Handler {
	return &Handler{service: service, lookup: lookup}
}

// Upsert - POST /api/v1/books
func (h *Handler) Upsert(c *gin.Context) {
	var req model.UpsertBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	if err := h.service.Upsert(c.Request.Context(), req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"identifier": req.Book().Identifier})
}

// Get - GET /api/v1/books/:identifier
func (h *Handler) Get(c *gin.Context) {
	book, err := h.service.Get(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, book)
}

// Search - GET /api/v1/books/search?term=...&title=1&author=1&category=1
func (h *Handler) Search(c *gin.Context) {
	filters := model.SearchFilters{
		Title:    c.Query("title") != "",
		Author:   c.Query("author") != "",
		Category: c.Query("category") != "",
	}

	books, err := h.service.Search(c.Request.Context(), c.Query("term"), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// Purge - DELETE /api/v1/books/:identifier
func (h *Handler) Purge(c *gin.Context) {
	if err := h.service.Purge(c.Request.Context(), c.Param("identifier")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

// Metadata - GET /api/v1/books/:identifier/metadata
// Queries the external providers; an absent record is a plain not-found,
// never an error worth surfacing as a failure.
func (h *Handler) Metadata(c *gin.Context) {
	fields, err := h.lookup.Fetch(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		response.ErrorResponse(c, http.StatusNotFound, response.CodeNotFound, "no metadata found")
		return
	}
	response.Success(c, http.StatusOK, fields)
}
