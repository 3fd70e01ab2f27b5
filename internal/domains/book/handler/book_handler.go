package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"alexandria-backend/internal/domains/book/model"
	"alexandria-backend/internal/domains/book/service"
	"alexandria-backend/internal/shared/response"
)

// BookHandler handles HTTP requests for books, their detail and publisher link
type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(service service.ServiceInterface) *BookHandler {
	return &BookHandler{
		service: service,
	}
}

// ============================================
// BOOK
// ============================================

// GetByID handles GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	book, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponse())
}

// GetAll handles GET /books
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, lo.Map(books, func(b *model.Book, _ int) *model.BookResponse {
		return b.ToResponse()
	}))
}

// Create handles POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.NewInvalidPayload(err))
		return
	}

	book, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, book.ToResponse())
}

// Update handles PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.NewInvalidPayload(err))
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponse())
}

// Delete handles DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	book, err := h.service.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponse())
}

// ============================================
// DETAIL
// ============================================

// CreateDetail handles POST /books/:id/detail
func (h *BookHandler) CreateDetail(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req model.BookDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.NewInvalidPayload(err))
		return
	}

	detail, err := h.service.CreateBookDetail(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, detail.ToResponse())
}

// GetDetail handles GET /books/:id/detail
func (h *BookHandler) GetDetail(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.service.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail.ToResponse())
}

// UpdateDetail handles PUT /books/:id/detail
func (h *BookHandler) UpdateDetail(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req model.BookDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.NewInvalidPayload(err))
		return
	}

	detail, err := h.service.UpdateBookDetail(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail.ToResponse())
}

// RemoveDetail handles DELETE /books/:id/detail and answers with the
// detail as it was before removal
func (h *BookHandler) RemoveDetail(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.service.RemoveBookDetail(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail.ToResponse())
}

// ============================================
// PUBLISHER LINK
// ============================================

// SetPublisher handles PUT /books/:id/publisher/:publisherId
func (h *BookHandler) SetPublisher(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	publisherID, ok := h.parseID(c, "publisherId")
	if !ok {
		return
	}

	book, err := h.service.SetBookPublisher(c.Request.Context(), id, publisherID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponse())
}

// RemovePublisher handles DELETE /books/:id/publisher
func (h *BookHandler) RemovePublisher(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	book, err := h.service.RemoveBookPublisher(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponse())
}

func (h *BookHandler) parseID(c *gin.Context, param string) (int64, bool) {
	raw := c.Param(param)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.handleError(c, model.NewInvalidID(raw))
		return 0, false
	}

	return id, true
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	status, message, code := model.MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	response.ErrorResponse(c, status, code, message)
}
