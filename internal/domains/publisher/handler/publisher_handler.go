package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"alexandria-backend/internal/domains/publisher/model"
	"alexandria-backend/internal/domains/publisher/service"
	"alexandria-backend/internal/shared/response"
)

// PublisherHandler handles HTTP requests for the publisher domain
type PublisherHandler struct {
	service service.ServiceInterface
}

func NewPublisherHandler(service service.ServiceInterface) *PublisherHandler {
	return &PublisherHandler{
		service: service,
	}
}

// GetByID handles GET /publishers/:id
func (h *PublisherHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	pub, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pub.ToResponse())
}

// GetAll handles GET /publishers
func (h *PublisherHandler) GetAll(c *gin.Context) {
	pubs, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, lo.Map(pubs, func(p *model.Publisher, _ int) *model.PublisherResponse {
		return p.ToResponse()
	}))
}

// Create handles POST /publishers
func (h *PublisherHandler) Create(c *gin.Context) {
	var req model.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.NewInvalidPayload(err))
		return
	}

	pub, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, pub.ToResponse())
}

// Update handles PUT /publishers/:id
func (h *PublisherHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.NewInvalidPayload(err))
		return
	}

	pub, err := h.service.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pub.ToResponse())
}

// Delete handles DELETE /publishers/:id and answers with the deleted publisher
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	pub, err := h.service.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pub.ToResponse())
}

func (h *PublisherHandler) parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.handleError(c, model.NewInvalidID(raw))
		return 0, false
	}

	return id, true
}

func (h *PublisherHandler) handleError(c *gin.Context, err error) {
	status, message, code := model.MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	response.ErrorResponse(c, status, code, message)
}
