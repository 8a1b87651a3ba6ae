package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book/model"
	service "library-api/internal/domains/book/service"
	"library-api/internal/shared/response"
	"library-api/internal/shared/utils"
)

// Handler - HTTP Handler (single file)
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// ListBooks - GET /books/
// Query params: author, skip, limit
func (h *Handler) ListBooks(c *gin.Context) {
	authorID, err := utils.OptionalInt64Query(c, "author")
	if err != nil {
		response.Unprocessable(c, err.Error())
		return
	}
	page, err := utils.ParsePage(c)
	if err != nil {
		response.Unprocessable(c, err.Error())
		return
	}

	books, err := h.service.ListBooks(c.Request.Context(), model.BookFilter{
		AuthorID: authorID,
		Page:     page,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, model.ToResponses(books))
}

// GetBookDetail - GET /books/:id/
func (h *Handler) GetBookDetail(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.Unprocessable(c, err.Error())
		return
	}

	detail, err := h.service.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, detail)
}

// CreateBook - POST /books/
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unprocessable(c, err.Error())
		return
	}

	created, err := h.service.CreateBook(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, created.ToResponse())
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch model.ToHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c, model.NotFoundDetail)
	case http.StatusConflict:
		response.Conflict(c, model.AuthorNotExistDetail)
	case http.StatusUnprocessableEntity:
		response.Unprocessable(c, err.Error())
	default:
		_ = c.Error(err)
	}
}
