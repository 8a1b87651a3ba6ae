package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/author"
	"library-api/internal/shared/response"
	"library-api/internal/shared/utils"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /authors/?skip=0&limit=10
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	page, err := utils.ParsePage(c)
	if err != nil {
		response.Unprocessable(c, err.Error())
		return
	}

	authors, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, author.ToResponses(authors))
}

// ════════════════════════════════════════════════════════════════
// READ: GET /authors/:id/
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.Unprocessable(c, err.Error())
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors/
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unprocessable(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, created.ToResponse())
}

// handleError maps domain errors to 4xx; anything else is left to the Recovery middleware.
func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	switch author.ToHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c, author.NotFoundDetail)
	case http.StatusUnprocessableEntity:
		response.Unprocessable(c, err.Error())
	default:
		_ = c.Error(err)
	}
}
