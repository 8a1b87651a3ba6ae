package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DetailError is the body of every 4xx response: {"detail": "..."}.
type DetailError struct {
	Detail string `json:"detail"`
}

// MessageError is the body of unhandled-failure responses: {"message": "..."}.
type MessageError struct {
	Message string `json:"message"`
}

// Success responses
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error responses
func Detail(c *gin.Context, statusCode int, detail string) {
	c.AbortWithStatusJSON(statusCode, DetailError{Detail: detail})
}

func NotFound(c *gin.Context, detail string) {
	Detail(c, http.StatusNotFound, detail)
}

func Conflict(c *gin.Context, detail string) {
	Detail(c, http.StatusConflict, detail)
}

func Unprocessable(c *gin.Context, detail string) {
	Detail(c, http.StatusUnprocessableEntity, detail)
}

// InternalServerError writes the diagnostic 500 body naming the method, full URL and error.
func InternalServerError(c *gin.Context, err any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, MessageError{
		Message: FailureMessage(c.Request, err),
	})
}

// FailureMessage formats "Failed method GET at URL http://host/path. Exception message is <err>."
func FailureMessage(r *http.Request, err any) string {
	return fmt.Sprintf("Failed method %s at URL %s. Exception message is %v.", r.Method, RequestURL(r), err)
}

// RequestURL reconstructs the absolute URL the client requested.
func RequestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
