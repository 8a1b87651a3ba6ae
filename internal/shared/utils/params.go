package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared"
)

// ParseIDParam reads an integer path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path parameter %s must be an integer, got %q", name, raw)
	}
	return id, nil
}

// ParsePage reads skip/limit query parameters, defaulting to 0/10.
func ParsePage(c *gin.Context) (shared.Page, error) {
	page := shared.DefaultPage()

	skip, err := queryInt(c, "skip", page.Skip)
	if err != nil {
		return page, err
	}
	limit, err := queryInt(c, "limit", page.Limit)
	if err != nil {
		return page, err
	}

	return shared.Page{Skip: skip, Limit: limit}, nil
}

// OptionalInt64Query returns nil when the parameter is absent or empty.
func OptionalInt64Query(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("query parameter %s must be an integer, got %q", name, raw)
	}
	return &v, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be an integer, got %q", name, raw)
	}
	return v, nil
}
