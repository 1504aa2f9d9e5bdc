package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// PageParams carries the normalized pagination query of a listing endpoint.
type PageParams struct {
	Page  int
	Limit int
}

// Skip converts the 1-based page number to a row offset.
func (p PageParams) Skip() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageParams reads page and limit query values, clamping out-of-range
// input to sane defaults rather than rejecting the request.
func ParsePageParams(c *gin.Context) PageParams {
	params := PageParams{Page: 1, Limit: defaultPageLimit}
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			params.Page = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			params.Limit = v
		}
	}
	if params.Limit > maxPageLimit {
		params.Limit = maxPageLimit
	}
	return params
}

// Page is the envelope every listing endpoint responds with.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// NewPage assembles the pagination envelope from a result slice and the
// total row count reported by the repository.
func NewPage[T any](items []T, total int, params PageParams) Page[T] {
	pages := 0
	if total > 0 {
		pages = (total + params.Limit - 1) / params.Limit
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:   items,
		Total:   total,
		Page:    params.Page,
		Limit:   params.Limit,
		Pages:   pages,
		HasNext: params.Page < pages,
		HasPrev: params.Page > 1,
	}
}
