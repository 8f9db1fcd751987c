package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// Params holds page-based pagination parameters extracted from a request.
type Params struct {
	Page  int
	Limit int
}

// FromContext extracts pagination parameters from the echo context.
// Non-numeric or missing values fall back to the defaults.
func FromContext(c echo.Context) Params {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page <= 0 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// Offset returns the row offset for the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Envelope describes a page of results. CurrentPage echoes the requested
// page verbatim, so a request beyond the last page reports a CurrentPage
// greater than TotalPages alongside an empty result set.
type Envelope struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
	Limit       int `json:"limit"`
}

// NewEnvelope builds the pagination envelope for a total result count.
func NewEnvelope(p Params, totalCount int) Envelope {
	return Envelope{
		CurrentPage: p.Page,
		TotalPages:  TotalPages(totalCount, p.Limit),
		TotalCount:  totalCount,
		Limit:       p.Limit,
	}
}

// TotalPages returns ceil(totalCount/limit), or 0 when limit <= 0.
func TotalPages(totalCount, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	return p.Offset()+p.Limit < total
}

// HasPrevious returns true if there are results before the current page.
func (p Params) HasPrevious() bool {
	return p.Page > 1
}
