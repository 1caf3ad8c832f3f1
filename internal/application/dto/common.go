package dto

import "github.com/gstbook/gstbook-api/internal/domain"

// PageRequest pagination for list endpoints.
type PageRequest struct {
	Keyword    string `query:"keyword"`
	PageNumber int    `query:"pageNumber"`
	PageSize   int    `query:"pageSize"`
}

// DefaultPage applies defaults for missing values.
func (p *PageRequest) DefaultPage() {
	if p.PageNumber <= 0 {
		p.PageNumber = 1
	}
	if p.PageSize <= 0 || p.PageSize > 100 {
		p.PageSize = 20
	}
}

// Offset converts the 1-based page number to a row offset.
func (p PageRequest) Offset() int { return (p.PageNumber - 1) * p.PageSize }

// Paged wraps a page of results. Pages is ceil(total/pageSize); a request
// past the last page yields an empty Items with Pages still correct.
type Paged[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// NewPaged computes page metadata.
func NewPaged[T any](items []T, page, pageSize, total int) Paged[T] {
	pages := 0
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}
	if items == nil {
		items = []T{}
	}
	return Paged[T]{Items: items, Page: page, Pages: pages, Total: total}
}

// ErrorResponse HTTP error body. Errors lists the offending fields on
// validation failures.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}
