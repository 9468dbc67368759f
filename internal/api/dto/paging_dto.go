package dto

import "github.com/spec-kit/flight-service/internal/service"

// PagingQuery captures one-based pagination query parameters.
type PagingQuery struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// ToPageRequest converts the query to the service-level request.
func (q PagingQuery) ToPageRequest() service.PageRequest {
	return service.PageRequest{Page: q.Page, Size: q.Size}
}

// PagingResponse wraps a page of items with its metadata.
type PagingResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPagingResponse assembles the envelope from mapped items and page info.
func NewPagingResponse[T any](content []T, info service.PageInfo) PagingResponse[T] {
	return PagingResponse[T]{
		Content:       content,
		PageNumber:    info.PageNumber,
		PageSize:      info.PageSize,
		TotalElements: info.TotalElements,
		TotalPages:    info.TotalPages,
	}
}
