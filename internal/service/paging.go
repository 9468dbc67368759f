package service

// PageRequest carries one-based pagination parameters.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps the request to sane bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = 10
	}
	if p.Size > 100 {
		p.Size = 100
	}
	return p
}

func (p PageRequest) limitOffset() (int, int) {
	return p.Size, (p.Page - 1) * p.Size
}

// PageInfo describes the slice of a paged listing that was returned.
type PageInfo struct {
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
}

func pageInfo(req PageRequest, total int64) PageInfo {
	pages := int(total / int64(req.Size))
	if total%int64(req.Size) != 0 {
		pages++
	}
	return PageInfo{
		PageNumber:    req.Page,
		PageSize:      req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
