package dto

// ── pagination ──

// PaginationRequest page/limit query parameters
type PaginationRequest struct {
	Page  int `form:"page"  binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// GetPage page number, defaults to 1
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetLimit page size, defaults to 10
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return 10
	}
	return p.Limit
}

// GetOffset rows to skip
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetLimit()
}

// PageResult one page of items plus the unpaged total
type PageResult[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// TimeLayout timestamps in responses
const TimeLayout = "2006-01-02T15:04:05Z07:00"

// DateLayout meeting dates in requests and responses
const DateLayout = "2006-01-02"
