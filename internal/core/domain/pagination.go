package domain

// PaginationInfo describes a window into a larger, externally-paginated
// collection. It is echoed back to UI pagination controls unmodified; a
// page boundary is never a safe place to reset a running balance.
type PaginationInfo struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
	TotalCount int  `json:"totalCount"`
}

// NewPaginationInfo computes the window descriptor for a 1-based page over
// totalCount items. A non-positive pageSize yields a single page.
func NewPaginationInfo(page, pageSize, totalCount int) PaginationInfo {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return PaginationInfo{
			Page:       1,
			PageSize:   totalCount,
			TotalPages: 1,
			TotalCount: totalCount,
		}
	}
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginationInfo{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		TotalCount: totalCount,
	}
}

// Offset returns the 0-based index of the first item on the page.
func (p PaginationInfo) Offset() int {
	return (p.Page - 1) * p.PageSize
}
