package domain

// Pagination is the paging metadata attached to every list response.
type Pagination struct {
	NumberOfItems int `json:"NumberOfItems"`
	PageSize      int `json:"PageSize"`
	PageNumber    int `json:"PageNumber"`
	NumberOfPages int `json:"NumberOfPages"`
}

// TotalPages returns the reported page count, defaulting to a single
// page when the metadata is missing or malformed.
func (p *Pagination) TotalPages() int {
	if p == nil || p.NumberOfPages < 1 {
		return 1
	}
	return p.NumberOfPages
}
