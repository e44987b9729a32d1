package params

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 15
	MaxLimit     = 30
)

// Pagination is parsed from ?page=&limit= and filled in with totals once the
// matching rows are counted.
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"-"`
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ParsePagination never fails: bad or missing values fall back to page 1 and
// the default limit, and limits above MaxLimit are clamped.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{Limit: DefaultLimit, Page: 1}

	if limit, ok := positiveInt(q.Get("limit")); ok {
		p.Limit = min(limit, MaxLimit)
	}
	if page, ok := positiveInt(q.Get("page")); ok {
		p.Page = page
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ComputeMeta updates pagination after fetching total count.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = (total + p.Limit - 1) / p.Limit
	}
	p.HasPrev = p.Page > 1
	p.HasNext = p.Page*p.Limit < total
}
