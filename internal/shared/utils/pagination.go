package utils

// Pagination is the resolved window of a paginated listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Offset     int `json:"-"`
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }
func (p Pagination) PrevPage() int { return p.Page - 1 }
func (p Pagination) NextPage() int { return p.Page + 1 }

// Paginate resolves a requested page against a total row count.
// The page is at least 1 and there is always at least one page, so the offset
// is never negative. With clampToLast a page past the end is moved back to the
// last page; otherwise it yields an empty window and is capped at the first
// page past the end, which keeps the offset from overflowing.
func Paginate(page, limit, total int, clampToLast bool) Pagination {
	if limit < 1 {
		limit = 1
	}
	if total < 0 {
		total = 0
	}
	if page < 1 {
		page = 1
	}

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		if clampToLast {
			page = totalPages
		} else {
			page = totalPages + 1
		}
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		Offset:     (page - 1) * limit,
	}
}
