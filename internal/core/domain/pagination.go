package domain

import (
	"math"
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageQuery holds normalized pagination values ready for the store:
// Skip rows are passed over, Take rows are fetched.
type PageQuery struct {
	Page int
	Take int
	Skip int
}

// NormalizePage turns raw page/pageSize query values into safe, bounded
// skip/take values. It is a pure function: absent or non-numeric page
// defaults to 1, any parsed page <= 0 is treated as 1, and pageSize is used
// only when it lies in (0, 100], otherwise it falls back to 10, clamping
// worst-case query cost. Skip is never negative.
func NormalizePage(rawPage, rawPageSize string) PageQuery {
	page := defaultPage
	if n, err := strconv.Atoi(rawPage); err == nil && n > 0 {
		page = n
	}

	take := defaultPageSize
	if n, err := strconv.Atoi(rawPageSize); err == nil && n > 0 && n <= maxPageSize {
		take = n
	}

	// Cap page so the skip multiplication cannot overflow into a
	// negative value.
	if maxPage := math.MaxInt / take; page > maxPage {
		page = maxPage
	}

	return PageQuery{
		Page: page,
		Take: take,
		Skip: (page - 1) * take,
	}
}

// TotalPages computes ceil(total / take) for list responses.
func TotalPages(total int64, take int) int {
	if take <= 0 {
		return 0
	}
	return int((total + int64(take) - 1) / int64(take))
}
