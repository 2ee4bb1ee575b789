package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// maxOffset bounds the row offset so it fits every dialect's OFFSET and never
// overflows int.
const maxOffset = math.MaxInt32

// ValidatePagination validates and normalizes pagination parameters.
// Page defaults to DefaultPage if less than 1.
// PageSize defaults to DefaultPageSize if less than 1, and is capped at maxPageSize.
// Page is clamped so that the offset stays within maxOffset.
func ValidatePagination(page, pageSize, maxPageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if maxPageSize > 0 && pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if pageSize > maxOffset {
		pageSize = maxOffset
	}
	if lastPage := maxOffset/pageSize + 1; page > lastPage {
		page = lastPage
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParsePagination parses page and page_size from the query string. The
// result is not capped; callers apply the cap for the actor's role.
func ParsePagination(c *gin.Context) Pagination {
	return Pagination{
		Page:     parseQueryInt(c, "page", constants.DefaultPage),
		PageSize: parseQueryInt(c, "page_size", constants.DefaultPageSize),
	}
}

// parseQueryInt parses a positive integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
