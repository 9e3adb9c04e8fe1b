package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	DefaultSize = 12
	MaxSize     = 100
)

// Query holds validated pagination parameters.
type Query struct {
	Page int
	Size int
}

// Offset is the row offset of the current page.
func (q Query) Offset() int { return (q.Page - 1) * q.Size }

// FromContext parses ?page and ?size, accepting ?limit as an alias for size
// since the "view all" links use it. Out-of-range values clamp instead of
// erroring.
func FromContext(c *gin.Context) Query {
	q := Query{Page: DefaultPage, Size: DefaultSize}

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		q.Page = v
	}
	size := c.Query("size")
	if size == "" {
		size = c.Query("limit")
	}
	if v, err := strconv.Atoi(size); err == nil && v > 0 {
		q.Size = v
	}
	if q.Size > MaxSize {
		q.Size = MaxSize
	}
	return q
}

// Paginate runs the count plus the page window of tx and fills the metadata
// of the paged envelope.
func Paginate[T any](tx *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := tx.Offset(q.Offset()).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	pages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   pages,
		Size:        q.Size,
		HasNextPage: q.Page < pages,
	}, nil
}
