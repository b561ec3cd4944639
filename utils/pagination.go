package utils

import (
	"server/config"
	"strconv"

	"gorm.io/gorm"
)

// Page is one fixed-size slice of an ordered collection plus the metadata
// the templates need to link to the neighbouring slices.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

func (p Page[T]) NextPage() int { return p.Number + 1 }
func (p Page[T]) PrevPage() int { return p.Number - 1 }

// Paginate runs the given query twice - once to count, once to fetch the
// requested page. pageParam comes straight from the "page" query parameter:
// anything that is not a number means the first page, out-of-range numbers
// clamp to the nearest valid page.
func Paginate[T any](query *gorm.DB, pageParam string) (page Page[T], err error) {
	size := config.POSTS_PER_PAGE
	var total int64
	if err = query.Count(&total).Error; err != nil {
		return
	}
	page.TotalPages = int((total + int64(size) - 1) / int64(size))
	if page.TotalPages < 1 {
		page.TotalPages = 1
	}
	page.Number, err = strconv.Atoi(pageParam)
	if err != nil || page.Number < 1 {
		page.Number = 1
		err = nil
	}
	if page.Number > page.TotalPages {
		page.Number = page.TotalPages
	}
	page.HasNext = page.Number < page.TotalPages
	page.HasPrev = page.Number > 1
	page.Items = []T{}
	err = query.Offset((page.Number - 1) * size).Limit(size).Find(&page.Items).Error
	return
}
