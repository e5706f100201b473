package util

import (
	"io"
	"net/http"
	"strconv"
)

func HttpBody(r *http.Request) []byte {
	body := r.Body
	defer body.Close()

	bodyb, err := io.ReadAll(body)
	if err != nil {
		return nil
	}

	return bodyb
}

// Pagination reads ?page and ?limit off a request. Pages are 1-based,
// out-of-range values fall back to the defaults.
func Pagination(r *http.Request) (page, limit int) {
	page = 1
	limit = Config.PerPage

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p >= 1 {
		page = p
	}

	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l >= 1 {
		limit = l
	}
	if limit > Config.MaxPerPage {
		limit = Config.MaxPerPage
	}

	return page, limit
}

// Pages is the total page count at the given page size.
func Pages(total int64, limit int) int64 {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}
