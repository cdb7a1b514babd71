package httpx

import (
	"strconv"
	"strings"
)

// IDFromPath extracts a numeric path parameter with net/http's ServeMux.
// It expects the path to be exactly prefix followed by the id, e.g.
// "/books/42" with prefix "/books/".
func IDFromPath(path, prefix string) (int64, bool) {
	if !strings.HasPrefix(path, prefix) {
		return 0, false
	}
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// IDFromSubPath extracts a numeric id followed by a fixed suffix segment,
// e.g. "/loans/42/return" with prefix "/loans/" and suffix "/return".
func IDFromSubPath(path, prefix, suffix string) (int64, bool) {
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return 0, false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(path, prefix), suffix)
	if raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
