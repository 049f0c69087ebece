// Package pagination provides page requests and page-metadata arithmetic for offset-paged queries.
package pagination

import (
	"fmt"
	"math"
	"strings"
)

// MaxOffset is the largest row offset the store accepts; offsets travel as 32-bit integers.
const MaxOffset = math.MaxInt32

// SortOrder is one ORDER BY term requested by the caller.
type SortOrder struct {
	Property string
	Desc     bool
}

// String renders the order in the "property,asc|desc" convention.
func (s SortOrder) String() string {
	if s.Desc {
		return s.Property + ",desc"
	}
	return s.Property + ",asc"
}

// PageRequest is a zero-based page request.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset is the number of rows to skip, saturated at MaxOffset.
func (r PageRequest) Offset() int {
	if r.Page <= 0 || r.Size <= 0 {
		return 0
	}
	if r.Overflows() {
		return MaxOffset
	}
	return r.Page * r.Size
}

// Overflows reports a page whose first row lies past MaxOffset. Such a page is always empty.
func (r PageRequest) Overflows() bool {
	if r.Page <= 0 || r.Size <= 0 {
		return false
	}
	return r.Page > MaxOffset/r.Size
}

// Limit is the maximum number of rows in the page.
func (r PageRequest) Limit() int {
	return r.Size
}

// Config holds page size limits.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultConfig matches the defaults of the HTTP layer.
func DefaultConfig() Config {
	return Config{DefaultPageSize: 10, MaxPageSize: 100}
}

// Normalize applies the default size when none was given and caps it at the maximum.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Size < 1 {
		r.Size = cfg.DefaultPageSize
	}
	if cfg.MaxPageSize > 0 && r.Size > cfg.MaxPageSize {
		r.Size = cfg.MaxPageSize
	}
}

// TotalPages is ceil(total/size). Zero when there is nothing to page or size is not positive.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}

// OutOfRange reports a request for a page past the last one of a non-empty result.
func OutOfRange(page, totalPages int, total int64) bool {
	return page >= totalPages && total > 0
}

// ParseSort parses one or more "property[,asc|desc]" values.
// A value may also carry several properties sharing a trailing direction ("nombre,apellido,desc").
func ParseSort(values ...string) ([]SortOrder, error) {
	var out []SortOrder
	for _, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.Split(raw, ",")
		desc := false
		last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
		switch last {
		case "asc":
			parts = parts[:len(parts)-1]
		case "desc":
			desc = true
			parts = parts[:len(parts)-1]
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("sort sin propiedad: %q", raw)
		}
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return nil, fmt.Errorf("sort con propiedad vacía: %q", raw)
			}
			out = append(out, SortOrder{Property: p, Desc: desc})
		}
	}
	return out, nil
}
