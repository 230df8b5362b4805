package repository

import (
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page selects a 1-based page of rows.
type Page struct {
	Page  int
	Limit int
}

// Normalize clamps the page into a usable range.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p Page) offset() int {
	return (p.Page - 1) * p.Limit
}

func paginate(p Page) func(db *gorm.DB) *gorm.DB {
	p = p.Normalize()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.offset()).Limit(p.Limit)
	}
}

// orderBy resolves a caller-supplied sort key against a whitelist of columns,
// falling back to fallback for unknown keys.
func orderBy(columns map[string]string, sortBy, fallback, sortOrder, defaultOrder string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = fallback
	}
	dir := strings.ToLower(sortOrder)
	if dir != "asc" && dir != "desc" {
		dir = defaultOrder
	}
	return column + " " + strings.ToUpper(dir)
}
