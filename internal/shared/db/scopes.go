package db

import (
	"gorm.io/gorm"
)

// Active keeps rows flagged is_active.
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}

// CatalogOrder sorts catalog rows the way they are displayed: by
// sort_order, ties broken by insertion.
func CatalogOrder() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC").Order("id ASC")
	}
}

// ByCode matches a single catalog code.
func ByCode(code string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("code = ?", code)
	}
}
