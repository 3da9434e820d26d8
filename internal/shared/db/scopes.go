package db

import "gorm.io/gorm"

// Paginate applies offset/limit. A non-positive limit leaves the query
// unbounded.
func Paginate(offset, limit int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return tx
		}
		if offset < 0 {
			offset = 0
		}
		return tx.Offset(offset).Limit(limit)
	}
}
