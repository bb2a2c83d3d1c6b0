package gormutil

import "gorm.io/gorm"

// LimitAndOffset limit句とoffset句を指定します。値が0以下の場合は指定されません。
func LimitAndOffset(limit, offset int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if offset > 0 {
			db = db.Offset(offset)
		}
		if limit > 0 {
			db = db.Limit(limit)
		}
		return db
	}
}

// Exists 行数が1行以上かどうかを返します
func Exists(db *gorm.DB) (bool, error) {
	var n int64
	err := db.Limit(1).Count(&n).Error
	return n > 0, err
}
