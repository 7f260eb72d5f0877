package models

import "time"

// Portfolio is the join row recording that a user holds a stock. The
// composite primary key over (user_id, stock_id) is the authoritative
// guard against duplicate holdings: concurrent inserts for the same pair
// cannot both succeed, regardless of any earlier existence check.
type Portfolio struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	StockID   uint      `gorm:"primaryKey;autoIncrement:false" json:"stock_id"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Stock Stock `gorm:"foreignKey:StockID" json:"-"`
}
