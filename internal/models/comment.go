package models

// Comment is a user-authored note on a stock. The stock reference is
// nullable so a comment survives its stock being delisted; the stock and
// user references are immutable after creation, only title and content
// may change.
type Comment struct {
	Base
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`
	StockID *uint  `gorm:"index" json:"stock_id,omitempty"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`

	Stock *Stock `gorm:"foreignKey:StockID" json:"-"`
	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
