package models

// Stock represents a listed company. Symbols are stored as entered but
// compared case-insensitively throughout the API.
type Stock struct {
	Base
	Symbol      string  `gorm:"index;not null" json:"symbol"`
	CompanyName string  `gorm:"not null" json:"company_name"`
	Purchase    float64 `gorm:"not null" json:"purchase"`
	LastDiv     float64 `json:"last_div"`
	Industry    string  `json:"industry"`
	MarketCap   int64   `gorm:"type:bigint" json:"market_cap"`

	Comments []Comment   `gorm:"foreignKey:StockID" json:"comments,omitempty"`
	Holdings []Portfolio `gorm:"foreignKey:StockID" json:"-"`
}
