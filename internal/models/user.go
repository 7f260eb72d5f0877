package models

// User represents a registered account. Users are referenced by comments
// and portfolio holdings but never embedded in their write paths.
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Comments []Comment   `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Holdings []Portfolio `gorm:"foreignKey:UserID" json:"holdings,omitempty"`
}
