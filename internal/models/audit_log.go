package models

// AuditLog records mutating operations (stock, comment, and portfolio
// writes) for traceability. Rows are append-only.
type AuditLog struct {
	Base
	UserID       uint   `gorm:"index" json:"user_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   uint   `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
