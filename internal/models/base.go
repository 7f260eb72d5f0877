// Package models defines the GORM entities persisted by the API.
package models

import "time"

// Base contains common columns for tables with a surrogate primary key.
// IDs are assigned by the database on insert and never change afterwards.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
