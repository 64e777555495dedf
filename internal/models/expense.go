package models

import "time"

// Expense is a single spending record. The Category string is a cached
// projection of the category reference; reads resolve the name through
// CategoryID and never trust the stored copy.
type Expense struct {
	ID            string    `gorm:"primaryKey;size:36" json:"_id"`
	UserID        string    `gorm:"size:36;index;not null" json:"user_id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Date          time.Time `gorm:"index;not null" json:"date"`
	CategoryID    string    `gorm:"size:36;index" json:"category_id"`
	Category      string    `gorm:"size:64" json:"category"`
	PaymentMethod string    `gorm:"size:32" json:"payment_method"`
	Detail        string    `gorm:"size:500" json:"detail"`
	IsDeleted     bool      `gorm:"index;not null;default:false" json:"is_deleted"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
