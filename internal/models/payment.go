package models

import "time"

// Payment is an incoming amount (salary, transfer, reimbursement). On the
// dashboard the trailing-week payment sum acts as the weekly budget.
type Payment struct {
	ID                string    `gorm:"primaryKey;size:36" json:"_id"`
	UserID            string    `gorm:"size:36;index;not null" json:"user_id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	Amount            float64   `gorm:"not null" json:"amount"`
	Date              time.Time `gorm:"index;not null" json:"date"`
	Payer             string    `gorm:"size:100" json:"payer"`
	PaymentType       string    `gorm:"size:32" json:"payment_type"`
	CustomPaymentType string    `gorm:"size:64" json:"custom_payment_type,omitempty"`
	Notes             string    `gorm:"size:500" json:"notes"`
	IsDeleted         bool      `gorm:"index;not null;default:false" json:"is_deleted"`
	CreatedAt         time.Time `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
