package models

import "time"

// UncategorizedName is the label substituted whenever an expense or goal
// points at a category that no longer resolves.
const UncategorizedName = "Uncategorized"

// Category is a shared classification tag for expenses and budget goals.
// Categories are not user-owned; a default set is seeded at migration.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Type      string    `gorm:"size:32;index" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
