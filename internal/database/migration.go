package database

import (
	"fmt"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Expense{},
		&models.Payment{},
		&models.BudgetGoal{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

var defaultCategories = []models.Category{
	{Name: "Food", Type: "expense"},
	{Name: "Groceries", Type: "expense"},
	{Name: "Transport", Type: "expense"},
	{Name: "Housing", Type: "expense"},
	{Name: "Utilities", Type: "expense"},
	{Name: "Health", Type: "expense"},
	{Name: "Entertainment", Type: "expense"},
	{Name: "Shopping", Type: "expense"},
	{Name: "Education", Type: "expense"},
	{Name: "Other", Type: "expense"},
}

// SeedCategories inserts the default category set if the table is empty.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range defaultCategories {
		defaultCategories[i].ID = uuid.NewString()
	}
	if err := db.Create(&defaultCategories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}
