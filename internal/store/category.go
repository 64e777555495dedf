package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/models"

	"gorm.io/gorm"
)

// Categories lists all categories ordered by name.
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// CategoryByID resolves a category by id.
func (s *Store) CategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var cat models.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&cat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("category by id: %w", err)
	}
	return &cat, nil
}

// CategoryName resolves a category id to its name, substituting the
// Uncategorized sentinel for dangling references.
func (s *Store) CategoryName(ctx context.Context, id string) string {
	cat, err := s.CategoryByID(ctx, id)
	if err != nil {
		return models.UncategorizedName
	}
	return cat.Name
}

// CreateCategory inserts a category.
func (s *Store) CreateCategory(ctx context.Context, cat *models.Category) error {
	if err := s.db.WithContext(ctx).Create(cat).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}
