package repository

import (
	"errors"
	"fmt"

	"github.com/avdleeuw/animevault/internal/models"
	"gorm.io/gorm"
)

// UserByID fetches one user. Returns (nil, nil) when the user does not exist.
func (r *Repository) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, queryError(err, fmt.Sprintf("failed to fetch user %d", id))
	}
	return &user, nil
}

// AllUsers returns every account.
func (r *Repository) AllUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, queryError(err, "failed to fetch users")
	}
	return users, nil
}

// FilterByID fetches one filter with its conditions and sort criteria.
// Returns (nil, nil) when the filter does not exist.
func (r *Repository) FilterByID(id uint) (*models.GroupFilter, error) {
	var filter models.GroupFilter
	err := r.db.
		Preload("Conditions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("SortCriteria", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&filter, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, queryError(err, fmt.Sprintf("failed to fetch filter %d", id))
	}
	return &filter, nil
}

// AllFilters returns every saved filter with conditions and sort criteria.
func (r *Repository) AllFilters() ([]models.GroupFilter, error) {
	var filters []models.GroupFilter
	err := r.db.
		Preload("Conditions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("SortCriteria", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Find(&filters).Error
	if err != nil {
		return nil, queryError(err, "failed to fetch filters")
	}
	return filters, nil
}
