package repository

import (
	"errors"
	"fmt"

	"github.com/avdleeuw/animevault/internal/models"
	"gorm.io/gorm"
)

// GroupByID fetches one group. Returns (nil, nil) when the group does not exist.
func (r *Repository) GroupByID(id uint) (*models.AnimeGroup, error) {
	var group models.AnimeGroup
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, queryError(err, fmt.Sprintf("failed to fetch group %d", id))
	}
	return &group, nil
}

// AllGroups returns every group in the hierarchy.
func (r *Repository) AllGroups() ([]models.AnimeGroup, error) {
	var groups []models.AnimeGroup
	if err := r.db.Find(&groups).Error; err != nil {
		return nil, queryError(err, "failed to fetch groups")
	}
	return groups, nil
}

// ChildGroups returns the direct children of a group.
func (r *Repository) ChildGroups(parentID uint) ([]models.AnimeGroup, error) {
	var groups []models.AnimeGroup
	if err := r.db.Where("parent_id = ?", parentID).Find(&groups).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch children of group %d", parentID))
	}
	return groups, nil
}

// TopLevelGroups returns every group without a parent.
func (r *Repository) TopLevelGroups() ([]models.AnimeGroup, error) {
	var groups []models.AnimeGroup
	if err := r.db.Where("parent_id IS NULL").Find(&groups).Error; err != nil {
		return nil, queryError(err, "failed to fetch top-level groups")
	}
	return groups, nil
}

// SaveGroup persists changes to a group's cached date columns.
func (r *Repository) SaveGroup(group *models.AnimeGroup) error {
	if err := r.db.Save(group).Error; err != nil {
		return queryError(err, fmt.Sprintf("failed to save group %d", group.ID))
	}
	return nil
}

// GroupUserRecord fetches one user's record for one group. Returns
// (nil, nil) when the user never touched the group.
func (r *Repository) GroupUserRecord(userID, groupID uint) (*models.GroupUserRecord, error) {
	var record models.GroupUserRecord
	err := r.db.Where("user_id = ? AND group_id = ?", userID, groupID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, queryError(err, "failed to fetch group user record")
	}
	return &record, nil
}

// AllGroupUserRecords returns every per-user group record.
func (r *Repository) AllGroupUserRecords() ([]models.GroupUserRecord, error) {
	var records []models.GroupUserRecord
	if err := r.db.Find(&records).Error; err != nil {
		return nil, queryError(err, "failed to fetch group user records")
	}
	return records, nil
}
