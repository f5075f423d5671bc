package repository

import (
	"errors"
	"fmt"

	"github.com/avdleeuw/animevault/internal/models"
	"gorm.io/gorm"
)

// SeriesByID fetches one series. Returns (nil, nil) when it does not exist.
func (r *Repository) SeriesByID(id uint) (*models.AnimeSeries, error) {
	var series models.AnimeSeries
	if err := r.db.First(&series, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, queryError(err, fmt.Sprintf("failed to fetch series %d", id))
	}
	return &series, nil
}

// SeriesByAniDBID fetches the series tracking a given AniDB title, if any.
func (r *Repository) SeriesByAniDBID(anidbID int) (*models.AnimeSeries, error) {
	var series models.AnimeSeries
	err := r.db.Where("anidb_id = ?", anidbID).First(&series).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, queryError(err, fmt.Sprintf("failed to fetch series for anidb %d", anidbID))
	}
	return &series, nil
}

// SeriesByGroup returns the series directly under one group.
func (r *Repository) SeriesByGroup(groupID uint) ([]models.AnimeSeries, error) {
	var series []models.AnimeSeries
	if err := r.db.Where("group_id = ?", groupID).Find(&series).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch series of group %d", groupID))
	}
	return series, nil
}

// AllSeries returns every tracked series.
func (r *Repository) AllSeries() ([]models.AnimeSeries, error) {
	var series []models.AnimeSeries
	if err := r.db.Find(&series).Error; err != nil {
		return nil, queryError(err, "failed to fetch series")
	}
	return series, nil
}

// SeriesUserRecordsByUser returns one user's watch records across all series.
func (r *Repository) SeriesUserRecordsByUser(userID uint) ([]models.SeriesUserRecord, error) {
	var records []models.SeriesUserRecord
	if err := r.db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch series user records for user %d", userID))
	}
	return records, nil
}

// AllSeriesUserRecords returns every per-user series record.
func (r *Repository) AllSeriesUserRecords() ([]models.SeriesUserRecord, error) {
	var records []models.SeriesUserRecord
	if err := r.db.Find(&records).Error; err != nil {
		return nil, queryError(err, "failed to fetch series user records")
	}
	return records, nil
}
