package repository

import (
	"errors"
	"fmt"

	"github.com/avdleeuw/animevault/internal/models"
	"gorm.io/gorm"
)

// CatalogEntryByAniDBID fetches the catalog facts for one title. Returns
// (nil, nil) when the metadata pipeline has not synced the title yet.
func (r *Repository) CatalogEntryByAniDBID(anidbID int) (*models.CatalogEntry, error) {
	var entry models.CatalogEntry
	err := r.db.Where("anidb_id = ?", anidbID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, queryError(err, fmt.Sprintf("failed to fetch catalog entry %d", anidbID))
	}
	return &entry, nil
}

// AllCatalogEntries returns every synced catalog entry.
func (r *Repository) AllCatalogEntries() ([]models.CatalogEntry, error) {
	var entries []models.CatalogEntry
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, queryError(err, "failed to fetch catalog entries")
	}
	return entries, nil
}

// EpisodesByAniDBID returns every episode of one title.
func (r *Repository) EpisodesByAniDBID(anidbID int) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.Where("anidb_id = ?", anidbID).Find(&episodes).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch episodes of %d", anidbID))
	}
	return episodes, nil
}

// AllEpisodes returns every episode in the catalog.
func (r *Repository) AllEpisodes() ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.Find(&episodes).Error; err != nil {
		return nil, queryError(err, "failed to fetch episodes")
	}
	return episodes, nil
}

// VideoFilesByAniDBID returns every hashed file imported for one title.
func (r *Repository) VideoFilesByAniDBID(anidbID int) ([]models.VideoFile, error) {
	var files []models.VideoFile
	if err := r.db.Where("anidb_id = ?", anidbID).Find(&files).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch video files of %d", anidbID))
	}
	return files, nil
}

// VideoFileByHash fetches one file by its hash. Returns (nil, nil) when
// the hash is unknown.
func (r *Repository) VideoFileByHash(hash string) (*models.VideoFile, error) {
	var file models.VideoFile
	err := r.db.Where("hash = ?", hash).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, queryError(err, fmt.Sprintf("failed to fetch video file %s", hash))
	}
	return &file, nil
}

// AllVideoFiles returns every hashed file known to the import pipeline.
func (r *Repository) AllVideoFiles() ([]models.VideoFile, error) {
	var files []models.VideoFile
	if err := r.db.Find(&files).Error; err != nil {
		return nil, queryError(err, "failed to fetch video files")
	}
	return files, nil
}

// EpisodeFileLinksByAniDBID returns the file-to-episode links of one title.
func (r *Repository) EpisodeFileLinksByAniDBID(anidbID int) ([]models.EpisodeFileLink, error) {
	var links []models.EpisodeFileLink
	if err := r.db.Where("anidb_id = ?", anidbID).Find(&links).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch episode file links of %d", anidbID))
	}
	return links, nil
}

// AllEpisodeFileLinks returns every file-to-episode link.
func (r *Repository) AllEpisodeFileLinks() ([]models.EpisodeFileLink, error) {
	var links []models.EpisodeFileLink
	if err := r.db.Find(&links).Error; err != nil {
		return nil, queryError(err, "failed to fetch episode file links")
	}
	return links, nil
}

// LanguageStatsByAniDBID returns the audio and subtitle language rows of one title.
func (r *Repository) LanguageStatsByAniDBID(anidbID int) ([]models.LanguageStat, error) {
	var stats []models.LanguageStat
	if err := r.db.Where("anidb_id = ?", anidbID).Find(&stats).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch language stats of %d", anidbID))
	}
	return stats, nil
}

// AllLanguageStats returns every language projection row.
func (r *Repository) AllLanguageStats() ([]models.LanguageStat, error) {
	var stats []models.LanguageStat
	if err := r.db.Find(&stats).Error; err != nil {
		return nil, queryError(err, "failed to fetch language stats")
	}
	return stats, nil
}
