package repository

import (
	"fmt"

	"github.com/avdleeuw/animevault/internal/models"
)

// TagNamesByAniDBID returns the AniDB tag names attached to one title.
func (r *Repository) TagNamesByAniDBID(anidbID int) ([]string, error) {
	var names []string
	err := r.db.Model(&models.SeriesTag{}).
		Joins("JOIN tags ON tags.id = series_tags.tag_id").
		Where("series_tags.anidb_id = ?", anidbID).
		Pluck("tags.name", &names).Error
	if err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch tags of %d", anidbID))
	}
	return names, nil
}

// AllTags returns every AniDB tag.
func (r *Repository) AllTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Find(&tags).Error; err != nil {
		return nil, queryError(err, "failed to fetch tags")
	}
	return tags, nil
}

// AllSeriesTags returns every title-to-tag link.
func (r *Repository) AllSeriesTags() ([]models.SeriesTag, error) {
	var links []models.SeriesTag
	if err := r.db.Find(&links).Error; err != nil {
		return nil, queryError(err, "failed to fetch series tags")
	}
	return links, nil
}

// CustomTagNamesByAniDBID returns the user-managed tag names attached to one title.
func (r *Repository) CustomTagNamesByAniDBID(anidbID int) ([]string, error) {
	var names []string
	err := r.db.Model(&models.SeriesCustomTag{}).
		Joins("JOIN custom_tags ON custom_tags.id = series_custom_tags.custom_tag_id").
		Where("series_custom_tags.anidb_id = ?", anidbID).
		Pluck("custom_tags.name", &names).Error
	if err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch custom tags of %d", anidbID))
	}
	return names, nil
}

// AllCustomTags returns every user-managed tag.
func (r *Repository) AllCustomTags() ([]models.CustomTag, error) {
	var tags []models.CustomTag
	if err := r.db.Find(&tags).Error; err != nil {
		return nil, queryError(err, "failed to fetch custom tags")
	}
	return tags, nil
}

// AllSeriesCustomTags returns every title-to-custom-tag link.
func (r *Repository) AllSeriesCustomTags() ([]models.SeriesCustomTag, error) {
	var links []models.SeriesCustomTag
	if err := r.db.Find(&links).Error; err != nil {
		return nil, queryError(err, "failed to fetch series custom tags")
	}
	return links, nil
}

// TitlesByAniDBID returns every known title string of one entry.
func (r *Repository) TitlesByAniDBID(anidbID int) ([]models.SeriesTitle, error) {
	var titles []models.SeriesTitle
	if err := r.db.Where("anidb_id = ?", anidbID).Find(&titles).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch titles of %d", anidbID))
	}
	return titles, nil
}

// AllSeriesTitles returns every title string in the catalog.
func (r *Repository) AllSeriesTitles() ([]models.SeriesTitle, error) {
	var titles []models.SeriesTitle
	if err := r.db.Find(&titles).Error; err != nil {
		return nil, queryError(err, "failed to fetch series titles")
	}
	return titles, nil
}

// ExternalLinksByAniDBID returns the provider cross-references of one title.
func (r *Repository) ExternalLinksByAniDBID(anidbID int) ([]models.ExternalLink, error) {
	var links []models.ExternalLink
	if err := r.db.Where("anidb_id = ?", anidbID).Find(&links).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch external links of %d", anidbID))
	}
	return links, nil
}

// AllExternalLinks returns every provider cross-reference.
func (r *Repository) AllExternalLinks() ([]models.ExternalLink, error) {
	var links []models.ExternalLink
	if err := r.db.Find(&links).Error; err != nil {
		return nil, queryError(err, "failed to fetch external links")
	}
	return links, nil
}

// VotesByAniDBID returns the votes cast on one title.
func (r *Repository) VotesByAniDBID(anidbID int) ([]models.Vote, error) {
	var votes []models.Vote
	if err := r.db.Where("anidb_id = ?", anidbID).Find(&votes).Error; err != nil {
		return nil, queryError(err, fmt.Sprintf("failed to fetch votes of %d", anidbID))
	}
	return votes, nil
}

// AllVotes returns every vote.
func (r *Repository) AllVotes() ([]models.Vote, error) {
	var votes []models.Vote
	if err := r.db.Find(&votes).Error; err != nil {
		return nil, queryError(err, "failed to fetch votes")
	}
	return votes, nil
}
