package models

import "time"

// AnimeSeries is a single tracked show, identified on AniDB and owned by
// exactly one group at a time.
type AnimeSeries struct {
	ID                        uint      `gorm:"primaryKey" json:"id"`
	GroupID                   uint      `gorm:"not null;index:idx_anime_series_group" json:"group_id"`
	AniDBID                   int       `gorm:"column:anidb_id;not null;uniqueIndex:idx_anime_series_anidb" json:"anidb_id"`
	MissingEpisodeCount       int       `gorm:"not null;default:0" json:"missing_episode_count"`
	MissingEpisodeCountGroups int       `gorm:"not null;default:0" json:"missing_episode_count_groups"`
	CreatedAt                 time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt                 time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Group *AnimeGroup `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

// TableName specifies the table name for AnimeSeries
func (AnimeSeries) TableName() string {
	return "anime_series"
}

// SeriesUserRecord tracks one user's watch state for one series.
type SeriesUserRecord struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	UserID                uint       `gorm:"not null;uniqueIndex:idx_series_user_records_unique" json:"user_id"`
	SeriesID              uint       `gorm:"not null;uniqueIndex:idx_series_user_records_unique" json:"series_id"`
	WatchedEpisodeCount   int        `gorm:"not null;default:0" json:"watched_episode_count"`
	UnwatchedEpisodeCount int        `gorm:"not null;default:0" json:"unwatched_episode_count"`
	WatchedDate           *time.Time `json:"watched_date,omitempty"`
	CreatedAt             time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for SeriesUserRecord
func (SeriesUserRecord) TableName() string {
	return "series_user_records"
}
