package models

import "time"

// AnimeGroup is a node in the display hierarchy. Groups form a forest:
// a group without a parent is top-level, and only top-level groups
// participate in filter membership.
type AnimeGroup struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	ParentID             *uint      `gorm:"index:idx_anime_groups_parent" json:"parent_id,omitempty"`
	Name                 string     `gorm:"type:varchar(255);not null" json:"name"`
	SortName             string     `gorm:"type:varchar(255);not null" json:"sort_name"`
	Description          string     `gorm:"type:text" json:"description,omitempty"`
	DefaultSeriesID      *uint      `json:"default_series_id,omitempty"`
	AniDBRating          int        `gorm:"column:anidb_rating;not null;default:0" json:"anidb_rating"` // stored x100
	EpisodeAddedDate     *time.Time `json:"episode_added_date,omitempty"`
	LatestEpisodeAirDate *time.Time `json:"latest_episode_air_date,omitempty"`
	CreatedAt            time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	Parent *AnimeGroup   `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Series []AnimeSeries `gorm:"foreignKey:GroupID" json:"series,omitempty"`
}

// TableName specifies the table name for AnimeGroup
func (AnimeGroup) TableName() string {
	return "anime_groups"
}

// IsTopLevel reports whether the group has no parent.
func (g *AnimeGroup) IsTopLevel() bool {
	return g.ParentID == nil
}

// GroupUserRecord tracks one user's watch state for one group. It is
// created lazily on the first watch-status change and deleted with the
// user.
type GroupUserRecord struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	UserID                uint       `gorm:"not null;uniqueIndex:idx_group_user_records_unique" json:"user_id"`
	GroupID               uint       `gorm:"not null;uniqueIndex:idx_group_user_records_unique" json:"group_id"`
	IsFavorite            bool       `gorm:"not null;default:false" json:"is_favorite"`
	WatchedEpisodeCount   int        `gorm:"not null;default:0" json:"watched_episode_count"`
	UnwatchedEpisodeCount int        `gorm:"not null;default:0" json:"unwatched_episode_count"`
	WatchedDate           *time.Time `json:"watched_date,omitempty"`
	CreatedAt             time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for GroupUserRecord
func (GroupUserRecord) TableName() string {
	return "group_user_records"
}

// HasWatchedEpisodes reports whether the user watched anything in the group.
func (r *GroupUserRecord) HasWatchedEpisodes() bool {
	return r.WatchedEpisodeCount > 0
}

// HasUnwatchedEpisodes reports whether anything in the group is left unwatched.
func (r *GroupUserRecord) HasUnwatchedEpisodes() bool {
	return r.UnwatchedEpisodeCount > 0
}
