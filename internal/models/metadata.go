package models

import "time"

// Tag is an AniDB-sourced tag shared across series.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tags_name" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// SeriesTag links a catalog entry to a tag.
type SeriesTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AniDBID   int       `gorm:"column:anidb_id;not null;index:idx_series_tags_anidb" json:"anidb_id"`
	TagID     uint      `gorm:"not null;index:idx_series_tags_tag" json:"tag_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for SeriesTag
func (SeriesTag) TableName() string {
	return "series_tags"
}

// CustomTag is a user-managed tag, independent of AniDB.
type CustomTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_custom_tags_name" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for CustomTag
func (CustomTag) TableName() string {
	return "custom_tags"
}

// SeriesCustomTag links a catalog entry to a custom tag.
type SeriesCustomTag struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AniDBID     int       `gorm:"column:anidb_id;not null;index:idx_series_custom_tags_anidb" json:"anidb_id"`
	CustomTagID uint      `gorm:"not null;index:idx_series_custom_tags_tag" json:"custom_tag_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for SeriesCustomTag
func (SeriesCustomTag) TableName() string {
	return "series_custom_tags"
}

// SeriesTitle is one of the (possibly many) titles of a catalog entry.
type SeriesTitle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AniDBID   int       `gorm:"column:anidb_id;not null;index:idx_series_titles_anidb" json:"anidb_id"`
	Title     string    `gorm:"type:varchar(512);not null" json:"title"`
	Language  string    `gorm:"type:varchar(50);not null;default:''" json:"language"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for SeriesTitle
func (SeriesTitle) TableName() string {
	return "series_titles"
}

// ExternalProvider identifies an external metadata catalog
type ExternalProvider string

const (
	ProviderTvDB    ExternalProvider = "tvdb"
	ProviderMovieDB ExternalProvider = "moviedb"
	ProviderMAL     ExternalProvider = "mal"
)

// ExternalLink cross-references a catalog entry to an external metadata
// provider. Presence or absence of links drives several filter conditions.
type ExternalLink struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	AniDBID    int              `gorm:"column:anidb_id;not null;index:idx_external_links_anidb" json:"anidb_id"`
	Provider   ExternalProvider `gorm:"type:varchar(20);not null;index:idx_external_links_provider" json:"provider"`
	ExternalID string           `gorm:"type:varchar(64);not null" json:"external_id"`
	CreatedAt  time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for ExternalLink
func (ExternalLink) TableName() string {
	return "external_links"
}

// VoteType distinguishes permanent votes (finished titles) from temporary
// ones (titles still airing when voted on)
type VoteType string

const (
	VotePermanent VoteType = "permanent"
	VoteTemporary VoteType = "temporary"
)

// Vote is a user's AniDB vote on a series. Values are stored x100, so a
// 9.5 vote is 950.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AniDBID   int       `gorm:"column:anidb_id;not null;index:idx_votes_anidb" json:"anidb_id"`
	Type      VoteType  `gorm:"type:varchar(10);not null" json:"type"`
	Value     int       `gorm:"not null" json:"value"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Vote
func (Vote) TableName() string {
	return "votes"
}
