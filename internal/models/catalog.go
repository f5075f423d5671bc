package models

import "time"

// AnimeType represents the kind of title a catalog entry describes
type AnimeType string

const (
	AnimeTypeTVSeries  AnimeType = "TV Series"
	AnimeTypeTVSpecial AnimeType = "TV Special"
	AnimeTypeMovie     AnimeType = "Movie"
	AnimeTypeOVA       AnimeType = "OVA"
	AnimeTypeWeb       AnimeType = "Web"
	AnimeTypeOther     AnimeType = "Other"
)

// EpisodeType classifies an episode within a series
type EpisodeType string

const (
	EpisodeTypeNormal  EpisodeType = "normal"
	EpisodeTypeSpecial EpisodeType = "special"
	EpisodeTypeCredits EpisodeType = "credits"
	EpisodeTypeTrailer EpisodeType = "trailer"
	EpisodeTypeOther   EpisodeType = "other"
)

// CatalogEntry holds the AniDB-sourced facts for a series. It is synced by
// an external metadata pipeline; the stats cache only reads it. A nil
// EndDate means the title is still airing.
type CatalogEntry struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	AniDBID              int        `gorm:"column:anidb_id;not null;uniqueIndex:idx_catalog_entries_anidb" json:"anidb_id"`
	MainTitle            string     `gorm:"type:varchar(255);not null" json:"main_title"`
	Type                 AnimeType  `gorm:"type:varchar(20);not null;default:'TV Series'" json:"type"`
	EpisodeCountNormal   int        `gorm:"not null;default:0" json:"episode_count_normal"`
	EpisodeCountSpecial  int        `gorm:"not null;default:0" json:"episode_count_special"`
	AirDate              *time.Time `json:"air_date,omitempty"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	Rating               int        `gorm:"not null;default:0" json:"rating"` // stored x100
	LatestEpisodeNumber  *int       `json:"latest_episode_number,omitempty"`
	LatestEpisodeAirDate *time.Time `json:"latest_episode_air_date,omitempty"`
	CreatedAt            time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for CatalogEntry
func (CatalogEntry) TableName() string {
	return "catalog_entries"
}

// HasAired reports whether the entry started airing on or before now.
func (e *CatalogEntry) HasAired(now time.Time) bool {
	return e.AirDate != nil && !e.AirDate.After(now)
}

// Episode is one episode of a catalog entry.
type Episode struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	AniDBID       int         `gorm:"column:anidb_id;not null;index:idx_episodes_anidb" json:"anidb_id"`
	EpisodeNumber int         `gorm:"not null" json:"episode_number"`
	Type          EpisodeType `gorm:"type:varchar(20);not null;default:'normal'" json:"type"`
	AirDate       *time.Time  `json:"air_date,omitempty"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Episode
func (Episode) TableName() string {
	return "episodes"
}

// VideoFile is a hashed local file known to the import pipeline. Source is
// the release tier the file came from (BD, DVD, HDTV, www, ...).
type VideoFile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Hash      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_video_files_hash" json:"hash"`
	AniDBID   int       `gorm:"column:anidb_id;not null;index:idx_video_files_anidb" json:"anidb_id"`
	Source    string    `gorm:"type:varchar(50);not null" json:"source"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for VideoFile
func (VideoFile) TableName() string {
	return "video_files"
}

// EpisodeFileLink cross-references a hashed file to the episode it
// contains. One file can cover several episodes and vice versa.
type EpisodeFileLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AniDBID   int       `gorm:"column:anidb_id;not null;index:idx_episode_file_links_anidb" json:"anidb_id"`
	EpisodeID uint      `gorm:"not null;index:idx_episode_file_links_episode" json:"episode_id"`
	FileHash  string    `gorm:"type:varchar(64);not null;index:idx_episode_file_links_hash" json:"file_hash"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for EpisodeFileLink
func (EpisodeFileLink) TableName() string {
	return "episode_file_links"
}

// LanguageStatKind separates audio from subtitle language projections
type LanguageStatKind string

const (
	LanguageStatAudio    LanguageStatKind = "audio"
	LanguageStatSubtitle LanguageStatKind = "subtitle"
)

// LanguageStat is a per-series language projection precomputed by the
// import pipeline from file metadata.
type LanguageStat struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	AniDBID   int              `gorm:"column:anidb_id;not null;index:idx_language_stats_anidb" json:"anidb_id"`
	Kind      LanguageStatKind `gorm:"type:varchar(10);not null" json:"kind"`
	Language  string           `gorm:"type:varchar(50);not null" json:"language"`
	CreatedAt time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time        `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for LanguageStat
func (LanguageStat) TableName() string {
	return "language_stats"
}
