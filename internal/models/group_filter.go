package models

import "time"

// FilterBasePolicy decides what happens to a group no condition forces a
// decision on: an include filter admits it when every condition matches,
// an exclude filter only ever admits groups forced in by a group condition.
type FilterBasePolicy string

const (
	FilterBaseInclude FilterBasePolicy = "include"
	FilterBaseExclude FilterBasePolicy = "exclude"
)

// ConditionType names the group or user fact a condition tests.
type ConditionType string

const (
	ConditionAnimeGroup                ConditionType = "AnimeGroup"
	ConditionFavourite                 ConditionType = "Favourite"
	ConditionMissingEpisodes           ConditionType = "MissingEpisodes"
	ConditionMissingEpisodesCollecting ConditionType = "MissingEpisodesCollecting"
	ConditionHasWatchedEpisodes        ConditionType = "HasWatchedEpisodes"
	ConditionHasUnwatchedEpisodes      ConditionType = "HasUnwatchedEpisodes"
	ConditionAssignedTvDBInfo          ConditionType = "AssignedTvDBInfo"
	ConditionAssignedMALInfo           ConditionType = "AssignedMALInfo"
	ConditionAssignedMovieDBInfo       ConditionType = "AssignedMovieDBInfo"
	ConditionAssignedTvDBOrMovieDBInfo ConditionType = "AssignedTvDBOrMovieDBInfo"
	ConditionCompletedSeries           ConditionType = "CompletedSeries"
	ConditionFinishedAiring            ConditionType = "FinishedAiring"
	ConditionUserVoted                 ConditionType = "UserVoted"
	ConditionUserVotedAny              ConditionType = "UserVotedAny"
	ConditionAirDate                   ConditionType = "AirDate"
	ConditionLatestEpisodeAirDate      ConditionType = "LatestEpisodeAirDate"
	ConditionSeriesCreatedDate         ConditionType = "SeriesCreatedDate"
	ConditionEpisodeWatchedDate        ConditionType = "EpisodeWatchedDate"
	ConditionEpisodeAddedDate          ConditionType = "EpisodeAddedDate"
	ConditionEpisodeCount              ConditionType = "EpisodeCount"
	ConditionAniDBRating               ConditionType = "AniDBRating"
	ConditionUserRating                ConditionType = "UserRating"
	ConditionTag                       ConditionType = "Tag"
	ConditionCustomTags                ConditionType = "CustomTags"
	ConditionAnimeType                 ConditionType = "AnimeType"
	ConditionVideoQuality              ConditionType = "VideoQuality"
	ConditionAudioLanguage             ConditionType = "AudioLanguage"
	ConditionSubtitleLanguage          ConditionType = "SubtitleLanguage"
)

// ConditionOperator names how a condition compares its fact to its parameter.
type ConditionOperator string

const (
	OperatorInclude          ConditionOperator = "Include"
	OperatorExclude          ConditionOperator = "Exclude"
	OperatorEquals           ConditionOperator = "Equals"
	OperatorNotEquals        ConditionOperator = "NotEquals"
	OperatorGreaterThan      ConditionOperator = "GreaterThan"
	OperatorLessThan         ConditionOperator = "LessThan"
	OperatorLastXDays        ConditionOperator = "LastXDays"
	OperatorIn               ConditionOperator = "In"
	OperatorNotIn            ConditionOperator = "NotIn"
	OperatorInAllEpisodes    ConditionOperator = "InAllEpisodes"
	OperatorNotInAllEpisodes ConditionOperator = "NotInAllEpisodes"
)

// SortField names a group attribute the filter can order its members by.
type SortField string

const (
	SortAniDBRating           SortField = "AniDBRating"
	SortEpisodeAddedDate      SortField = "EpisodeAddedDate"
	SortEpisodeAirDate        SortField = "EpisodeAirDate"
	SortEpisodeWatchedDate    SortField = "EpisodeWatchedDate"
	SortGroupName             SortField = "GroupName"
	SortSortName              SortField = "SortName"
	SortMissingEpisodeCount   SortField = "MissingEpisodeCount"
	SortSeriesAddedDate       SortField = "SeriesAddedDate"
	SortSeriesCount           SortField = "SeriesCount"
	SortUnwatchedEpisodeCount SortField = "UnwatchedEpisodeCount"
	SortUserRating            SortField = "UserRating"
	SortYear                  SortField = "Year"
)

// GroupFilter is a saved, named view over top-level groups. Its conditions
// are a conjunction; its sort criteria are applied in position order.
// Filter ID 0 is reserved for the synthetic "All" filter and never stored.
type GroupFilter struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	Name       string           `gorm:"type:varchar(255);not null" json:"name"`
	BasePolicy FilterBasePolicy `gorm:"type:varchar(10);not null;default:'include'" json:"base_policy"`
	Locked     bool             `gorm:"not null;default:false" json:"locked"`
	CreatedAt  time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"not null" json:"updated_at"`

	// Associations
	Conditions   []GroupFilterCondition     `gorm:"foreignKey:FilterID" json:"conditions,omitempty"`
	SortCriteria []GroupFilterSortCriterion `gorm:"foreignKey:FilterID" json:"sort_criteria,omitempty"`
}

// TableName specifies the table name for GroupFilter
func (GroupFilter) TableName() string {
	return "group_filters"
}

// GroupFilterCondition is one clause of a filter's conjunction.
type GroupFilterCondition struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	FilterID  uint              `gorm:"not null;index:idx_group_filter_conditions_filter" json:"filter_id"`
	Type      ConditionType     `gorm:"type:varchar(50);not null" json:"type"`
	Operator  ConditionOperator `gorm:"type:varchar(30);not null" json:"operator"`
	Parameter string            `gorm:"type:text;not null;default:''" json:"parameter"`
	Position  int               `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for GroupFilterCondition
func (GroupFilterCondition) TableName() string {
	return "group_filter_conditions"
}

// GroupFilterSortCriterion is one ordering rule of a filter.
type GroupFilterSortCriterion struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FilterID   uint      `gorm:"not null;index:idx_group_filter_sort_criteria_filter" json:"filter_id"`
	Field      SortField `gorm:"type:varchar(30);not null" json:"field"`
	Descending bool      `gorm:"not null;default:false" json:"descending"`
	Position   int       `gorm:"not null;default:0" json:"position"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for GroupFilterSortCriterion
func (GroupFilterSortCriterion) TableName() string {
	return "group_filter_sort_criteria"
}
