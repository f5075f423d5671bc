package api

import (
	"time"

	"github.com/avdleeuw/animevault/internal/models"
	"github.com/avdleeuw/animevault/internal/stats"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// FilterResponse represents a saved group filter
type FilterResponse struct {
	ID           uint                    `json:"id"`
	Name         string                  `json:"name"`
	BasePolicy   models.FilterBasePolicy `json:"base_policy"`
	Locked       bool                    `json:"locked"`
	Conditions   []ConditionResponse     `json:"conditions"`
	SortCriteria []SortCriterionResponse `json:"sort_criteria"`
}

// ConditionResponse represents one filter condition
type ConditionResponse struct {
	Type      models.ConditionType     `json:"type"`
	Operator  models.ConditionOperator `json:"operator"`
	Parameter string                   `json:"parameter"`
	Position  int                      `json:"position"`
}

// SortCriterionResponse represents one filter ordering rule
type SortCriterionResponse struct {
	Field      models.SortField `json:"field"`
	Descending bool             `json:"descending"`
	Position   int              `json:"position"`
}

// MembershipResponse lists the groups a filter admits for one user
type MembershipResponse struct {
	FilterID uint   `json:"filter_id"`
	UserID   uint   `json:"user_id"`
	GroupIDs []uint `json:"group_ids"`
}

// GroupStatsResponse projects one group's cached aggregate
type GroupStatsResponse struct {
	GroupID    uint `json:"group_id"`
	IsTopLevel bool `json:"is_top_level"`

	SeriesCount               int `json:"series_count"`
	EpisodeCount              int `json:"episode_count"`
	MissingEpisodeCount       int `json:"missing_episode_count"`
	MissingEpisodeCountGroups int `json:"missing_episode_count_groups"`

	AirDateMin           *time.Time `json:"air_date_min,omitempty"`
	AirDateMax           *time.Time `json:"air_date_max,omitempty"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	LatestEpisodeAirDate *time.Time `json:"latest_episode_air_date,omitempty"`
	EpisodeAddedDate     *time.Time `json:"episode_added_date,omitempty"`

	HasFinishedAiring bool `json:"has_finished_airing"`
	IsCurrentlyAiring bool `json:"is_currently_airing"`
	IsComplete        bool `json:"is_complete"`

	AniDBRating   float64  `json:"anidb_rating"`
	VoteOverall   *float64 `json:"vote_overall,omitempty"`
	VotePermanent *float64 `json:"vote_permanent,omitempty"`

	Tags               []string `json:"tags"`
	CustomTags         []string `json:"custom_tags"`
	AnimeTypes         []string `json:"anime_types"`
	VideoQualities     []string `json:"video_qualities"`
	VideoQualitiesFull []string `json:"video_qualities_full"`
	AudioLanguages     []string `json:"audio_languages"`
	SubtitleLanguages  []string `json:"subtitle_languages"`
}

// PreviewRequest asks for an unsaved filter to be evaluated against one
// group for one user
type PreviewRequest struct {
	GroupID    uint                    `json:"group_id" binding:"required"`
	UserID     uint                    `json:"user_id" binding:"required"`
	BasePolicy models.FilterBasePolicy `json:"base_policy"`
	Conditions []ConditionRequest      `json:"conditions"`
}

// ConditionRequest is one condition of a preview filter
type ConditionRequest struct {
	Type      models.ConditionType     `json:"type" binding:"required"`
	Operator  models.ConditionOperator `json:"operator" binding:"required"`
	Parameter string                   `json:"parameter"`
}

// PreviewResponse reports the preview outcome
type PreviewResponse struct {
	GroupID uint `json:"group_id"`
	UserID  uint `json:"user_id"`
	Matches bool `json:"matches"`
}

// RefreshRequest queues a debounced recompute for one entity
type RefreshRequest struct {
	Kind     string `json:"kind" binding:"required"` // group, series, file, catalog_entry
	GroupID  uint   `json:"group_id,omitempty"`
	SeriesID uint   `json:"series_id,omitempty"`
	Hash     string `json:"hash,omitempty"`
	AniDBID  int    `json:"anidb_id,omitempty"`
}

func filterToResponse(f *models.GroupFilter) FilterResponse {
	resp := FilterResponse{
		ID:           f.ID,
		Name:         f.Name,
		BasePolicy:   f.BasePolicy,
		Locked:       f.Locked,
		Conditions:   make([]ConditionResponse, 0, len(f.Conditions)),
		SortCriteria: make([]SortCriterionResponse, 0, len(f.SortCriteria)),
	}
	for i := range f.Conditions {
		c := &f.Conditions[i]
		resp.Conditions = append(resp.Conditions, ConditionResponse{
			Type: c.Type, Operator: c.Operator, Parameter: c.Parameter, Position: c.Position,
		})
	}
	for i := range f.SortCriteria {
		sc := &f.SortCriteria[i]
		resp.SortCriteria = append(resp.SortCriteria, SortCriterionResponse{
			Field: sc.Field, Descending: sc.Descending, Position: sc.Position,
		})
	}
	return resp
}

func aggregateToResponse(agg *stats.Aggregate) GroupStatsResponse {
	return GroupStatsResponse{
		GroupID:                   agg.GroupID,
		IsTopLevel:                agg.IsTopLevel,
		SeriesCount:               agg.SeriesCount,
		EpisodeCount:              agg.EpisodeCount,
		MissingEpisodeCount:       agg.MissingEpisodeCount,
		MissingEpisodeCountGroups: agg.MissingEpisodeCountGroups,
		AirDateMin:                agg.AirDateMin,
		AirDateMax:                agg.AirDateMax,
		EndDate:                   agg.EndDate,
		LatestEpisodeAirDate:      agg.LatestEpisodeAirDate,
		EpisodeAddedDate:          agg.EpisodeAddedDate,
		HasFinishedAiring:         agg.HasFinishedAiring,
		IsCurrentlyAiring:         agg.IsCurrentlyAiring,
		IsComplete:                agg.IsComplete,
		AniDBRating:               agg.AniDBRating,
		VoteOverall:               agg.VoteOverall,
		VotePermanent:             agg.VotePermanent,
		Tags:                      agg.Tags.Values(),
		CustomTags:                agg.CustomTags.Values(),
		AnimeTypes:                agg.AnimeTypes.Values(),
		VideoQualities:            agg.VideoQualities.Values(),
		VideoQualitiesFull:        agg.VideoQualitiesFull.Values(),
		AudioLanguages:            agg.AudioLanguages.Values(),
		SubtitleLanguages:         agg.SubtitleLanguages.Values(),
	}
}
