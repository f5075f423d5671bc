package stats

import (
	"github.com/avdleeuw/animevault/internal/models"
	"github.com/avdleeuw/animevault/internal/rules"
)

// groupFacts projects a published aggregate into the evaluator's view.
func groupFacts(agg *Aggregate) *rules.GroupFacts {
	return &rules.GroupFacts{
		GroupID:                   agg.GroupID,
		IsTopLevel:                agg.IsTopLevel,
		MissingEpisodes:           agg.MissingEpisodeCount > 0,
		MissingEpisodesCollecting: agg.MissingEpisodeCountGroups > 0,
		HasTvDBLink:               agg.HasTvDBLink,
		HasMALLink:                agg.HasMALLink,
		HasMovieDBLink:            agg.HasMovieDBLink,
		HasTvDBOrMovieDBLink:      agg.HasTvDBOrMovieDBLink,
		IsComplete:                agg.IsComplete,
		HasFinishedAiring:         agg.HasFinishedAiring,
		IsCurrentlyAiring:         agg.IsCurrentlyAiring,
		VoteOverall:               agg.VoteOverall,
		VotePermanent:             agg.VotePermanent,
		AniDBRating:               agg.AniDBRating,
		AirDateMin:                agg.AirDateMin,
		AirDateMax:                agg.AirDateMax,
		LatestEpisodeAirDate:      agg.LatestEpisodeAirDate,
		SeriesCreatedDate:         agg.SeriesCreatedDate,
		EpisodeAddedDate:          agg.EpisodeAddedDate,
		EpisodeCount:              agg.EpisodeCount,
		Tags:                      agg.Tags,
		CustomTags:                agg.CustomTags,
		AnimeTypes:                agg.AnimeTypes,
		VideoQualities:            agg.VideoQualities,
		VideoQualitiesFull:        agg.VideoQualitiesFull,
		AudioLanguages:            agg.AudioLanguages,
		SubtitleLanguages:         agg.SubtitleLanguages,
	}
}

// userFacts projects an optional per-group watch record. A nil record
// yields HasRecord false, which fails record-dependent conditions.
func userFacts(rec *models.GroupUserRecord) *rules.UserFacts {
	if rec == nil {
		return &rules.UserFacts{}
	}
	return &rules.UserFacts{
		HasRecord:            true,
		IsFavorite:           rec.IsFavorite,
		HasWatchedEpisodes:   rec.HasWatchedEpisodes(),
		HasUnwatchedEpisodes: rec.HasUnwatchedEpisodes(),
		WatchedDate:          rec.WatchedDate,
	}
}
