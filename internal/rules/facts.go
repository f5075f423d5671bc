package rules

import (
	"time"

	"github.com/avdleeuw/animevault/internal/matcher"
)

// GroupFacts is the evaluator's read-only view of one group: its aggregate
// statistics plus the identity bits conditions test. The stats cache builds
// one from its aggregate record; ad-hoc previews build one the same way.
type GroupFacts struct {
	GroupID    uint
	IsTopLevel bool

	MissingEpisodes           bool
	MissingEpisodesCollecting bool

	HasTvDBLink          bool
	HasMALLink           bool
	HasMovieDBLink       bool
	HasTvDBOrMovieDBLink bool

	IsComplete        bool
	HasFinishedAiring bool
	IsCurrentlyAiring bool

	// Vote averages on the 0..10 scale, nil when no votes exist.
	VoteOverall   *float64
	VotePermanent *float64

	// AniDB rating on the 0..10 scale.
	AniDBRating float64

	AirDateMin           *time.Time
	AirDateMax           *time.Time
	LatestEpisodeAirDate *time.Time
	SeriesCreatedDate    *time.Time
	EpisodeAddedDate     *time.Time

	EpisodeCount int

	Tags       matcher.Set
	CustomTags matcher.Set
	AnimeTypes matcher.Set

	// VideoQualities holds every quality any episode is available at;
	// VideoQualitiesFull only the qualities covering every normal episode.
	VideoQualities     matcher.Set
	VideoQualitiesFull matcher.Set

	AudioLanguages    matcher.Set
	SubtitleLanguages matcher.Set
}

// UserFacts is the evaluator's view of one user's watch record for the
// group. HasRecord is false when the user never touched the group, which
// fails every record-dependent condition.
type UserFacts struct {
	HasRecord            bool
	IsFavorite           bool
	HasWatchedEpisodes   bool
	HasUnwatchedEpisodes bool
	WatchedDate          *time.Time
}

// AllowedGroup reports whether a user with the given hidden tags may see a
// group at all. One hidden tag on the group is enough to block it.
func AllowedGroup(hiddenTags []string, groupTags matcher.Set) bool {
	for _, tag := range hiddenTags {
		if groupTags.Contains(tag) {
			return false
		}
	}
	return true
}
