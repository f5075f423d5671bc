package stats

import (
	"time"

	"github.com/avdleeuw/animevault/internal/matcher"
	"github.com/avdleeuw/animevault/internal/models"
)

// Aggregate is the derived statistics record for one group, folded from
// every series transitively under it. Instances are immutable once
// published to the cache; a recompute builds a fresh one and swaps it in.
type Aggregate struct {
	GroupID    uint
	IsTopLevel bool

	SeriesCount               int
	EpisodeCount              int
	MissingEpisodeCount       int
	MissingEpisodeCountGroups int

	AirDateMin *time.Time
	AirDateMax *time.Time
	// EndDate is nil while any member series is still ongoing; an ongoing
	// series counts as later than every concrete end date.
	EndDate              *time.Time
	SeriesCreatedDate    *time.Time
	LatestEpisodeAirDate *time.Time
	EpisodeAddedDate     *time.Time

	// One finished or fully-collected series is enough to set these.
	HasFinishedAiring bool
	IsCurrentlyAiring bool
	IsComplete        bool

	// One series without the link is enough to clear these.
	HasTvDBLink          bool
	HasMALLink           bool
	HasMovieDBLink       bool
	HasTvDBOrMovieDBLink bool

	// AniDBRating on the 0..10 scale, from the group's rating column.
	AniDBRating float64

	// Vote averages on the 0..10 scale, nil when no votes of that kind exist.
	VoteOverall   *float64
	VotePermanent *float64
	VoteTemporary *float64

	Tags       matcher.Set
	CustomTags matcher.Set
	Titles     matcher.Set
	AnimeTypes matcher.Set

	// VideoQualities holds every release source any file was imported at;
	// VideoQualitiesFull only the sources covering every normal episode of
	// at least one member series.
	VideoQualities     matcher.Set
	VideoQualitiesFull matcher.Set

	AudioLanguages    matcher.Set
	SubtitleLanguages matcher.Set
}

// seriesData bundles everything one member series contributes to the fold.
// Entry may be nil when the metadata pipeline has not synced the title;
// collectors skip such series and log.
type seriesData struct {
	Series        *models.AnimeSeries
	Entry         *models.CatalogEntry
	Episodes      []models.Episode
	Files         []models.VideoFile
	Links         []models.EpisodeFileLink
	Languages     []models.LanguageStat
	Tags          []string
	CustomTags    []string
	Titles        []string
	ExternalLinks []models.ExternalLink
	Votes         []models.Vote
}

func (sd *seriesData) hasLink(provider models.ExternalProvider) bool {
	for i := range sd.ExternalLinks {
		if sd.ExternalLinks[i].Provider == provider {
			return true
		}
	}
	return false
}

// buildAggregate folds the member series of a group into a fresh Aggregate.
// It is a pure function of its inputs; now anchors the airing checks.
func buildAggregate(group *models.AnimeGroup, members []seriesData, now time.Time) *Aggregate {
	agg := &Aggregate{
		GroupID:              group.ID,
		IsTopLevel:           group.IsTopLevel(),
		AniDBRating:          float64(group.AniDBRating) / 100,
		HasTvDBLink:          true,
		HasMALLink:           true,
		HasMovieDBLink:       true,
		HasTvDBOrMovieDBLink: true,
		Tags:                 matcher.NewSet(),
		CustomTags:           matcher.NewSet(),
		Titles:               matcher.NewSet(),
		AnimeTypes:           matcher.NewSet(),
		VideoQualities:       matcher.NewSet(),
		VideoQualitiesFull:   matcher.NewSet(),
		AudioLanguages:       matcher.NewSet(),
		SubtitleLanguages:    matcher.NewSet(),
	}

	endDateKnown := true
	var endDate *time.Time

	var voteSum, voteCount int
	var votePermSum, votePermCount int
	var voteTempSum, voteTempCount int

	for i := range members {
		sd := &members[i]
		entry := sd.Entry

		agg.SeriesCount++
		agg.MissingEpisodeCount += sd.Series.MissingEpisodeCount
		agg.MissingEpisodeCountGroups += sd.Series.MissingEpisodeCountGroups
		agg.EpisodeCount += entry.EpisodeCountNormal

		created := sd.Series.CreatedAt
		if agg.SeriesCreatedDate == nil || created.Before(*agg.SeriesCreatedDate) {
			c := created
			agg.SeriesCreatedDate = &c
		}

		if entry.AirDate != nil {
			if agg.AirDateMin == nil || entry.AirDate.Before(*agg.AirDateMin) {
				agg.AirDateMin = entry.AirDate
			}
			if agg.AirDateMax == nil || entry.AirDate.After(*agg.AirDateMax) {
				agg.AirDateMax = entry.AirDate
			}
		}

		// An ongoing series makes the group's end date unknown, and it
		// stays unknown no matter what later series contribute.
		if entry.EndDate != nil && endDateKnown {
			if endDate == nil || entry.EndDate.After(*endDate) {
				endDate = entry.EndDate
			}
		} else {
			endDateKnown = false
			endDate = nil
		}

		// One series is enough for each of these.
		if entry.EndDate != nil && entry.EndDate.Before(now) {
			agg.HasFinishedAiring = true
			if sd.Series.MissingEpisodeCount == 0 && sd.Series.MissingEpisodeCountGroups == 0 {
				agg.IsComplete = true
			}
		}
		if entry.EndDate == nil || entry.EndDate.After(now) {
			agg.IsCurrentlyAiring = true
		}

		hasTvDB := sd.hasLink(models.ProviderTvDB)
		hasMovieDB := sd.hasLink(models.ProviderMovieDB)
		if !hasTvDB {
			agg.HasTvDBLink = false
		}
		if !hasMovieDB {
			agg.HasMovieDBLink = false
		}
		if !sd.hasLink(models.ProviderMAL) {
			agg.HasMALLink = false
		}
		if !hasTvDB && !hasMovieDB {
			agg.HasTvDBOrMovieDBLink = false
		}

		for _, tag := range sd.Tags {
			agg.Tags.Add(tag)
		}
		for _, tag := range sd.CustomTags {
			agg.CustomTags.Add(tag)
		}
		for _, title := range sd.Titles {
			agg.Titles.Add(title)
		}
		agg.AnimeTypes.Add(string(entry.Type))

		for j := range sd.Languages {
			lang := &sd.Languages[j]
			switch lang.Kind {
			case models.LanguageStatAudio:
				agg.AudioLanguages.Add(lang.Language)
			case models.LanguageStatSubtitle:
				agg.SubtitleLanguages.Add(lang.Language)
			}
		}

		anyQ, fullQ := qualityCoverage(sd, entry)
		agg.VideoQualities = agg.VideoQualities.Union(anyQ)
		agg.VideoQualitiesFull = agg.VideoQualitiesFull.Union(fullQ)

		for j := range sd.Files {
			added := sd.Files[j].CreatedAt
			if agg.EpisodeAddedDate == nil || added.After(*agg.EpisodeAddedDate) {
				a := added
				agg.EpisodeAddedDate = &a
			}
		}

		if latest := latestEpisodeAirDate(sd, now); latest != nil {
			if agg.LatestEpisodeAirDate == nil || latest.After(*agg.LatestEpisodeAirDate) {
				agg.LatestEpisodeAirDate = latest
			}
		}

		for j := range sd.Votes {
			v := &sd.Votes[j]
			voteSum += v.Value
			voteCount++
			switch v.Type {
			case models.VotePermanent:
				votePermSum += v.Value
				votePermCount++
			case models.VoteTemporary:
				voteTempSum += v.Value
				voteTempCount++
			}
		}
	}

	if endDateKnown {
		agg.EndDate = endDate
	}

	agg.VoteOverall = voteAverage(voteSum, voteCount)
	agg.VotePermanent = voteAverage(votePermSum, votePermCount)
	agg.VoteTemporary = voteAverage(voteTempSum, voteTempCount)

	return agg
}

// voteAverage converts a x100 sum into a 0..10 average, nil when empty.
func voteAverage(sum, count int) *float64 {
	if count == 0 {
		return nil
	}
	avg := float64(sum) / float64(count) / 100
	return &avg
}

// qualityCoverage computes the release sources a series is available at,
// and the subset covering every normal episode. Multiple files of the same
// source for one episode count once.
func qualityCoverage(sd *seriesData, entry *models.CatalogEntry) (anySet, fullSet matcher.Set) {
	anySet = matcher.NewSet()
	fullSet = matcher.NewSet()

	for i := range sd.Files {
		anySet.Add(sd.Files[i].Source)
	}

	if entry.EpisodeCountNormal == 0 {
		return anySet, fullSet
	}

	filesByHash := make(map[string]*models.VideoFile, len(sd.Files))
	for i := range sd.Files {
		filesByHash[sd.Files[i].Hash] = &sd.Files[i]
	}

	normalEpisodes := make(map[uint]struct{}, len(sd.Episodes))
	for i := range sd.Episodes {
		if sd.Episodes[i].Type == models.EpisodeTypeNormal {
			normalEpisodes[sd.Episodes[i].ID] = struct{}{}
		}
	}

	episodesPerQuality := make(map[string]map[uint]struct{})
	for i := range sd.Links {
		link := &sd.Links[i]
		if _, ok := normalEpisodes[link.EpisodeID]; !ok {
			continue
		}
		file, ok := filesByHash[link.FileHash]
		if !ok {
			continue
		}
		quality := matcher.Normalize(file.Source)
		if quality == "" {
			continue
		}
		if episodesPerQuality[quality] == nil {
			episodesPerQuality[quality] = make(map[uint]struct{})
		}
		episodesPerQuality[quality][link.EpisodeID] = struct{}{}
	}

	for quality, episodes := range episodesPerQuality {
		if len(episodes) >= entry.EpisodeCountNormal {
			fullSet.Add(quality)
		}
	}

	return anySet, fullSet
}

// latestEpisodeAirDate returns the air date of the newest normal episode
// that has already aired, or nil when none has.
func latestEpisodeAirDate(sd *seriesData, now time.Time) *time.Time {
	var latest *time.Time
	latestNumber := -1
	for i := range sd.Episodes {
		ep := &sd.Episodes[i]
		if ep.Type != models.EpisodeTypeNormal || ep.AirDate == nil || ep.AirDate.After(now) {
			continue
		}
		if ep.EpisodeNumber > latestNumber {
			latestNumber = ep.EpisodeNumber
			latest = ep.AirDate
		}
	}
	return latest
}
