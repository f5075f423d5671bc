package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdleeuw/animevault/internal/models"
)

// finishedSeries builds a fully collected 10 episode series with every
// episode available at the given release source.
func finishedSeries(anidbID int, source string, airDate, endDate time.Time) seriesData {
	entry := &models.CatalogEntry{
		AniDBID:            anidbID,
		Type:               models.AnimeTypeTVSeries,
		EpisodeCountNormal: 10,
		AirDate:            &airDate,
		EndDate:            &endDate,
	}

	sd := seriesData{
		Series: &models.AnimeSeries{ID: uint(anidbID), AniDBID: anidbID, CreatedAt: airDate},
		Entry:  entry,
	}
	hash := source + "-file"
	sd.Files = append(sd.Files, models.VideoFile{
		Hash: hash, AniDBID: anidbID, Source: source, CreatedAt: endDate,
	})
	for ep := 1; ep <= 10; ep++ {
		air := airDate.AddDate(0, 0, ep*7)
		sd.Episodes = append(sd.Episodes, models.Episode{
			ID:            uint(anidbID*100 + ep),
			AniDBID:       anidbID,
			EpisodeNumber: ep,
			Type:          models.EpisodeTypeNormal,
			AirDate:       &air,
		})
		sd.Links = append(sd.Links, models.EpisodeFileLink{
			AniDBID:   anidbID,
			EpisodeID: uint(anidbID*100 + ep),
			FileHash:  hash,
		})
	}
	return sd
}

func ongoingSeries(anidbID int, airDate time.Time) seriesData {
	return seriesData{
		Series: &models.AnimeSeries{ID: uint(anidbID), AniDBID: anidbID, CreatedAt: airDate},
		Entry: &models.CatalogEntry{
			AniDBID:            anidbID,
			Type:               models.AnimeTypeTVSeries,
			EpisodeCountNormal: 12,
			AirDate:            &airDate,
		},
	}
}

func TestBuildAggregateMixedFinishedAndOngoing(t *testing.T) {
	now := date(2024, time.March, 1)
	group := &models.AnimeGroup{ID: 1}

	s1 := finishedSeries(100, "BD", date(2020, time.January, 1), date(2020, time.June, 1))
	s2 := ongoingSeries(200, date(2021, time.January, 1))

	agg := buildAggregate(group, []seriesData{s1, s2}, now)

	assert.Equal(t, 2, agg.SeriesCount)
	assert.Equal(t, 22, agg.EpisodeCount)

	require.NotNil(t, agg.AirDateMin)
	require.NotNil(t, agg.AirDateMax)
	assert.Equal(t, date(2020, time.January, 1), *agg.AirDateMin)
	assert.Equal(t, date(2021, time.January, 1), *agg.AirDateMax)

	// The ongoing member keeps the group end date unknown.
	assert.Nil(t, agg.EndDate)

	assert.True(t, agg.HasFinishedAiring)
	assert.True(t, agg.IsCurrentlyAiring)
	assert.True(t, agg.IsComplete)

	assert.True(t, agg.VideoQualities.Contains("BD"))
	assert.True(t, agg.VideoQualitiesFull.Contains("bd"))
}

func TestBuildAggregateEndDateStaysUnknown(t *testing.T) {
	now := date(2024, time.March, 1)
	group := &models.AnimeGroup{ID: 1}

	// Ongoing first, finished second: order must not matter.
	s1 := ongoingSeries(200, date(2021, time.January, 1))
	s2 := finishedSeries(100, "DVD", date(2020, time.January, 1), date(2020, time.June, 1))

	agg := buildAggregate(group, []seriesData{s1, s2}, now)
	assert.Nil(t, agg.EndDate)
}

func TestBuildAggregateEndDateIsLatest(t *testing.T) {
	now := date(2024, time.March, 1)
	group := &models.AnimeGroup{ID: 1}

	s1 := finishedSeries(100, "BD", date(2019, time.January, 1), date(2019, time.June, 1))
	s2 := finishedSeries(101, "BD", date(2020, time.January, 1), date(2020, time.June, 1))

	agg := buildAggregate(group, []seriesData{s1, s2}, now)
	require.NotNil(t, agg.EndDate)
	assert.Equal(t, date(2020, time.June, 1), *agg.EndDate)
	assert.False(t, agg.IsCurrentlyAiring)
}

func TestBuildAggregateCompletionNeedsNoMissingEpisodes(t *testing.T) {
	now := date(2024, time.March, 1)
	group := &models.AnimeGroup{ID: 1}

	sd := finishedSeries(100, "BD", date(2020, time.January, 1), date(2020, time.June, 1))
	sd.Series.MissingEpisodeCount = 2

	agg := buildAggregate(group, []seriesData{sd}, now)
	assert.True(t, agg.HasFinishedAiring)
	assert.False(t, agg.IsComplete)
	assert.Equal(t, 2, agg.MissingEpisodeCount)
}

func TestBuildAggregateLinkFlagsRequireEverySeries(t *testing.T) {
	now := date(2024, time.March, 1)
	group := &models.AnimeGroup{ID: 1}

	s1 := finishedSeries(100, "BD", date(2020, time.January, 1), date(2020, time.June, 1))
	s1.ExternalLinks = []models.ExternalLink{
		{AniDBID: 100, Provider: models.ProviderTvDB, ExternalID: "81797"},
		{AniDBID: 100, Provider: models.ProviderMAL, ExternalID: "21"},
	}
	s2 := finishedSeries(101, "BD", date(2021, time.January, 1), date(2021, time.June, 1))
	s2.ExternalLinks = []models.ExternalLink{
		{AniDBID: 101, Provider: models.ProviderMovieDB, ExternalID: "129"},
	}

	agg := buildAggregate(group, []seriesData{s1, s2}, now)

	// Any-series semantics would keep these true; every series must link.
	assert.False(t, agg.HasTvDBLink)
	assert.False(t, agg.HasMALLink)
	assert.False(t, agg.HasMovieDBLink)
	// Each series has at least one of TvDB or MovieDB.
	assert.True(t, agg.HasTvDBOrMovieDBLink)
}

func TestBuildAggregateEmptyGroup(t *testing.T) {
	now := date(2024, time.March, 1)
	group := &models.AnimeGroup{ID: 7, AniDBRating: 845}

	agg := buildAggregate(group, nil, now)

	assert.Equal(t, 0, agg.SeriesCount)
	assert.Nil(t, agg.AirDateMin)
	assert.Nil(t, agg.EndDate)
	assert.False(t, agg.HasFinishedAiring)
	assert.False(t, agg.IsCurrentlyAiring)
	assert.False(t, agg.IsComplete)
	assert.Nil(t, agg.VoteOverall)
	assert.InDelta(t, 8.45, agg.AniDBRating, 0.001)
	assert.Equal(t, 0, agg.Tags.Len())
}

func TestBuildAggregateVoteAverages(t *testing.T) {
	now := date(2024, time.March, 1)
	group := &models.AnimeGroup{ID: 1}

	sd := finishedSeries(100, "BD", date(2020, time.January, 1), date(2020, time.June, 1))
	sd.Votes = []models.Vote{
		{AniDBID: 100, Type: models.VotePermanent, Value: 900},
		{AniDBID: 100, Type: models.VoteTemporary, Value: 700},
	}

	agg := buildAggregate(group, []seriesData{sd}, now)

	require.NotNil(t, agg.VoteOverall)
	require.NotNil(t, agg.VotePermanent)
	require.NotNil(t, agg.VoteTemporary)
	assert.InDelta(t, 8.0, *agg.VoteOverall, 0.001)
	assert.InDelta(t, 9.0, *agg.VotePermanent, 0.001)
	assert.InDelta(t, 7.0, *agg.VoteTemporary, 0.001)
}

func TestQualityCoverageFullRequiresEveryNormalEpisode(t *testing.T) {
	sd := finishedSeries(100, "BD", date(2020, time.January, 1), date(2020, time.June, 1))

	// A second source covering only half the episodes.
	sd.Files = append(sd.Files, models.VideoFile{
		Hash: "www-file", AniDBID: 100, Source: "www", CreatedAt: date(2020, time.July, 1),
	})
	for ep := 1; ep <= 5; ep++ {
		sd.Links = append(sd.Links, models.EpisodeFileLink{
			AniDBID:   100,
			EpisodeID: uint(100*100 + ep),
			FileHash:  "www-file",
		})
	}

	anySet, fullSet := qualityCoverage(&sd, sd.Entry)

	assert.True(t, anySet.Contains("BD"))
	assert.True(t, anySet.Contains("www"))
	assert.True(t, fullSet.Contains("bd"))
	assert.False(t, fullSet.Contains("www"))
}

func TestQualityCoverageIgnoresSpecials(t *testing.T) {
	sd := finishedSeries(100, "BD", date(2020, time.January, 1), date(2020, time.June, 1))

	// A special linked to a source that covers nothing else.
	air := date(2020, time.July, 1)
	sd.Episodes = append(sd.Episodes, models.Episode{
		ID: 99999, AniDBID: 100, EpisodeNumber: 1,
		Type: models.EpisodeTypeSpecial, AirDate: &air,
	})
	sd.Files = append(sd.Files, models.VideoFile{
		Hash: "dvd-file", AniDBID: 100, Source: "DVD", CreatedAt: air,
	})
	sd.Links = append(sd.Links, models.EpisodeFileLink{
		AniDBID: 100, EpisodeID: 99999, FileHash: "dvd-file",
	})

	_, fullSet := qualityCoverage(&sd, sd.Entry)
	assert.False(t, fullSet.Contains("dvd"))
}

func TestLatestEpisodeAirDateSkipsUnairedAndSpecials(t *testing.T) {
	now := date(2020, time.February, 15)
	sd := finishedSeries(100, "BD", date(2020, time.January, 1), date(2020, time.June, 1))

	latest := latestEpisodeAirDate(&sd, now)
	require.NotNil(t, latest)
	// Episodes air weekly from Jan 8; by Feb 15 six have aired.
	assert.Equal(t, date(2020, time.January, 1).AddDate(0, 0, 6*7), *latest)
}

func TestBuildAggregateLanguagesAndTags(t *testing.T) {
	now := date(2024, time.March, 1)
	group := &models.AnimeGroup{ID: 1}

	sd := finishedSeries(100, "BD", date(2020, time.January, 1), date(2020, time.June, 1))
	sd.Tags = []string{"Action", "Comedy"}
	sd.CustomTags = []string{"Rewatch"}
	sd.Languages = []models.LanguageStat{
		{AniDBID: 100, Kind: models.LanguageStatAudio, Language: "japanese"},
		{AniDBID: 100, Kind: models.LanguageStatSubtitle, Language: "english"},
	}

	agg := buildAggregate(group, []seriesData{sd}, now)

	assert.True(t, agg.Tags.Contains("action"))
	assert.True(t, agg.CustomTags.Contains("rewatch"))
	assert.True(t, agg.AudioLanguages.Contains("japanese"))
	assert.True(t, agg.SubtitleLanguages.Contains("english"))
	assert.False(t, agg.AudioLanguages.Contains("english"))
	assert.True(t, agg.AnimeTypes.Contains("tv series"))
}
