package rules

import (
	"sort"
	"strings"
	"time"

	"github.com/avdleeuw/animevault/internal/models"
)

// SortableGroup carries the per-group, per-user values a filter's sort
// criteria can order by.
type SortableGroup struct {
	GroupID               uint
	GroupName             string
	SortName              string
	AniDBRating           float64
	UserRating            float64
	SeriesCount           int
	MissingEpisodeCount   int
	UnwatchedEpisodeCount int
	EpisodeAddedDate      *time.Time
	EpisodeAirDate        *time.Time
	EpisodeWatchedDate    *time.Time
	SeriesAddedDate       *time.Time
	Year                  int
}

// SortGroups orders a filter's matching groups in place by its sort
// criteria, applied in position order. Without criteria the fallback is
// group name ascending. The sort is stable so later criteria only break
// ties left by earlier ones.
func SortGroups(groups []SortableGroup, criteria []models.GroupFilterSortCriterion) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := &groups[i], &groups[j]
		for k := range criteria {
			c := compareBy(a, b, criteria[k].Field)
			if criteria[k].Descending {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return compareStrings(a.GroupName, b.GroupName) < 0
	})
}

func compareBy(a, b *SortableGroup, field models.SortField) int {
	switch field {
	case models.SortGroupName:
		return compareStrings(a.GroupName, b.GroupName)
	case models.SortSortName:
		return compareStrings(a.SortName, b.SortName)
	case models.SortAniDBRating:
		return compareFloats(a.AniDBRating, b.AniDBRating)
	case models.SortUserRating:
		return compareFloats(a.UserRating, b.UserRating)
	case models.SortSeriesCount:
		return compareInts(a.SeriesCount, b.SeriesCount)
	case models.SortMissingEpisodeCount:
		return compareInts(a.MissingEpisodeCount, b.MissingEpisodeCount)
	case models.SortUnwatchedEpisodeCount:
		return compareInts(a.UnwatchedEpisodeCount, b.UnwatchedEpisodeCount)
	case models.SortEpisodeAddedDate:
		return compareDates(a.EpisodeAddedDate, b.EpisodeAddedDate)
	case models.SortEpisodeAirDate:
		return compareDates(a.EpisodeAirDate, b.EpisodeAirDate)
	case models.SortEpisodeWatchedDate:
		return compareDates(a.EpisodeWatchedDate, b.EpisodeWatchedDate)
	case models.SortSeriesAddedDate:
		return compareDates(a.SeriesAddedDate, b.SeriesAddedDate)
	case models.SortYear:
		return compareInts(a.Year, b.Year)
	}
	return 0
}

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareDates orders missing dates before every concrete one.
func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	}
	return 0
}
