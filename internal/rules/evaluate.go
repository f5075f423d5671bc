package rules

import (
	"time"

	"github.com/avdleeuw/animevault/internal/matcher"
	"github.com/avdleeuw/animevault/internal/models"
)

// Matches decides whether one group belongs in a filter for one user. It is
// a pure function of its inputs: group facts come from the aggregate cache,
// user facts from the per-group watch record, and now anchors the LastXDays
// and fallback-date comparisons.
//
// Group conditions are checked first and short-circuit everything else: an
// Equals match forces the group in, a NotEquals match forces it out. An
// exclude-base filter admits nothing beyond those forced groups. Remaining
// conditions form a conjunction.
func Matches(filter *models.GroupFilter, group *GroupFacts, user *UserFacts, hiddenTags []string, now time.Time) bool {
	// Sub-groups never participate in filter membership.
	if !group.IsTopLevel {
		return false
	}

	if !AllowedGroup(hiddenTags, group.Tags) {
		return false
	}

	for i := range filter.Conditions {
		cond := &filter.Conditions[i]
		if cond.Type != models.ConditionAnimeGroup {
			continue
		}

		groupID := ParseIntParam(cond.Parameter)
		if groupID <= 0 {
			break
		}

		if cond.Operator == models.OperatorEquals && uint(groupID) == group.GroupID {
			return true
		}
		if cond.Operator == models.OperatorNotEquals && uint(groupID) == group.GroupID {
			return false
		}
	}

	if filter.BasePolicy == models.FilterBaseExclude {
		return false
	}

	for i := range filter.Conditions {
		if !conditionMatches(&filter.Conditions[i], group, user, now) {
			return false
		}
	}

	return true
}

func conditionMatches(cond *models.GroupFilterCondition, group *GroupFacts, user *UserFacts, now time.Time) bool {
	switch cond.Type {
	case models.ConditionFavourite:
		if !user.HasRecord {
			return false
		}
		return boolFact(cond.Operator, user.IsFavorite)

	case models.ConditionMissingEpisodes:
		return boolFact(cond.Operator, group.MissingEpisodes)

	case models.ConditionMissingEpisodesCollecting:
		return boolFact(cond.Operator, group.MissingEpisodesCollecting)

	case models.ConditionHasWatchedEpisodes:
		if !user.HasRecord {
			return false
		}
		return boolFact(cond.Operator, user.HasWatchedEpisodes)

	case models.ConditionHasUnwatchedEpisodes:
		if !user.HasRecord {
			return false
		}
		return boolFact(cond.Operator, user.HasUnwatchedEpisodes)

	case models.ConditionAssignedTvDBInfo:
		return boolFact(cond.Operator, group.HasTvDBLink)

	case models.ConditionAssignedMALInfo:
		return boolFact(cond.Operator, group.HasMALLink)

	case models.ConditionAssignedMovieDBInfo:
		return boolFact(cond.Operator, group.HasMovieDBLink)

	case models.ConditionAssignedTvDBOrMovieDBInfo:
		return boolFact(cond.Operator, group.HasTvDBOrMovieDBLink)

	case models.ConditionCompletedSeries:
		return boolFact(cond.Operator, group.IsComplete)

	case models.ConditionFinishedAiring:
		// The legacy exclude operator tests "currently airing" rather than
		// negating "finished airing"; saved filters depend on it.
		if cond.Operator == models.OperatorInclude && !group.HasFinishedAiring {
			return false
		}
		if cond.Operator == models.OperatorExclude && !group.IsCurrentlyAiring {
			return false
		}
		return true

	case models.ConditionUserVoted:
		return boolFact(cond.Operator, group.VotePermanent != nil)

	case models.ConditionUserVotedAny:
		return boolFact(cond.Operator, group.VoteOverall != nil)

	case models.ConditionAirDate:
		// Air date bounds use both ends of the range: a group is "newer
		// than" a date when its latest start is, and "older than" when its
		// earliest start is.
		if group.AirDateMin == nil || group.AirDateMax == nil {
			if cond.Operator == models.OperatorGreaterThan ||
				cond.Operator == models.OperatorLastXDays ||
				cond.Operator == models.OperatorLessThan {
				return false
			}
			return true
		}
		switch cond.Operator {
		case models.OperatorGreaterThan, models.OperatorLastXDays:
			return dateFact(cond.Operator, cond.Parameter, group.AirDateMax, now)
		case models.OperatorLessThan:
			return dateFact(cond.Operator, cond.Parameter, group.AirDateMin, now)
		}
		return true

	case models.ConditionLatestEpisodeAirDate:
		return dateFact(cond.Operator, cond.Parameter, group.LatestEpisodeAirDate, now)

	case models.ConditionSeriesCreatedDate:
		return dateFact(cond.Operator, cond.Parameter, group.SeriesCreatedDate, now)

	case models.ConditionEpisodeWatchedDate:
		if !user.HasRecord {
			return false
		}
		return dateFact(cond.Operator, cond.Parameter, user.WatchedDate, now)

	case models.ConditionEpisodeAddedDate:
		return dateFact(cond.Operator, cond.Parameter, group.EpisodeAddedDate, now)

	case models.ConditionEpisodeCount:
		threshold := ParseIntParam(cond.Parameter)
		if cond.Operator == models.OperatorGreaterThan && group.EpisodeCount < threshold {
			return false
		}
		if cond.Operator == models.OperatorLessThan && group.EpisodeCount > threshold {
			return false
		}
		return true

	case models.ConditionAniDBRating:
		threshold := ParseDecimalParam(cond.Parameter)
		if cond.Operator == models.OperatorGreaterThan && group.AniDBRating < threshold {
			return false
		}
		if cond.Operator == models.OperatorLessThan && group.AniDBRating > threshold {
			return false
		}
		return true

	case models.ConditionUserRating:
		if group.VoteOverall == nil {
			return false
		}
		threshold := ParseDecimalParam(cond.Parameter)
		if cond.Operator == models.OperatorGreaterThan && *group.VoteOverall < threshold {
			return false
		}
		if cond.Operator == models.OperatorLessThan && *group.VoteOverall > threshold {
			return false
		}
		return true

	case models.ConditionTag:
		return setFact(cond.Operator, group.Tags.ContainsAny(matcher.SplitList(cond.Parameter)))

	case models.ConditionCustomTags:
		return setFact(cond.Operator, group.CustomTags.ContainsAny(matcher.SplitList(cond.Parameter)))

	case models.ConditionAnimeType:
		return setFact(cond.Operator, group.AnimeTypes.ContainsAny(matcher.SplitList(cond.Parameter)))

	case models.ConditionVideoQuality:
		params := matcher.SplitList(cond.Parameter)
		switch cond.Operator {
		case models.OperatorIn:
			return group.VideoQualities.ContainsAny(params)
		case models.OperatorNotIn:
			return !group.VideoQualities.ContainsAny(params)
		case models.OperatorInAllEpisodes:
			return group.VideoQualitiesFull.ContainsAny(params)
		case models.OperatorNotInAllEpisodes:
			return !group.VideoQualitiesFull.ContainsAny(params)
		}
		return true

	case models.ConditionAudioLanguage:
		return setFact(cond.Operator, group.AudioLanguages.ContainsAny(matcher.SplitList(cond.Parameter)))

	case models.ConditionSubtitleLanguage:
		return setFact(cond.Operator, group.SubtitleLanguages.ContainsAny(matcher.SplitList(cond.Parameter)))
	}

	// Unknown condition types never veto; AnimeGroup was handled up front.
	return true
}

// boolFact applies Include/Exclude to a boolean fact. Other operators on a
// boolean condition are ignored.
func boolFact(op models.ConditionOperator, fact bool) bool {
	switch op {
	case models.OperatorInclude:
		return fact
	case models.OperatorExclude:
		return !fact
	}
	return true
}

// setFact applies In/NotIn to a set-membership result.
func setFact(op models.ConditionOperator, found bool) bool {
	switch op {
	case models.OperatorIn:
		return found
	case models.OperatorNotIn:
		return !found
	}
	return true
}

// dateFact compares an optional date fact against the condition parameter.
// A missing fact fails every threshold operator.
func dateFact(op models.ConditionOperator, param string, value *time.Time, now time.Time) bool {
	var filterDate time.Time
	if op == models.OperatorLastXDays {
		days := ParseDaysParam(param)
		filterDate = today(now).AddDate(0, 0, -days)
	} else {
		filterDate = ParseDateParam(param, now)
	}

	switch op {
	case models.OperatorGreaterThan, models.OperatorLastXDays:
		return value != nil && !value.Before(filterDate)
	case models.OperatorLessThan:
		return value != nil && !value.After(filterDate)
	}
	return true
}
