package stats

import (
	"github.com/avdleeuw/animevault/internal/models"
	"github.com/avdleeuw/animevault/internal/rules"
)

// AllFilterID is the reserved ID of the synthetic unconditional filter
// every user gets. It is never stored.
const AllFilterID uint = 0

func syntheticAllFilter() *models.GroupFilter {
	return &models.GroupFilter{
		ID:         AllFilterID,
		Name:       "All",
		BasePolicy: models.FilterBaseInclude,
		Locked:     true,
	}
}

// resolveFilter fetches a stored filter, or the synthetic "All" filter
// for the reserved ID. Returns (nil, nil) for an unknown stored filter.
func (c *Cache) resolveFilter(filterID uint) (*models.GroupFilter, error) {
	if filterID == AllFilterID {
		return syntheticAllFilter(), nil
	}
	return c.store.FilterByID(filterID)
}

// RecomputeForFilter re-evaluates one filter against all top-level groups
// for every user, replacing that filter's membership set per user.
func (c *Cache) RecomputeForFilter(filterID uint) error {
	seq := c.nextSeq()

	filter, err := c.resolveFilter(filterID)
	if err != nil {
		return err
	}
	if filter == nil {
		c.log.WithFields(map[string]interface{}{"filter_id": filterID}).
			Warn("skipping membership recompute for unknown filter")
		return nil
	}

	users, err := c.store.AllUsers()
	if err != nil {
		return err
	}
	groups, err := c.store.TopLevelGroups()
	if err != nil {
		return err
	}
	records, err := c.groupRecordsByUser()
	if err != nil {
		return err
	}

	for i := range users {
		user := &users[i]
		set := c.evaluateFilterForUser(filter, user, groups, records[user.ID])
		c.publishMembership(seq, membershipKey{UserID: user.ID, FilterID: filter.ID}, set)
	}

	return nil
}

// RecomputeForUser re-evaluates every filter, including the synthetic
// "All" filter, against all top-level groups for one user.
func (c *Cache) RecomputeForUser(userID uint) error {
	seq := c.nextSeq()

	user, err := c.store.UserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		c.log.WithFields(map[string]interface{}{"user_id": userID}).
			Warn("skipping membership recompute for unknown user")
		return nil
	}

	filters, err := c.allFiltersWithSynthetic()
	if err != nil {
		return err
	}
	groups, err := c.store.TopLevelGroups()
	if err != nil {
		return err
	}
	records, err := c.groupRecordsByUser()
	if err != nil {
		return err
	}

	for i := range filters {
		set := c.evaluateFilterForUser(&filters[i], user, groups, records[user.ID])
		c.publishMembership(seq, membershipKey{UserID: user.ID, FilterID: filters[i].ID}, set)
	}

	return nil
}

// RecomputeForGroup re-evaluates every filter for every user against just
// this group, adding or removing it from each membership set. Sub-groups
// are a no-op.
func (c *Cache) RecomputeForGroup(groupID uint) error {
	seq := c.nextSeq()

	group, err := c.store.GroupByID(groupID)
	if err != nil {
		return err
	}
	if group == nil || !group.IsTopLevel() {
		return nil
	}

	agg, hasAgg := c.GetAggregate(groupID)

	users, err := c.store.AllUsers()
	if err != nil {
		return err
	}
	filters, err := c.allFiltersWithSynthetic()
	if err != nil {
		return err
	}
	records, err := c.groupRecordsByUser()
	if err != nil {
		return err
	}

	now := c.cfg.Now()
	for i := range users {
		user := &users[i]
		hidden := user.HiddenTagList()
		uf := userFacts(records[user.ID][groupID])
		for j := range filters {
			member := false
			if hasAgg {
				member = rules.Matches(&filters[j], groupFacts(agg), uf, hidden, now)
			}
			key := membershipKey{UserID: user.ID, FilterID: filters[j].ID}
			c.updateMembershipForGroup(seq, key, groupID, member)
		}
	}

	return nil
}

// EvaluateFilterAdHoc evaluates a filter definition against one group and
// user without touching the membership index. Used for previews before a
// filter is saved. A group without a published aggregate never matches.
func (c *Cache) EvaluateFilterAdHoc(filter *models.GroupFilter, groupID, userID uint) (bool, error) {
	agg, ok := c.GetAggregate(groupID)
	if !ok {
		return false, nil
	}

	var hidden []string
	user, err := c.store.UserByID(userID)
	if err != nil {
		return false, err
	}
	if user != nil {
		hidden = user.HiddenTagList()
	}

	rec, err := c.store.GroupUserRecord(userID, groupID)
	if err != nil {
		return false, err
	}

	return rules.Matches(filter, groupFacts(agg), userFacts(rec), hidden, c.cfg.Now()), nil
}

// SortedMembership returns one filter's membership ordered by the
// filter's sort criteria, group name as the fallback.
func (c *Cache) SortedMembership(userID, filterID uint) ([]uint, error) {
	ids := c.GetGroupMembership(userID, filterID)
	if len(ids) == 0 {
		return ids, nil
	}

	filter, err := c.resolveFilter(filterID)
	if err != nil {
		return nil, err
	}
	var criteria []models.GroupFilterSortCriterion
	if filter != nil {
		criteria = filter.SortCriteria
	}

	sortable := make([]rules.SortableGroup, 0, len(ids))
	for _, id := range ids {
		group, err := c.store.GroupByID(id)
		if err != nil {
			return nil, err
		}
		if group == nil {
			continue
		}

		sg := rules.SortableGroup{
			GroupID:   id,
			GroupName: group.Name,
			SortName:  group.SortName,
		}
		if agg, ok := c.GetAggregate(id); ok {
			sg.AniDBRating = agg.AniDBRating
			if agg.VoteOverall != nil {
				sg.UserRating = *agg.VoteOverall
			}
			sg.SeriesCount = agg.SeriesCount
			sg.MissingEpisodeCount = agg.MissingEpisodeCount
			sg.EpisodeAddedDate = agg.EpisodeAddedDate
			sg.EpisodeAirDate = agg.LatestEpisodeAirDate
			sg.SeriesAddedDate = agg.SeriesCreatedDate
			if agg.AirDateMin != nil {
				sg.Year = agg.AirDateMin.Year()
			}
		}
		if rec, err := c.store.GroupUserRecord(userID, id); err == nil && rec != nil {
			sg.UnwatchedEpisodeCount = rec.UnwatchedEpisodeCount
			sg.EpisodeWatchedDate = rec.WatchedDate
		}
		sortable = append(sortable, sg)
	}

	rules.SortGroups(sortable, criteria)

	ordered := make([]uint, len(sortable))
	for i := range sortable {
		ordered[i] = sortable[i].GroupID
	}
	return ordered, nil
}

// evaluateFilterForUser builds one membership set from published
// aggregates. Groups without an aggregate are skipped; a later recompute
// brings them in.
func (c *Cache) evaluateFilterForUser(filter *models.GroupFilter, user *models.User, groups []models.AnimeGroup, records map[uint]*models.GroupUserRecord) map[uint]struct{} {
	hidden := user.HiddenTagList()
	now := c.cfg.Now()

	set := make(map[uint]struct{})
	for i := range groups {
		agg, ok := c.GetAggregate(groups[i].ID)
		if !ok {
			continue
		}
		if rules.Matches(filter, groupFacts(agg), userFacts(records[groups[i].ID]), hidden, now) {
			set[groups[i].ID] = struct{}{}
		}
	}
	return set
}

// allFiltersWithSynthetic returns the stored filters plus the "All" filter.
func (c *Cache) allFiltersWithSynthetic() ([]models.GroupFilter, error) {
	filters, err := c.store.AllFilters()
	if err != nil {
		return nil, err
	}
	return append(filters, *syntheticAllFilter()), nil
}

// groupRecordsByUser indexes every per-user group record as user -> group.
func (c *Cache) groupRecordsByUser() (map[uint]map[uint]*models.GroupUserRecord, error) {
	records, err := c.store.AllGroupUserRecords()
	if err != nil {
		return nil, err
	}
	byUser := make(map[uint]map[uint]*models.GroupUserRecord)
	for i := range records {
		rec := &records[i]
		if byUser[rec.UserID] == nil {
			byUser[rec.UserID] = make(map[uint]*models.GroupUserRecord)
		}
		byUser[rec.UserID][rec.GroupID] = rec
	}
	return byUser, nil
}
