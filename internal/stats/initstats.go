package stats

import (
	"time"

	"github.com/avdleeuw/animevault/internal/models"
	"github.com/avdleeuw/animevault/internal/rules"
)

// InitStats rebuilds the whole cache from scratch: every table is loaded
// once, every group's aggregate and every (user, filter) membership set is
// computed into shadow tables, and the result is swapped in atomically.
// Readers see either the old cache or the complete new one, never a
// partial rebuild. Groups and series with missing catalog data are logged
// and skipped.
func (c *Cache) InitStats() error {
	start := time.Now()

	snap, err := loadSnapshot(c.store)
	if err != nil {
		return err
	}
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

	aggregates := make(map[uint]*Aggregate, len(snap.groups))
	for id, group := range snap.groups {
		agg, err := c.buildFromSnapshot(snap, group, now)
		if err != nil {
			c.log.WithFields(map[string]interface{}{"group_id": id}).
				Error("skipping group in bulk rebuild", err)
			continue
		}
		aggregates[id] = agg
	}

	membership := make(map[membershipKey]map[uint]struct{}, len(users)*len(filters))
	for i := range users {
		user := &users[i]
		hidden := user.HiddenTagList()
		for j := range filters {
			set := make(map[uint]struct{})
			for id, agg := range aggregates {
				if !agg.IsTopLevel {
					continue
				}
				uf := userFacts(records[user.ID][id])
				if rules.Matches(&filters[j], groupFacts(agg), uf, hidden, now) {
					set[id] = struct{}{}
				}
			}
			membership[membershipKey{UserID: user.ID, FilterID: filters[j].ID}] = set
		}
	}

	seq := c.nextSeq()
	c.swap(seq, aggregates, membership)

	c.log.WithFields(map[string]interface{}{
		"groups":      len(aggregates),
		"users":       len(users),
		"filters":     len(filters),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("statistics cache rebuilt")

	return nil
}

// buildFromSnapshot folds one group using the preloaded tables.
func (c *Cache) buildFromSnapshot(snap *snapshot, group *models.AnimeGroup, now time.Time) (*Aggregate, error) {
	series, err := transitiveSeries(snap, group.ID)
	if err != nil {
		return nil, err
	}

	members := make([]seriesData, 0, len(series))
	for i := range series {
		sd, err := snap.load(&series[i])
		if err != nil {
			return nil, err
		}
		if sd.Entry == nil {
			c.log.WithFields(map[string]interface{}{
				"group_id":  group.ID,
				"series_id": series[i].ID,
				"anidb_id":  series[i].AniDBID,
			}).Warn("skipping series without catalog entry")
			continue
		}
		members = append(members, *sd)
	}

	agg := buildAggregate(group, members, now)
	c.maintainGroupDates(group, agg)
	return agg, nil
}
