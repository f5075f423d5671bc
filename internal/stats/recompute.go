package stats

import (
	"fmt"
	"time"

	"github.com/avdleeuw/animevault/internal/models"
)

// RecomputeGroupStats rebuilds the aggregate for a group and every
// ancestor up to the root, publishing each one atomically, then refreshes
// filter membership for the top-level ancestor. A missing group is logged
// and skipped.
func (c *Cache) RecomputeGroupStats(groupID uint) error {
	group, err := c.store.GroupByID(groupID)
	if err != nil {
		return err
	}
	if group == nil {
		c.log.WithFields(map[string]interface{}{"group_id": groupID}).
			Warn("skipping stats recompute for unknown group")
		return nil
	}

	h := storeHierarchy{store: c.store}
	src := storeSource{store: c.store}

	chain, err := ancestorChain(h, group)
	if err != nil {
		return err
	}

	for _, g := range chain {
		if err := c.recomputeAggregate(g, h, src); err != nil {
			return fmt.Errorf("failed to recompute aggregate for group %d: %w", g.ID, err)
		}
	}

	// The last chain entry is the top-level root; only it participates in
	// filter membership.
	return c.RecomputeForGroup(chain[len(chain)-1].ID)
}

// recomputeAggregate folds one group's transitive series into a fresh
// aggregate and publishes it. Series without a synced catalog entry are
// logged and skipped rather than failing the unit.
func (c *Cache) recomputeAggregate(group *models.AnimeGroup, h hierarchy, src seriesSource) error {
	seq := c.nextSeq()
	now := c.cfg.Now()
	start := time.Now()

	series, err := transitiveSeries(h, group.ID)
	if err != nil {
		return err
	}

	members := make([]seriesData, 0, len(series))
	for i := range series {
		sd, err := src.load(&series[i])
		if err != nil {
			return err
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
	c.publishAggregate(seq, agg)

	c.log.WithFields(map[string]interface{}{
		"group_id":     group.ID,
		"series_count": agg.SeriesCount,
		"duration_ms":  time.Since(start).Milliseconds(),
	}).Debug("group aggregate recomputed")

	return nil
}

// maintainGroupDates pushes a newer latest-episode air date or episode
// added date back onto the group row. Persistence failures are logged,
// not fatal; the cached aggregate already carries the fresh values.
func (c *Cache) maintainGroupDates(group *models.AnimeGroup, agg *Aggregate) {
	changed := false
	if agg.LatestEpisodeAirDate != nil &&
		(group.LatestEpisodeAirDate == nil || group.LatestEpisodeAirDate.Before(*agg.LatestEpisodeAirDate)) {
		group.LatestEpisodeAirDate = agg.LatestEpisodeAirDate
		changed = true
	}
	if agg.EpisodeAddedDate != nil &&
		(group.EpisodeAddedDate == nil || group.EpisodeAddedDate.Before(*agg.EpisodeAddedDate)) {
		group.EpisodeAddedDate = agg.EpisodeAddedDate
		changed = true
	}
	if !changed {
		return
	}
	if err := c.store.SaveGroup(group); err != nil {
		c.log.WithFields(map[string]interface{}{"group_id": group.ID}).
			Error("failed to persist group dates", err)
	}
}
