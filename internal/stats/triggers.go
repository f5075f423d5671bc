package stats

import (
	"context"
	"time"

	"github.com/avdleeuw/animevault/internal/errors"
	"github.com/avdleeuw/animevault/internal/retry"
)

// UpdateUsingGroup recomputes stats after a group was restructured.
func (c *Cache) UpdateUsingGroup(ctx context.Context, groupID uint) error {
	return c.runUnit(ctx, "group", groupID, func() error {
		return c.RecomputeGroupStats(groupID)
	})
}

// UpdateUsingSeries recomputes stats after a series changed (watch status,
// missing-episode counters, a move between groups).
func (c *Cache) UpdateUsingSeries(ctx context.Context, seriesID uint) error {
	return c.runUnit(ctx, "series", seriesID, func() error {
		series, err := c.store.SeriesByID(seriesID)
		if err != nil {
			return err
		}
		if series == nil {
			c.log.WithFields(map[string]interface{}{"series_id": seriesID}).
				Warn("skipping stats recompute for unknown series")
			return nil
		}
		return c.RecomputeGroupStats(series.GroupID)
	})
}

// UpdateUsingFile recomputes stats after a file was hashed or linked.
func (c *Cache) UpdateUsingFile(ctx context.Context, hash string) error {
	return c.runUnit(ctx, "file", hash, func() error {
		file, err := c.store.VideoFileByHash(hash)
		if err != nil {
			return err
		}
		if file == nil {
			c.log.WithFields(map[string]interface{}{"hash": hash}).
				Warn("skipping stats recompute for unknown file")
			return nil
		}
		return c.recomputeByAniDBID(file.AniDBID)
	})
}

// UpdateUsingCatalogEntry recomputes stats after the metadata pipeline
// refreshed a title (air dates, episode counts, votes, tags).
func (c *Cache) UpdateUsingCatalogEntry(ctx context.Context, anidbID int) error {
	return c.runUnit(ctx, "catalog_entry", anidbID, func() error {
		return c.recomputeByAniDBID(anidbID)
	})
}

func (c *Cache) recomputeByAniDBID(anidbID int) error {
	series, err := c.store.SeriesByAniDBID(anidbID)
	if err != nil {
		return err
	}
	if series == nil {
		c.log.WithFields(map[string]interface{}{"anidb_id": anidbID}).
			Warn("skipping stats recompute for untracked title")
		return nil
	}
	return c.RecomputeGroupStats(series.GroupID)
}

// runUnit runs one recompute as a bounded, retryable unit behind the
// store breaker. The unit is idempotent, so retrying after a transient
// failure cannot corrupt state.
func (c *Cache) runUnit(ctx context.Context, kind string, key interface{}, unit func() error) error {
	start := time.Now()

	err := retry.Do(ctx, c.cfg.Retry, func() error {
		return c.breaker.Execute(unit)
	}, errors.IsRetryable)

	fields := map[string]interface{}{
		"trigger":     kind,
		"key":         key,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		c.log.WithFields(fields).Error("stats recompute failed", err)
		return err
	}
	c.log.WithFields(fields).Debug("stats recompute finished")
	return nil
}
