package stats

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avdleeuw/animevault/internal/circuitbreaker"
	"github.com/avdleeuw/animevault/internal/logger"
	"github.com/avdleeuw/animevault/internal/retry"
)

// Config holds cache configuration
type Config struct {
	// Retry governs how recompute units are retried on transient store
	// failures.
	Retry retry.Config

	// Breaker guards store access so a dead database fails recomputes
	// fast instead of piling up retries.
	Breaker circuitbreaker.Config

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

// DefaultConfig returns sensible defaults for the cache
func DefaultConfig() Config {
	return Config{
		Retry:   retry.DefaultConfig(),
		Breaker: circuitbreaker.DefaultConfig(),
		Now:     time.Now,
	}
}

// membershipKey addresses one (user, filter) membership set.
type membershipKey struct {
	UserID   uint
	FilterID uint
}

// Cache is the process-wide statistics cache: per-group aggregates plus
// the per-(user, filter) membership index. It is created empty, filled by
// InitStats, and patched by the UpdateUsingX triggers. All methods are
// safe for concurrent use.
type Cache struct {
	store   Store
	log     *logger.Logger
	breaker *circuitbreaker.CircuitBreaker
	cfg     Config

	// seq orders recompute publications: a recompute stamps its work with
	// a sequence taken at start, and a stale result never overwrites a
	// fresher one.
	seq atomic.Uint64

	mu         sync.RWMutex
	aggregates map[uint]*Aggregate
	aggSeq     map[uint]uint64
	membership map[membershipKey]map[uint]struct{}
	memSeq     map[membershipKey]uint64
}

// New creates an empty cache over the given store.
func New(store Store, cfg Config) *Cache {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Cache{
		store:      store,
		log:        logger.AppLogger(),
		breaker:    circuitbreaker.New(cfg.Breaker),
		cfg:        cfg,
		aggregates: make(map[uint]*Aggregate),
		aggSeq:     make(map[uint]uint64),
		membership: make(map[membershipKey]map[uint]struct{}),
		memSeq:     make(map[membershipKey]uint64),
	}
}

// GetAggregate returns the published aggregate for a group. The boolean
// is false when the group was never computed; a miss is not an error.
func (c *Cache) GetAggregate(groupID uint) (*Aggregate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	agg, ok := c.aggregates[groupID]
	return agg, ok
}

// GetGroupMembership returns the sorted top-level group IDs currently in
// one filter for one user. A never-computed key yields an empty slice.
func (c *Cache) GetGroupMembership(userID, filterID uint) []uint {
	c.mu.RLock()
	defer c.mu.RUnlock()

	set := c.membership[membershipKey{UserID: userID, FilterID: filterID}]
	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// nextSeq stamps a recompute with its publication order.
func (c *Cache) nextSeq() uint64 {
	return c.seq.Add(1)
}

// publishAggregate installs a freshly built aggregate unless a newer
// recompute already published one for the same group.
func (c *Cache) publishAggregate(seq uint64, agg *Aggregate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.aggSeq[agg.GroupID] >= seq {
		return
	}
	c.aggregates[agg.GroupID] = agg
	c.aggSeq[agg.GroupID] = seq
}

// publishMembership replaces one (user, filter) membership set, guarded
// by the same staleness check as aggregates.
func (c *Cache) publishMembership(seq uint64, key membershipKey, groups map[uint]struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.memSeq[key] >= seq {
		return
	}
	c.membership[key] = groups
	c.memSeq[key] = seq
}

// updateMembershipForGroup adds or removes a single group in one
// membership set without rebuilding the rest of it.
func (c *Cache) updateMembershipForGroup(seq uint64, key membershipKey, groupID uint, member bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.memSeq[key] >= seq {
		return
	}

	set := c.membership[key]
	if member {
		next := make(map[uint]struct{}, len(set)+1)
		for id := range set {
			next[id] = struct{}{}
		}
		next[groupID] = struct{}{}
		c.membership[key] = next
	} else if _, ok := set[groupID]; ok {
		next := make(map[uint]struct{}, len(set))
		for id := range set {
			if id != groupID {
				next[id] = struct{}{}
			}
		}
		c.membership[key] = next
	}
	c.memSeq[key] = seq
}

// swap atomically replaces the whole cache with freshly built shadow
// tables. Used by InitStats so readers only ever see the old state or the
// complete new one.
func (c *Cache) swap(seq uint64, aggregates map[uint]*Aggregate, membership map[membershipKey]map[uint]struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.aggregates = aggregates
	c.membership = membership
	c.aggSeq = make(map[uint]uint64, len(aggregates))
	c.memSeq = make(map[membershipKey]uint64, len(membership))
	for id := range aggregates {
		c.aggSeq[id] = seq
	}
	for key := range membership {
		c.memSeq[key] = seq
	}
}

// BreakerState reports the store guard's current state, for health output.
func (c *Cache) BreakerState() circuitbreaker.State {
	return c.breaker.State()
}
