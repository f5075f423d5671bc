package stats

import (
	"fmt"

	"github.com/avdleeuw/animevault/internal/errors"
	"github.com/avdleeuw/animevault/internal/models"
)

// hierarchy abstracts group-tree navigation so the walker serves both the
// live store and the preloaded snapshot InitStats builds.
type hierarchy interface {
	group(id uint) (*models.AnimeGroup, error)
	children(parentID uint) ([]models.AnimeGroup, error)
	seriesOf(groupID uint) ([]models.AnimeSeries, error)
}

// storeHierarchy navigates the tree with one query per step.
type storeHierarchy struct {
	store Store
}

func (h storeHierarchy) group(id uint) (*models.AnimeGroup, error) {
	return h.store.GroupByID(id)
}

func (h storeHierarchy) children(parentID uint) ([]models.AnimeGroup, error) {
	return h.store.ChildGroups(parentID)
}

func (h storeHierarchy) seriesOf(groupID uint) ([]models.AnimeSeries, error) {
	return h.store.SeriesByGroup(groupID)
}

// ancestorChain returns a group followed by its ancestors up to the root.
// The forest invariant says there are no cycles; a corrupted parent chain
// surfaces as an error instead of looping forever.
func ancestorChain(h hierarchy, group *models.AnimeGroup) ([]*models.AnimeGroup, error) {
	chain := []*models.AnimeGroup{group}
	visited := map[uint]struct{}{group.ID: {}}

	current := group
	for current.ParentID != nil {
		parent, err := h.group(*current.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			break
		}
		if _, seen := visited[parent.ID]; seen {
			return nil, errors.New(errors.CodeInternal,
				fmt.Sprintf("group hierarchy cycle through group %d", parent.ID))
		}
		visited[parent.ID] = struct{}{}
		chain = append(chain, parent)
		current = parent
	}

	return chain, nil
}

// transitiveSeries returns every series owned by a group or any of its
// descendants. The visited set bounds the walk on a corrupted forest.
func transitiveSeries(h hierarchy, groupID uint) ([]models.AnimeSeries, error) {
	var all []models.AnimeSeries
	visited := make(map[uint]struct{})

	var walk func(id uint) error
	walk = func(id uint) error {
		if _, seen := visited[id]; seen {
			return nil
		}
		visited[id] = struct{}{}

		series, err := h.seriesOf(id)
		if err != nil {
			return err
		}
		all = append(all, series...)

		childGroups, err := h.children(id)
		if err != nil {
			return err
		}
		for i := range childGroups {
			if err := walk(childGroups[i].ID); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(groupID); err != nil {
		return nil, err
	}
	return all, nil
}
