package stats

import (
	"github.com/avdleeuw/animevault/internal/models"
)

// seriesSource yields the per-series data the fold consumes. The live
// store queries per series; InitStats answers from preloaded tables.
type seriesSource interface {
	load(series *models.AnimeSeries) (*seriesData, error)
}

// storeSource loads one series' contribution with targeted queries.
type storeSource struct {
	store Store
}

func (s storeSource) load(series *models.AnimeSeries) (*seriesData, error) {
	sd := &seriesData{Series: series}

	entry, err := s.store.CatalogEntryByAniDBID(series.AniDBID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return sd, nil
	}
	sd.Entry = entry

	if sd.Episodes, err = s.store.EpisodesByAniDBID(series.AniDBID); err != nil {
		return nil, err
	}
	if sd.Files, err = s.store.VideoFilesByAniDBID(series.AniDBID); err != nil {
		return nil, err
	}
	if sd.Links, err = s.store.EpisodeFileLinksByAniDBID(series.AniDBID); err != nil {
		return nil, err
	}
	if sd.Languages, err = s.store.LanguageStatsByAniDBID(series.AniDBID); err != nil {
		return nil, err
	}
	if sd.Tags, err = s.store.TagNamesByAniDBID(series.AniDBID); err != nil {
		return nil, err
	}
	if sd.CustomTags, err = s.store.CustomTagNamesByAniDBID(series.AniDBID); err != nil {
		return nil, err
	}
	if sd.ExternalLinks, err = s.store.ExternalLinksByAniDBID(series.AniDBID); err != nil {
		return nil, err
	}
	if sd.Votes, err = s.store.VotesByAniDBID(series.AniDBID); err != nil {
		return nil, err
	}

	titles, err := s.store.TitlesByAniDBID(series.AniDBID)
	if err != nil {
		return nil, err
	}
	sd.Titles = titleStrings(titles)

	return sd, nil
}

// snapshot holds every table loaded once, keyed for the fold. It serves
// both the hierarchy walks and the per-series loads during a bulk rebuild
// without further queries.
type snapshot struct {
	groups           map[uint]*models.AnimeGroup
	childrenByParent map[uint][]models.AnimeGroup
	seriesByGroup    map[uint][]models.AnimeSeries
	entries          map[int]*models.CatalogEntry
	episodes         map[int][]models.Episode
	files            map[int][]models.VideoFile
	links            map[int][]models.EpisodeFileLink
	languages        map[int][]models.LanguageStat
	tags             map[int][]string
	customTags       map[int][]string
	titles           map[int][]string
	externalLinks    map[int][]models.ExternalLink
	votes            map[int][]models.Vote
}

func loadSnapshot(store Store) (*snapshot, error) {
	snap := &snapshot{
		groups:           make(map[uint]*models.AnimeGroup),
		childrenByParent: make(map[uint][]models.AnimeGroup),
		seriesByGroup:    make(map[uint][]models.AnimeSeries),
		entries:          make(map[int]*models.CatalogEntry),
		episodes:         make(map[int][]models.Episode),
		files:            make(map[int][]models.VideoFile),
		links:            make(map[int][]models.EpisodeFileLink),
		languages:        make(map[int][]models.LanguageStat),
		tags:             make(map[int][]string),
		customTags:       make(map[int][]string),
		titles:           make(map[int][]string),
		externalLinks:    make(map[int][]models.ExternalLink),
		votes:            make(map[int][]models.Vote),
	}

	groups, err := store.AllGroups()
	if err != nil {
		return nil, err
	}
	for i := range groups {
		g := groups[i]
		snap.groups[g.ID] = &groups[i]
		if g.ParentID != nil {
			snap.childrenByParent[*g.ParentID] = append(snap.childrenByParent[*g.ParentID], g)
		}
	}

	series, err := store.AllSeries()
	if err != nil {
		return nil, err
	}
	for i := range series {
		snap.seriesByGroup[series[i].GroupID] = append(snap.seriesByGroup[series[i].GroupID], series[i])
	}

	entries, err := store.AllCatalogEntries()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		snap.entries[entries[i].AniDBID] = &entries[i]
	}

	episodes, err := store.AllEpisodes()
	if err != nil {
		return nil, err
	}
	for i := range episodes {
		snap.episodes[episodes[i].AniDBID] = append(snap.episodes[episodes[i].AniDBID], episodes[i])
	}

	files, err := store.AllVideoFiles()
	if err != nil {
		return nil, err
	}
	for i := range files {
		snap.files[files[i].AniDBID] = append(snap.files[files[i].AniDBID], files[i])
	}

	links, err := store.AllEpisodeFileLinks()
	if err != nil {
		return nil, err
	}
	for i := range links {
		snap.links[links[i].AniDBID] = append(snap.links[links[i].AniDBID], links[i])
	}

	languages, err := store.AllLanguageStats()
	if err != nil {
		return nil, err
	}
	for i := range languages {
		snap.languages[languages[i].AniDBID] = append(snap.languages[languages[i].AniDBID], languages[i])
	}

	if err := snap.loadTags(store); err != nil {
		return nil, err
	}

	titles, err := store.AllSeriesTitles()
	if err != nil {
		return nil, err
	}
	for i := range titles {
		snap.titles[titles[i].AniDBID] = append(snap.titles[titles[i].AniDBID], titles[i].Title)
	}

	externalLinks, err := store.AllExternalLinks()
	if err != nil {
		return nil, err
	}
	for i := range externalLinks {
		snap.externalLinks[externalLinks[i].AniDBID] = append(snap.externalLinks[externalLinks[i].AniDBID], externalLinks[i])
	}

	votes, err := store.AllVotes()
	if err != nil {
		return nil, err
	}
	for i := range votes {
		snap.votes[votes[i].AniDBID] = append(snap.votes[votes[i].AniDBID], votes[i])
	}

	return snap, nil
}

func (s *snapshot) loadTags(store Store) error {
	tags, err := store.AllTags()
	if err != nil {
		return err
	}
	tagNames := make(map[uint]string, len(tags))
	for i := range tags {
		tagNames[tags[i].ID] = tags[i].Name
	}
	seriesTags, err := store.AllSeriesTags()
	if err != nil {
		return err
	}
	for i := range seriesTags {
		if name, ok := tagNames[seriesTags[i].TagID]; ok {
			s.tags[seriesTags[i].AniDBID] = append(s.tags[seriesTags[i].AniDBID], name)
		}
	}

	customTags, err := store.AllCustomTags()
	if err != nil {
		return err
	}
	customNames := make(map[uint]string, len(customTags))
	for i := range customTags {
		customNames[customTags[i].ID] = customTags[i].Name
	}
	seriesCustomTags, err := store.AllSeriesCustomTags()
	if err != nil {
		return err
	}
	for i := range seriesCustomTags {
		if name, ok := customNames[seriesCustomTags[i].CustomTagID]; ok {
			s.customTags[seriesCustomTags[i].AniDBID] = append(s.customTags[seriesCustomTags[i].AniDBID], name)
		}
	}

	return nil
}

func (s *snapshot) group(id uint) (*models.AnimeGroup, error) {
	return s.groups[id], nil
}

func (s *snapshot) children(parentID uint) ([]models.AnimeGroup, error) {
	return s.childrenByParent[parentID], nil
}

func (s *snapshot) seriesOf(groupID uint) ([]models.AnimeSeries, error) {
	return s.seriesByGroup[groupID], nil
}

func (s *snapshot) load(series *models.AnimeSeries) (*seriesData, error) {
	return &seriesData{
		Series:        series,
		Entry:         s.entries[series.AniDBID],
		Episodes:      s.episodes[series.AniDBID],
		Files:         s.files[series.AniDBID],
		Links:         s.links[series.AniDBID],
		Languages:     s.languages[series.AniDBID],
		Tags:          s.tags[series.AniDBID],
		CustomTags:    s.customTags[series.AniDBID],
		Titles:        s.titles[series.AniDBID],
		ExternalLinks: s.externalLinks[series.AniDBID],
		Votes:         s.votes[series.AniDBID],
	}, nil
}

func titleStrings(titles []models.SeriesTitle) []string {
	out := make([]string, 0, len(titles))
	for i := range titles {
		out = append(out, titles[i].Title)
	}
	return out
}
