package stats

import (
	"time"

	"github.com/avdleeuw/animevault/internal/models"
)

// fakeStore serves the Store interface from in-memory tables so cache
// behavior can be tested without a database.
type fakeStore struct {
	groups           []models.AnimeGroup
	groupUserRecords []models.GroupUserRecord
	series           []models.AnimeSeries
	entries          []models.CatalogEntry
	episodes         []models.Episode
	files            []models.VideoFile
	links            []models.EpisodeFileLink
	languages        []models.LanguageStat
	tags             []models.Tag
	seriesTags       []models.SeriesTag
	customTags       []models.CustomTag
	seriesCustomTags []models.SeriesCustomTag
	titles           []models.SeriesTitle
	externalLinks    []models.ExternalLink
	votes            []models.Vote
	users            []models.User
	filters          []models.GroupFilter

	savedGroups []uint
}

func (f *fakeStore) GroupByID(id uint) (*models.AnimeGroup, error) {
	for i := range f.groups {
		if f.groups[i].ID == id {
			return &f.groups[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) AllGroups() ([]models.AnimeGroup, error) {
	return f.groups, nil
}

func (f *fakeStore) ChildGroups(parentID uint) ([]models.AnimeGroup, error) {
	var out []models.AnimeGroup
	for i := range f.groups {
		if f.groups[i].ParentID != nil && *f.groups[i].ParentID == parentID {
			out = append(out, f.groups[i])
		}
	}
	return out, nil
}

func (f *fakeStore) TopLevelGroups() ([]models.AnimeGroup, error) {
	var out []models.AnimeGroup
	for i := range f.groups {
		if f.groups[i].ParentID == nil {
			out = append(out, f.groups[i])
		}
	}
	return out, nil
}

func (f *fakeStore) SaveGroup(group *models.AnimeGroup) error {
	f.savedGroups = append(f.savedGroups, group.ID)
	for i := range f.groups {
		if f.groups[i].ID == group.ID {
			f.groups[i] = *group
		}
	}
	return nil
}

func (f *fakeStore) GroupUserRecord(userID, groupID uint) (*models.GroupUserRecord, error) {
	for i := range f.groupUserRecords {
		if f.groupUserRecords[i].UserID == userID && f.groupUserRecords[i].GroupID == groupID {
			return &f.groupUserRecords[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) AllGroupUserRecords() ([]models.GroupUserRecord, error) {
	return f.groupUserRecords, nil
}

func (f *fakeStore) SeriesByID(id uint) (*models.AnimeSeries, error) {
	for i := range f.series {
		if f.series[i].ID == id {
			return &f.series[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SeriesByAniDBID(anidbID int) (*models.AnimeSeries, error) {
	for i := range f.series {
		if f.series[i].AniDBID == anidbID {
			return &f.series[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SeriesByGroup(groupID uint) ([]models.AnimeSeries, error) {
	var out []models.AnimeSeries
	for i := range f.series {
		if f.series[i].GroupID == groupID {
			out = append(out, f.series[i])
		}
	}
	return out, nil
}

func (f *fakeStore) AllSeries() ([]models.AnimeSeries, error) {
	return f.series, nil
}

func (f *fakeStore) CatalogEntryByAniDBID(anidbID int) (*models.CatalogEntry, error) {
	for i := range f.entries {
		if f.entries[i].AniDBID == anidbID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) AllCatalogEntries() ([]models.CatalogEntry, error) {
	return f.entries, nil
}

func (f *fakeStore) EpisodesByAniDBID(anidbID int) ([]models.Episode, error) {
	var out []models.Episode
	for i := range f.episodes {
		if f.episodes[i].AniDBID == anidbID {
			out = append(out, f.episodes[i])
		}
	}
	return out, nil
}

func (f *fakeStore) AllEpisodes() ([]models.Episode, error) {
	return f.episodes, nil
}

func (f *fakeStore) VideoFileByHash(hash string) (*models.VideoFile, error) {
	for i := range f.files {
		if f.files[i].Hash == hash {
			return &f.files[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) VideoFilesByAniDBID(anidbID int) ([]models.VideoFile, error) {
	var out []models.VideoFile
	for i := range f.files {
		if f.files[i].AniDBID == anidbID {
			out = append(out, f.files[i])
		}
	}
	return out, nil
}

func (f *fakeStore) AllVideoFiles() ([]models.VideoFile, error) {
	return f.files, nil
}

func (f *fakeStore) EpisodeFileLinksByAniDBID(anidbID int) ([]models.EpisodeFileLink, error) {
	var out []models.EpisodeFileLink
	for i := range f.links {
		if f.links[i].AniDBID == anidbID {
			out = append(out, f.links[i])
		}
	}
	return out, nil
}

func (f *fakeStore) AllEpisodeFileLinks() ([]models.EpisodeFileLink, error) {
	return f.links, nil
}

func (f *fakeStore) LanguageStatsByAniDBID(anidbID int) ([]models.LanguageStat, error) {
	var out []models.LanguageStat
	for i := range f.languages {
		if f.languages[i].AniDBID == anidbID {
			out = append(out, f.languages[i])
		}
	}
	return out, nil
}

func (f *fakeStore) AllLanguageStats() ([]models.LanguageStat, error) {
	return f.languages, nil
}

func (f *fakeStore) TagNamesByAniDBID(anidbID int) ([]string, error) {
	names := make(map[uint]string)
	for i := range f.tags {
		names[f.tags[i].ID] = f.tags[i].Name
	}
	var out []string
	for i := range f.seriesTags {
		if f.seriesTags[i].AniDBID == anidbID {
			if name, ok := names[f.seriesTags[i].TagID]; ok {
				out = append(out, name)
			}
		}
	}
	return out, nil
}

func (f *fakeStore) AllTags() ([]models.Tag, error) {
	return f.tags, nil
}

func (f *fakeStore) AllSeriesTags() ([]models.SeriesTag, error) {
	return f.seriesTags, nil
}

func (f *fakeStore) CustomTagNamesByAniDBID(anidbID int) ([]string, error) {
	names := make(map[uint]string)
	for i := range f.customTags {
		names[f.customTags[i].ID] = f.customTags[i].Name
	}
	var out []string
	for i := range f.seriesCustomTags {
		if f.seriesCustomTags[i].AniDBID == anidbID {
			if name, ok := names[f.seriesCustomTags[i].CustomTagID]; ok {
				out = append(out, name)
			}
		}
	}
	return out, nil
}

func (f *fakeStore) AllCustomTags() ([]models.CustomTag, error) {
	return f.customTags, nil
}

func (f *fakeStore) AllSeriesCustomTags() ([]models.SeriesCustomTag, error) {
	return f.seriesCustomTags, nil
}

func (f *fakeStore) TitlesByAniDBID(anidbID int) ([]models.SeriesTitle, error) {
	var out []models.SeriesTitle
	for i := range f.titles {
		if f.titles[i].AniDBID == anidbID {
			out = append(out, f.titles[i])
		}
	}
	return out, nil
}

func (f *fakeStore) AllSeriesTitles() ([]models.SeriesTitle, error) {
	return f.titles, nil
}

func (f *fakeStore) ExternalLinksByAniDBID(anidbID int) ([]models.ExternalLink, error) {
	var out []models.ExternalLink
	for i := range f.externalLinks {
		if f.externalLinks[i].AniDBID == anidbID {
			out = append(out, f.externalLinks[i])
		}
	}
	return out, nil
}

func (f *fakeStore) AllExternalLinks() ([]models.ExternalLink, error) {
	return f.externalLinks, nil
}

func (f *fakeStore) VotesByAniDBID(anidbID int) ([]models.Vote, error) {
	var out []models.Vote
	for i := range f.votes {
		if f.votes[i].AniDBID == anidbID {
			out = append(out, f.votes[i])
		}
	}
	return out, nil
}

func (f *fakeStore) AllVotes() ([]models.Vote, error) {
	return f.votes, nil
}

func (f *fakeStore) UserByID(id uint) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) AllUsers() ([]models.User, error) {
	return f.users, nil
}

func (f *fakeStore) FilterByID(id uint) (*models.GroupFilter, error) {
	for i := range f.filters {
		if f.filters[i].ID == id {
			return &f.filters[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) AllFilters() ([]models.GroupFilter, error) {
	return f.filters, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func uintPtr(v uint) *uint {
	return &v
}

// testConfig pins the clock and disables retry waits.
func testConfig(now time.Time) Config {
	cfg := DefaultConfig()
	cfg.Now = func() time.Time { return now }
	cfg.Retry.MaxAttempts = 1
	return cfg
}
