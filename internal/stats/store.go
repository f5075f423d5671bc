package stats

import (
	"github.com/avdleeuw/animevault/internal/models"
)

// Store is the read surface the cache needs from the entity store. The
// gorm repository satisfies it; tests use an in-memory sqlite database
// behind the same implementation.
type Store interface {
	GroupByID(id uint) (*models.AnimeGroup, error)
	AllGroups() ([]models.AnimeGroup, error)
	ChildGroups(parentID uint) ([]models.AnimeGroup, error)
	TopLevelGroups() ([]models.AnimeGroup, error)
	SaveGroup(group *models.AnimeGroup) error
	GroupUserRecord(userID, groupID uint) (*models.GroupUserRecord, error)
	AllGroupUserRecords() ([]models.GroupUserRecord, error)

	SeriesByID(id uint) (*models.AnimeSeries, error)
	SeriesByAniDBID(anidbID int) (*models.AnimeSeries, error)
	SeriesByGroup(groupID uint) ([]models.AnimeSeries, error)
	AllSeries() ([]models.AnimeSeries, error)

	CatalogEntryByAniDBID(anidbID int) (*models.CatalogEntry, error)
	AllCatalogEntries() ([]models.CatalogEntry, error)
	EpisodesByAniDBID(anidbID int) ([]models.Episode, error)
	AllEpisodes() ([]models.Episode, error)
	VideoFileByHash(hash string) (*models.VideoFile, error)
	VideoFilesByAniDBID(anidbID int) ([]models.VideoFile, error)
	AllVideoFiles() ([]models.VideoFile, error)
	EpisodeFileLinksByAniDBID(anidbID int) ([]models.EpisodeFileLink, error)
	AllEpisodeFileLinks() ([]models.EpisodeFileLink, error)
	LanguageStatsByAniDBID(anidbID int) ([]models.LanguageStat, error)
	AllLanguageStats() ([]models.LanguageStat, error)

	TagNamesByAniDBID(anidbID int) ([]string, error)
	AllTags() ([]models.Tag, error)
	AllSeriesTags() ([]models.SeriesTag, error)
	CustomTagNamesByAniDBID(anidbID int) ([]string, error)
	AllCustomTags() ([]models.CustomTag, error)
	AllSeriesCustomTags() ([]models.SeriesCustomTag, error)
	TitlesByAniDBID(anidbID int) ([]models.SeriesTitle, error)
	AllSeriesTitles() ([]models.SeriesTitle, error)
	ExternalLinksByAniDBID(anidbID int) ([]models.ExternalLink, error)
	AllExternalLinks() ([]models.ExternalLink, error)
	VotesByAniDBID(anidbID int) ([]models.Vote, error)
	AllVotes() ([]models.Vote, error)

	UserByID(id uint) (*models.User, error)
	AllUsers() ([]models.User, error)
	FilterByID(id uint) (*models.GroupFilter, error)
	AllFilters() ([]models.GroupFilter, error)
}
