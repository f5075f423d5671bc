package testing

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avdleeuw/animevault/internal/models"
)

// TestDB creates an in-memory SQLite database for testing
func TestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Run migrations
	if err := db.AutoMigrate(
		&models.AnimeGroup{},
		&models.GroupUserRecord{},
		&models.AnimeSeries{},
		&models.SeriesUserRecord{},
		&models.CatalogEntry{},
		&models.Episode{},
		&models.VideoFile{},
		&models.EpisodeFileLink{},
		&models.LanguageStat{},
		&models.Tag{},
		&models.SeriesTag{},
		&models.CustomTag{},
		&models.SeriesCustomTag{},
		&models.SeriesTitle{},
		&models.ExternalLink{},
		&models.Vote{},
		&models.User{},
		&models.GroupFilter{},
		&models.GroupFilterCondition{},
		&models.GroupFilterSortCriterion{},
	); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// CreateGroup creates a test group
func CreateGroup(db *gorm.DB, overrides ...func(*models.AnimeGroup)) *models.AnimeGroup {
	group := &models.AnimeGroup{
		Name:      "Test Group",
		SortName:  "test group",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(group)
	}

	db.Create(group)
	return group
}

// CreateSeries creates a test series in the given group
func CreateSeries(db *gorm.DB, groupID uint, anidbID int, overrides ...func(*models.AnimeSeries)) *models.AnimeSeries {
	series := &models.AnimeSeries{
		GroupID:   groupID,
		AniDBID:   anidbID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(series)
	}

	db.Create(series)
	return series
}

// CreateCatalogEntry creates a test catalog entry
func CreateCatalogEntry(db *gorm.DB, anidbID int, overrides ...func(*models.CatalogEntry)) *models.CatalogEntry {
	entry := &models.CatalogEntry{
		AniDBID:            anidbID,
		MainTitle:          "Test Anime",
		Type:               models.AnimeTypeTVSeries,
		EpisodeCountNormal: 12,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	for _, override := range overrides {
		override(entry)
	}

	db.Create(entry)
	return entry
}

// CreateUser creates a test user
func CreateUser(db *gorm.DB, overrides ...func(*models.User)) *models.User {
	user := &models.User{
		Username:  "testuser",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(user)
	}

	db.Create(user)
	return user
}

// CreateFilter creates a test group filter
func CreateFilter(db *gorm.DB, overrides ...func(*models.GroupFilter)) *models.GroupFilter {
	filter := &models.GroupFilter{
		Name:       "Test Filter",
		BasePolicy: models.FilterBaseInclude,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	for _, override := range overrides {
		override(filter)
	}

	db.Create(filter)
	return filter
}

// WithParent places a group under a parent group
func WithParent(parentID uint) func(*models.AnimeGroup) {
	return func(group *models.AnimeGroup) {
		group.ParentID = &parentID
	}
}

// WithGroupName sets the group name and sort name
func WithGroupName(name string) func(*models.AnimeGroup) {
	return func(group *models.AnimeGroup) {
		group.Name = name
		group.SortName = name
	}
}

// WithMissingEpisodes sets the missing episode counters on a series
func WithMissingEpisodes(all, collecting int) func(*models.AnimeSeries) {
	return func(series *models.AnimeSeries) {
		series.MissingEpisodeCount = all
		series.MissingEpisodeCountGroups = collecting
	}
}

// WithAirDates sets the airing range on a catalog entry
func WithAirDates(air, end *time.Time) func(*models.CatalogEntry) {
	return func(entry *models.CatalogEntry) {
		entry.AirDate = air
		entry.EndDate = end
	}
}

// WithHiddenTags sets a user's hidden tag list
func WithHiddenTags(tags string) func(*models.User) {
	return func(user *models.User) {
		user.HiddenTags = tags
	}
}

// WithUsername sets the username
func WithUsername(name string) func(*models.User) {
	return func(user *models.User) {
		user.Username = name
	}
}

// WithBasePolicy sets a filter's base policy
func WithBasePolicy(policy models.FilterBasePolicy) func(*models.GroupFilter) {
	return func(filter *models.GroupFilter) {
		filter.BasePolicy = policy
	}
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error, message string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", message, err)
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual[T comparable](t *testing.T, expected, actual T, message string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", message, expected, actual)
	}
}

// AssertCount verifies the count of records in a table
func AssertCount(t *testing.T, db *gorm.DB, model interface{}, expected int64, message string) {
	t.Helper()
	var count int64
	db.Model(model).Count(&count)
	if count != expected {
		t.Fatalf("%s: expected count %d, got %d", message, expected, count)
	}
}
