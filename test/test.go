package test

import (
	"cinelogBackend/auth"
	"cinelogBackend/config"
	"cinelogBackend/domain/collection"
	"cinelogBackend/domain/favorite"
	"cinelogBackend/domain/movie"
	"cinelogBackend/domain/user"
	"cinelogBackend/events"
	"cinelogBackend/utils"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Seeded users. User one owns all seeded collections and favorites, user two owns
// nothing and is used to verify ownership isolation.
const (
	TestUserOne = "test-user-id1"
	TestUserTwo = "test-user-id2"
)

// SetupTestServer Builds a fully wired API server against a fresh SQLite database.
// The returned auth manager issues real access tokens for the seeded test users.
func SetupTestServer(t *testing.T) (*gin.Engine, auth.AuthManager, *gorm.DB) {
	t.Helper()

	testConfig := testConfig(t)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %s", err.Error())
	}

	GenerateTestData(t, db)

	authManager := auth.CreateAuthManager(testConfig)
	registerTestUsers(t, authManager)

	collectionRepository := collection.CreateRepository(db)
	favoriteRepository := favorite.CreateRepository(db)

	return buildRouter(testConfig, db, authManager, collectionRepository, favoriteRepository), authManager, db
}

// SetupFileStoreTestServer Same wiring with the library domains backed by the
// in-memory storage manager instead of the database. The file store has no
// ownership concept, so the auth layer is mocked to a fixed caller instead of
// issuing real tokens.
func SetupFileStoreTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	testConfig := testConfig(t)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %s", err.Error())
	}

	GenerateTestData(t, db)

	authManager := MockAuthManager{User: auth.AuthenticatedUser{UserId: TestUserOne}}

	storageManager := CreateMockStorageManager()
	collectionRepository := collection.CreateFileRepository(storageManager)
	favoriteRepository := favorite.CreateFileRepository(storageManager)

	return buildRouter(testConfig, db, authManager, collectionRepository, favoriteRepository)
}

func buildRouter(
	testConfig *config.CinelogConfig,
	db *gorm.DB,
	authManager auth.AuthManager,
	collectionRepository collection.Repository,
	favoriteRepository favorite.Repository,
) *gin.Engine {
	libraryUpdateEvent := events.CreateEvent[events.LibraryUpdateData]()

	var (
		tmdbClient   = movie.CreateTmdbClient(testConfig, "")
		movieHandler = movie.CreateHandler(tmdbClient)

		userRepository = user.CreateRepository(db)
		userService    = user.CreateService(userRepository, authManager)
		userHandler    = user.CreateHandler(userService, testConfig)

		collectionService = collection.CreateService(collectionRepository, userRepository, libraryUpdateEvent)
		collectionHandler = collection.CreateHandler(collectionService)

		favoriteService = favorite.CreateService(favoriteRepository, userRepository, libraryUpdateEvent)
		favoriteHandler = favorite.CreateHandler(favoriteService)
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	user.RegisterRoutes(router, userHandler)
	movie.RegisterRoutes(router, movieHandler)
	collection.RegisterRoutes(router, collectionHandler, authManager)
	favorite.RegisterRoutes(router, favoriteHandler, authManager)

	return router
}

func GenerateTestData(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := db.AutoMigrate(
		&user.User{},
		&collection.Collection{},
		&collection.CollectionMovie{},
		&favorite.UserFavorite{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %s", err.Error())
	}

	userOne := user.User{
		UUID: TestUserOne,
		Sub:  "test-sub-1",
		Name: "test-user-one@example.com",
	}
	db.Create(&userOne)

	userTwo := user.User{
		UUID: TestUserTwo,
		Sub:  "test-sub-2",
		Name: "test-user-two@example.com",
	}
	db.Create(&userTwo)

	watchlist := collection.Collection{
		UUID:    utils.GenerateUuid(),
		Name:    "Watchlist",
		OwnerID: userOne.ID,
	}
	db.Create(&watchlist)
	db.Create(&collection.CollectionMovie{CollectionID: watchlist.ID, MovieID: 101})
	db.Create(&collection.CollectionMovie{CollectionID: watchlist.ID, MovieID: 102})

	db.Create(&collection.Collection{
		UUID:        utils.GenerateUuid(),
		Name:        "Classics",
		Description: "Old favorites",
		IsPublic:    true,
		OwnerID:     userOne.ID,
	})

	otherList := collection.Collection{
		UUID:    utils.GenerateUuid(),
		Name:    "Other List",
		OwnerID: userTwo.ID,
	}
	db.Create(&otherList)
	db.Create(&collection.CollectionMovie{CollectionID: otherList.ID, MovieID: 303})

	db.Create(&favorite.UserFavorite{UUID: utils.GenerateUuid(), OwnerID: userOne.ID, MovieID: 101})
	db.Create(&favorite.UserFavorite{UUID: utils.GenerateUuid(), OwnerID: userOne.ID, MovieID: 202})
}

func registerTestUsers(t *testing.T, authManager auth.AuthManager) {
	t.Helper()

	for _, userId := range []string{TestUserOne, TestUserTwo} {
		if _, err := authManager.RegisterTestUser(auth.AuthenticatedUser{UserId: userId}); err != nil {
			t.Fatalf("Failed to register test user: %s", err.Error())
		}
	}
}

func testConfig(t *testing.T) *config.CinelogConfig {
	t.Helper()

	return &config.CinelogConfig{
		Tmdb: config.TmdbConfig{
			ApiUrl:   "https://api.themoviedb.org/3",
			ImageUrl: "https://image.tmdb.org/t/p",
		},
		FileSystem: config.FilesystemConfig{
			Library: t.TempDir(),
			Backup:  t.TempDir(),
		},
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Auth:   config.AuthConfig{EnableNativeAdmin: false},
	}
}
