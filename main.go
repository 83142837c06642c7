package main

import (
	"cinelogBackend/auth"
	"cinelogBackend/config"
	"cinelogBackend/domain/collection"
	"cinelogBackend/domain/favorite"
	"cinelogBackend/domain/movie"
	"cinelogBackend/domain/user"
	"cinelogBackend/events"
	"cinelogBackend/socket"
	"cinelogBackend/storage"
	"cinelogBackend/utils"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	socketio "github.com/zishang520/socket.io/socket"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables from .env file if present
	_ = godotenv.Load()

	cmdArgs := utils.ParseArguments()
	isDevMode := *cmdArgs.DevelopmentMode

	log.SetTimeFormat("[2006-01-02 15:04:05]")

	if isDevMode {
		log.SetReportCaller(true)
	}

	cinelogConfig := config.Load(*cmdArgs.ConfigFile)
	authManager := auth.CreateAuthManager(cinelogConfig)

	db := connectToDatabase(*cmdArgs.UseLocalDatabase || *cmdArgs.UseFileStore, cinelogConfig)
	migrateDatabase(db)

	socketManager := socket.CreateSocketManager(authManager)
	updateNamespace := socket.CreateUpdateNamespace(socketManager)

	libraryUpdateEvent := events.CreateEvent[events.LibraryUpdateData]()

	collectionRepository, favoriteRepository := createRepositories(*cmdArgs.UseFileStore, db, cinelogConfig)

	var (
		tmdbClient   = movie.CreateTmdbClient(cinelogConfig, os.Getenv("CL_TMDB_API_KEY"))
		movieHandler = movie.CreateHandler(tmdbClient)

		userRepository = user.CreateRepository(db)
		userService    = user.CreateService(userRepository, authManager)
		userHandler    = user.CreateHandler(userService, cinelogConfig)

		collectionService = collection.CreateService(collectionRepository, userRepository, libraryUpdateEvent)
		collectionHandler = collection.CreateHandler(collectionService)

		favoriteService = favorite.CreateService(favoriteRepository, userRepository, libraryUpdateEvent)
		favoriteHandler = favorite.CreateHandler(favoriteService)
	)

	forwardLibraryUpdates := func(msg events.LibraryUpdateData) {
		updateNamespace.SendToUser(msg, msg.UserId)
	}
	libraryUpdateEvent.Subscribe(&forwardLibraryUpdates)

	gin.SetMode(gin.ReleaseMode)
	webServer := gin.Default()

	if cinelogConfig.Limiter.Enabled {
		webServer.Use(utils.RateLimiterMiddleware(cinelogConfig.Limiter.RequestsPerSecond, cinelogConfig.Limiter.Burst))
	}

	// Public endpoints
	user.RegisterRoutes(webServer, userHandler)
	movie.RegisterRoutes(webServer, movieHandler)

	// Authenticated endpoints
	collection.RegisterRoutes(webServer, collectionHandler, authManager)
	favorite.RegisterRoutes(webServer, favoriteHandler, authManager)

	// Register Socket.IO endpoints
	c := socketio.DefaultServerOptions()
	webServer.GET("/socket.io/*any", gin.WrapH(socketManager.Server().ServeHandler(c)))
	webServer.POST("/socket.io/*any", gin.WrapH(socketManager.Server().ServeHandler(c)))

	var serverWaitGroup sync.WaitGroup
	connection := fmt.Sprintf("%s:%d", cinelogConfig.Server.Host, cinelogConfig.Server.Port)

	serverWaitGroup.Add(1)
	go startWebServer(webServer, connection, &serverWaitGroup)

	log.Info("Cinelog API is ready to serve calls!", "conn", connection)
	serverWaitGroup.Wait()
}

// createRepositories Selects the persistence backend for the library domains. The file
// store keeps favorites and collections in local JSON files for single-user setups;
// users always live in the database.
func createRepositories(useFileStore bool, db *gorm.DB, cinelogConfig *config.CinelogConfig) (collection.Repository, favorite.Repository) {
	if useFileStore {
		log.Info("Using file-backed library store", "dir", cinelogConfig.FileSystem.Library)
		storageManager := storage.CreateStorageManager(cinelogConfig)

		return collection.CreateFileRepository(storageManager), favorite.CreateFileRepository(storageManager)
	}

	return collection.CreateRepository(db), favorite.CreateRepository(db)
}

func connectToDatabase(useLocalDatabase bool, config *config.CinelogConfig) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	// TranslateError turns driver-specific duplicate key errors into
	// gorm.ErrDuplicatedKey on both sqlite and postgres.
	gormConfig := &gorm.Config{TranslateError: true}

	if useLocalDatabase {
		log.Info("Connecting to local SQLite database", "path", config.Database.LocalFile)

		db, err = gorm.Open(sqlite.Open(config.Database.LocalFile), gormConfig)
	} else {
		connection := fmt.Sprintf("%s@%s:%d/%s", config.Database.User, config.Database.Host, config.Database.Port, config.Database.Database)
		log.Info("Connecting to remote PostgreSQL database", "conn", connection)

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d",
			config.Database.Host,
			config.Database.User,
			os.Getenv("CL_DATABASE_PASSWORD"),
			config.Database.Database,
			config.Database.Port,
		)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	}

	if err != nil {
		log.Fatalf("Failed to connect to database: %s", err.Error())
		os.Exit(1)
	}

	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&user.User{},
		&collection.Collection{},
		&collection.CollectionMovie{},
		&favorite.UserFavorite{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %s", err.Error())
		os.Exit(1)
	}
}

func startWebServer(server *gin.Engine, socket string, waitGroup *sync.WaitGroup) {
	defer waitGroup.Done()

	if err := server.Run(socket); err != nil {
		log.Fatalf("Failed to start web server on %s: %s", socket, err.Error())
	}
}
