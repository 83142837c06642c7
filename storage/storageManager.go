package storage

import (
	"cinelogBackend/config"
	"cinelogBackend/utils"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	cp "github.com/otiai10/copy"
)

type (
	// StorageManager Persists the movie library in local JSON files for deployments
	// that run without a database. One file holds the favorite movie ids, one holds
	// the collection objects. The library directory is backed up on startup.
	StorageManager interface {
		ReadFavorites(movieIds *[]int64) error
		WriteFavorites(movieIds []int64) error
		ReadCollections(collections *[]StoredCollection) error
		WriteCollections(collections []StoredCollection) error
	}

	storageManager struct {
		libraryPath string
		backupPath  string
		copyOptions cp.Options
	}

	// StoredCollection The on-disk collection shape. Timestamps serialize as ISO strings.
	StoredCollection struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		IsPublic    bool      `json:"isPublic"`
		Movies      []int64   `json:"movies"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}
)

const favoritesFile = "favorites.json"
const collectionsFile = "collections.json"

func CreateStorageManager(config *config.CinelogConfig) StorageManager {
	storageManager := &storageManager{
		libraryPath: config.FileSystem.Library,
		backupPath:  config.FileSystem.Backup,
		copyOptions: cp.Options{
			Sync: true,
		},
	}

	storageManager.setupDirectories()
	storageManager.backupLibrary()

	return storageManager
}

func (s *storageManager) ReadFavorites(movieIds *[]int64) error {
	return s.read(favoritesFile, movieIds)
}

func (s *storageManager) WriteFavorites(movieIds []int64) error {
	return s.write(favoritesFile, movieIds)
}

func (s *storageManager) ReadCollections(collections *[]StoredCollection) error {
	return s.read(collectionsFile, collections)
}

func (s *storageManager) WriteCollections(collections []StoredCollection) error {
	return s.write(collectionsFile, collections)
}

func (s *storageManager) setupDirectories() {
	if _, err := os.ReadDir(s.libraryPath); err != nil || !utils.IsDirectoryWritable(s.libraryPath) {
		log.Info("Library directory not found. Creating.", "dir", s.libraryPath)
		if err = os.MkdirAll(s.libraryPath, 0750); err != nil {
			log.Fatal("Library directory is not accessible. Exiting.", "dir", s.libraryPath)
			return
		}
	}
}

// backupLibrary Copies the library files aside before anything touches them. The files
// are rewritten whole on every mutation, so a startup copy is the recovery point for
// a store that was corrupted mid-write.
func (s *storageManager) backupLibrary() {
	if err := cp.Copy(s.libraryPath, s.backupPath, s.copyOptions); err != nil {
		log.Warn("Failed to back up library directory.", "dir", s.backupPath, "err", err.Error())
		return
	}

	log.Info("Backed up library directory.", "dir", s.backupPath)
}

func (s *storageManager) read(fileName string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.libraryPath, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			// An absent file is an empty library, not an error.
			return nil
		}
		return utils.ErrFileStorage
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Errorf("Failed to parse library file '%s': %s", fileName, err.Error())
		return utils.ErrFileStorage
	}

	return nil
}

func (s *storageManager) write(fileName string, content any) error {
	data, err := json.Marshal(content)
	if err != nil {
		return utils.ErrFileStorage
	}

	if err := os.WriteFile(filepath.Join(s.libraryPath, fileName), data, 0640); err != nil {
		return utils.ErrFileStorage
	}

	return nil
}
