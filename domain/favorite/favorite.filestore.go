package favorite

import (
	"cinelogBackend/storage"
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// fileFavoriteRepository Keeps the favorite list in a local JSON file. Single-user,
// so owner arguments are ignored and adds are idempotent.
type fileFavoriteRepository struct {
	storageManager storage.StorageManager
	mutex          sync.Mutex
}

func CreateFileRepository(storageManager storage.StorageManager) Repository {
	return &fileFavoriteRepository{
		storageManager: storageManager,
	}
}

func (r *fileFavoriteRepository) GetByOwner(ctx context.Context, ownerId uint) ([]int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.load()
}

func (r *fileFavoriteRepository) Exists(ctx context.Context, ownerId uint, movieId int64) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	movieIds, err := r.load()
	if err != nil {
		return false, err
	}

	return slices.Contains(movieIds, movieId), nil
}

func (r *fileFavoriteRepository) Add(ctx context.Context, favorite *UserFavorite) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	movieIds, err := r.load()
	if err != nil {
		return err
	}

	if slices.Contains(movieIds, favorite.MovieID) {
		return nil
	}

	return r.storageManager.WriteFavorites(append(movieIds, favorite.MovieID))
}

func (r *fileFavoriteRepository) Remove(ctx context.Context, ownerId uint, movieId int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	movieIds, err := r.load()
	if err != nil {
		return err
	}

	remaining := lo.Reject(movieIds, func(id int64, _ int) bool {
		return id == movieId
	})

	return r.storageManager.WriteFavorites(remaining)
}

func (r *fileFavoriteRepository) Toggle(ctx context.Context, favorite *UserFavorite) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	movieIds, err := r.load()
	if err != nil {
		return false, err
	}

	if slices.Contains(movieIds, favorite.MovieID) {
		remaining := lo.Reject(movieIds, func(id int64, _ int) bool {
			return id == favorite.MovieID
		})
		return false, r.storageManager.WriteFavorites(remaining)
	}

	return true, r.storageManager.WriteFavorites(append(movieIds, favorite.MovieID))
}

func (r *fileFavoriteRepository) load() ([]int64, error) {
	movieIds := make([]int64, 0)
	if err := r.storageManager.ReadFavorites(&movieIds); err != nil {
		return nil, err
	}

	return movieIds, nil
}
