package collection

import (
	"cinelogBackend/storage"
	"cinelogBackend/utils"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
)

// fileCollectionRepository Keeps collections in a local JSON file instead of the
// database. Made for single-user deployments without a backend database; there is
// no ownership concept, so owner arguments are ignored. Data is not synchronized
// with the database store.
type fileCollectionRepository struct {
	storageManager storage.StorageManager
	mutex          sync.Mutex
}

func CreateFileRepository(storageManager storage.StorageManager) Repository {
	return &fileCollectionRepository{
		storageManager: storageManager,
	}
}

func (r *fileCollectionRepository) GetByOwner(ctx context.Context, ownerId uint) ([]Collection, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored, err := r.load()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(stored, func(a storage.StoredCollection, b storage.StoredCollection) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return lo.Map(stored, func(item storage.StoredCollection, _ int) Collection {
		return fromStored(item)
	}), nil
}

func (r *fileCollectionRepository) GetByUuid(ctx context.Context, collectionId string, ownerId uint) (*Collection, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, item := range stored {
		if item.ID == collectionId {
			collection := fromStored(item)
			return &collection, nil
		}
	}

	return nil, utils.ErrCollectionNotFound
}

func (r *fileCollectionRepository) Create(ctx context.Context, collection *Collection) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}

	// Locally unique id only: millisecond timestamp plus a random suffix.
	collection.UUID = fmt.Sprintf("%d%09d", time.Now().UnixMilli(), rand.IntN(1_000_000_000))
	collection.CreatedAt = time.Now()
	collection.UpdatedAt = collection.CreatedAt

	return r.storageManager.WriteCollections(append(stored, toStored(collection)))
}

func (r *fileCollectionRepository) Update(ctx context.Context, collection *Collection) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	collection.UpdatedAt = time.Now()

	return r.replace(collection.UUID, func(item storage.StoredCollection) storage.StoredCollection {
		updated := toStored(collection)
		updated.Movies = item.Movies
		return updated
	})
}

func (r *fileCollectionRepository) Delete(ctx context.Context, collection *Collection) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored, err := r.load()
	if err != nil {
		return err
	}

	remaining := lo.Reject(stored, func(item storage.StoredCollection, _ int) bool {
		return item.ID == collection.UUID
	})

	return r.storageManager.WriteCollections(remaining)
}

func (r *fileCollectionRepository) AddMovie(ctx context.Context, collection *Collection, movieId int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// Duplicate adds are swallowed, the local store add is idempotent.
	return r.replace(collection.UUID, func(item storage.StoredCollection) storage.StoredCollection {
		if !slices.Contains(item.Movies, movieId) {
			item.Movies = append(item.Movies, movieId)
		}
		return item
	})
}

func (r *fileCollectionRepository) RemoveMovie(ctx context.Context, collection *Collection, movieId int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.replace(collection.UUID, func(item storage.StoredCollection) storage.StoredCollection {
		item.Movies = lo.Reject(item.Movies, func(id int64, _ int) bool {
			return id == movieId
		})
		return item
	})
}

func (r *fileCollectionRepository) HasMovie(ctx context.Context, collection *Collection, movieId int64) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored, err := r.load()
	if err != nil {
		return false, err
	}

	for _, item := range stored {
		if item.ID == collection.UUID {
			return slices.Contains(item.Movies, movieId), nil
		}
	}

	return false, utils.ErrCollectionNotFound
}

func (r *fileCollectionRepository) load() ([]storage.StoredCollection, error) {
	stored := make([]storage.StoredCollection, 0)
	if err := r.storageManager.ReadCollections(&stored); err != nil {
		return nil, err
	}

	return stored, nil
}

func (r *fileCollectionRepository) replace(collectionId string, apply func(storage.StoredCollection) storage.StoredCollection) error {
	stored, err := r.load()
	if err != nil {
		return err
	}

	found := false
	for i, item := range stored {
		if item.ID == collectionId {
			stored[i] = apply(item)
			found = true
			break
		}
	}

	if !found {
		return utils.ErrCollectionNotFound
	}

	return r.storageManager.WriteCollections(stored)
}

func toStored(collection *Collection) storage.StoredCollection {
	return storage.StoredCollection{
		ID:          collection.UUID,
		Name:        collection.Name,
		Description: collection.Description,
		IsPublic:    collection.IsPublic,
		Movies: lo.Map(collection.Movies, func(movie CollectionMovie, _ int) int64 {
			return movie.MovieID
		}),
		CreatedAt: collection.CreatedAt,
		UpdatedAt: collection.UpdatedAt,
	}
}

func fromStored(item storage.StoredCollection) Collection {
	collection := Collection{
		UUID:        item.ID,
		Name:        item.Name,
		Description: item.Description,
		IsPublic:    item.IsPublic,
		Movies: lo.Map(item.Movies, func(movieId int64, _ int) CollectionMovie {
			return CollectionMovie{MovieID: movieId}
		}),
	}
	collection.CreatedAt = item.CreatedAt
	collection.UpdatedAt = item.UpdatedAt

	return collection
}
