package collection

import (
	"cinelogBackend/utils"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// Repository Table-level access to collections and their movies. Every read and
	// mutation is filtered by the owning user; a miss never reveals whether the row
	// exists for someone else. Implemented by the database store and the file store.
	Repository interface {
		GetByOwner(ctx context.Context, ownerId uint) ([]Collection, error)
		GetByUuid(ctx context.Context, collectionId string, ownerId uint) (*Collection, error)
		Create(ctx context.Context, collection *Collection) error
		Update(ctx context.Context, collection *Collection) error
		Delete(ctx context.Context, collection *Collection) error
		AddMovie(ctx context.Context, collection *Collection, movieId int64) error
		RemoveMovie(ctx context.Context, collection *Collection, movieId int64) error
		HasMovie(ctx context.Context, collection *Collection, movieId int64) (bool, error)
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func CreateRepository(db *gorm.DB) Repository {
	return &collectionRepository{
		db: db,
	}
}

func (r *collectionRepository) GetByOwner(ctx context.Context, ownerId uint) ([]Collection, error) {
	collections := make([]Collection, 0)
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerId).
		Preload("Movies").
		Order("created_at DESC").
		Find(&collections)

	if result.Error != nil {
		return nil, utils.ErrDatabase
	}

	return collections, nil
}

func (r *collectionRepository) GetByUuid(ctx context.Context, collectionId string, ownerId uint) (*Collection, error) {
	collection := &Collection{}
	result := r.db.WithContext(ctx).
		Where("uuid = ? AND owner_id = ?", collectionId, ownerId).
		Preload("Movies").
		First(collection)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, utils.ErrCollectionNotFound
	}
	if result.Error != nil {
		return nil, utils.ErrDatabase
	}

	return collection, nil
}

func (r *collectionRepository) Create(ctx context.Context, collection *Collection) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(collection).Error; err != nil {
		return utils.ErrDatabase
	}

	return nil
}

func (r *collectionRepository) Update(ctx context.Context, collection *Collection) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(collection).Error; err != nil {
		return utils.ErrDatabase
	}

	return nil
}

// Delete Removes the collection and its movie rows in one transaction. The store is
// not relied on for cascading deletes.
func (r *collectionRepository) Delete(ctx context.Context, collection *Collection) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("collection_id = ?", collection.ID).
			Delete(&CollectionMovie{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(collection).Error
	})
	if err != nil {
		return utils.ErrDatabase
	}

	return nil
}

func (r *collectionRepository) AddMovie(ctx context.Context, collection *Collection, movieId int64) error {
	err := r.db.WithContext(ctx).Create(&CollectionMovie{
		CollectionID: collection.ID,
		MovieID:      movieId,
	}).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrMovieInCollection
	}
	if err != nil {
		return utils.ErrDatabase
	}

	return nil
}

func (r *collectionRepository) RemoveMovie(ctx context.Context, collection *Collection, movieId int64) error {
	// Removing an absent movie is not an error.
	err := r.db.WithContext(ctx).Unscoped().
		Where("collection_id = ? AND movie_id = ?", collection.ID, movieId).
		Delete(&CollectionMovie{}).Error

	if err != nil {
		return utils.ErrDatabase
	}

	return nil
}

func (r *collectionRepository) HasMovie(ctx context.Context, collection *Collection, movieId int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CollectionMovie{}).
		Where("collection_id = ? AND movie_id = ?", collection.ID, movieId).
		Count(&count).Error

	if err != nil {
		return false, utils.ErrDatabase
	}

	return count > 0, nil
}
