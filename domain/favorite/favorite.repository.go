package favorite

import (
	"cinelogBackend/utils"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// Repository Access to a user's favorited movies. Implemented by the database
	// store and the file store.
	Repository interface {
		GetByOwner(ctx context.Context, ownerId uint) ([]int64, error)
		Exists(ctx context.Context, ownerId uint, movieId int64) (bool, error)
		Add(ctx context.Context, favorite *UserFavorite) error
		Remove(ctx context.Context, ownerId uint, movieId int64) error
		Toggle(ctx context.Context, favorite *UserFavorite) (bool, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func CreateRepository(db *gorm.DB) Repository {
	return &favoriteRepository{
		db: db,
	}
}

func (r *favoriteRepository) GetByOwner(ctx context.Context, ownerId uint) ([]int64, error) {
	movieIds := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&UserFavorite{}).
		Where("owner_id = ?", ownerId).
		Order("created_at DESC").
		Pluck("movie_id", &movieIds).Error

	if err != nil {
		return nil, utils.ErrDatabase
	}

	return movieIds, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, ownerId uint, movieId int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserFavorite{}).
		Where("owner_id = ? AND movie_id = ?", ownerId, movieId).
		Count(&count).Error

	if err != nil {
		return false, utils.ErrDatabase
	}

	return count > 0, nil
}

func (r *favoriteRepository) Add(ctx context.Context, favorite *UserFavorite) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(favorite).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrFavoriteExists
	}
	if err != nil {
		return utils.ErrDatabase
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, ownerId uint, movieId int64) error {
	// Removing an absent favorite is not an error.
	err := r.db.WithContext(ctx).Unscoped().
		Where("owner_id = ? AND movie_id = ?", ownerId, movieId).
		Delete(&UserFavorite{}).Error

	if err != nil {
		return utils.ErrDatabase
	}

	return nil
}

// Toggle Flips the favorite state in a single transaction and reports the resulting
// state. Concurrent toggles of the same movie serialize on the unique owner and
// movie index instead of racing a separate read.
func (r *favoriteRepository) Toggle(ctx context.Context, favorite *UserFavorite) (bool, error) {
	isFavorite := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().
			Where("owner_id = ? AND movie_id = ?", favorite.OwnerID, favorite.MovieID).
			Delete(&UserFavorite{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			return nil
		}

		isFavorite = true
		return tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(favorite).Error
	})
	if err != nil {
		return false, utils.ErrDatabase
	}

	return isFavorite, nil
}
