package favorite

import (
	"cinelogBackend/domain/user"

	"gorm.io/gorm"
)

// UserFavorite One favorited movie per row. The owner and movie pair is unique so a
// movie can be favorited at most once per user.
type UserFavorite struct {
	gorm.Model
	UUID    string `gorm:"uniqueIndex"`
	Owner   user.User
	OwnerID uint  `gorm:"uniqueIndex:idx_owner_movie"`
	MovieID int64 `gorm:"uniqueIndex:idx_owner_movie"`
}

type FavoriteIn struct {
	MovieID *int64 `json:"movieId"`
}

type ListOut struct {
	Favorites []int64 `json:"favorites"`
}

type StatusOut struct {
	IsFavorite bool `json:"isFavorite"`
}

type AddOut struct {
	Success  bool  `json:"success"`
	Favorite int64 `json:"favorite"`
}

type ToggleOut struct {
	Success    bool `json:"success"`
	IsFavorite bool `json:"isFavorite"`
}
