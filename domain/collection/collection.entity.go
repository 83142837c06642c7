package collection

import (
	"cinelogBackend/domain/user"
	"time"

	"gorm.io/gorm"
)

type Collection struct {
	gorm.Model
	UUID        string `gorm:"uniqueIndex"`
	Name        string
	Description string
	IsPublic    bool
	Owner       user.User
	OwnerID     uint
	Movies      []CollectionMovie
}

type CollectionMovie struct {
	gorm.Model
	CollectionID uint  `gorm:"uniqueIndex:idx_collection_movie"`
	MovieID      int64 `gorm:"uniqueIndex:idx_collection_movie"`
}

type CollectionIn struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

// CollectionUpdateIn Partial update payload. Only fields that are present are merged.
type CollectionUpdateIn struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

type CollectionMovieIn struct {
	MovieID *int64 `json:"movieId"`
}

type ImportIn struct {
	Data string `json:"data"`
}

type CollectionOut struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Movies      []int64   `json:"movies"`
	MovieCount  int       `json:"movieCount"`
}

type ListOut struct {
	Collections []CollectionOut `json:"collections"`
}

type ItemOut struct {
	Collection CollectionOut `json:"collection"`
}

type ExportOut struct {
	Export string `json:"export"`
}

type MovieStatusOut struct {
	IsInCollection bool `json:"isInCollection"`
}

// exportDocument The shareable collection format: base64-encoded JSON with an ISO timestamp.
type exportDocument struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Movies      []int64 `json:"movies"`
	CreatedAt   string  `json:"createdAt"`
}
