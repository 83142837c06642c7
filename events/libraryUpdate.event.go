package events

import (
	"time"
)

type LibraryScope string

const (
	ScopeFavorites   LibraryScope = "favorites"
	ScopeCollections LibraryScope = "collections"
)

type LibraryAction string

const (
	ActionAdded   LibraryAction = "added"
	ActionRemoved LibraryAction = "removed"
	ActionUpdated LibraryAction = "updated"
)

// LibraryUpdateData Describes a mutation of a user's movie library. Dispatched by the
// collection and favorite services and forwarded to the owning user's other sessions
// over the library-updates socket namespace.
type LibraryUpdateData struct {
	Scope        LibraryScope  `json:"scope"`
	Action       LibraryAction `json:"action"`
	UserId       string        `json:"-"`
	CollectionId string        `json:"collectionId,omitempty"`
	MovieId      int64         `json:"movieId,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}
