package collection

import (
	"cinelogBackend/auth"
	"cinelogBackend/domain/user"
	"cinelogBackend/events"
	"cinelogBackend/utils"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/xeipuuv/gojsonschema"
)

type (
	Service interface {
		Get(ctx *gin.Context, authUser auth.AuthenticatedUser) ([]CollectionOut, error)
		GetByUuid(ctx *gin.Context, collectionId string, authUser auth.AuthenticatedUser) (*CollectionOut, error)
		Create(ctx *gin.Context, req CollectionIn, authUser auth.AuthenticatedUser) (*CollectionOut, error)
		Update(ctx *gin.Context, req CollectionUpdateIn, collectionId string, authUser auth.AuthenticatedUser) (*CollectionOut, error)
		Delete(ctx *gin.Context, collectionId string, authUser auth.AuthenticatedUser) error
		AddMovie(ctx *gin.Context, collectionId string, movieId int64, authUser auth.AuthenticatedUser) error
		RemoveMovie(ctx *gin.Context, collectionId string, movieId int64, authUser auth.AuthenticatedUser) error
		HasMovie(ctx *gin.Context, collectionId string, movieId int64, authUser auth.AuthenticatedUser) (bool, error)
		Export(ctx *gin.Context, collectionId string, authUser auth.AuthenticatedUser) (string, error)
		Import(ctx *gin.Context, req ImportIn, authUser auth.AuthenticatedUser) (*CollectionOut, error)
	}

	collectionService struct {
		collectionRepo Repository
		userRepo       user.Repository
		updateEvent    events.Event[events.LibraryUpdateData]
		importSchema   gojsonschema.JSONLoader
	}
)

// importSchemaDefinition Shape of a shared collection document after base64 decoding.
const importSchemaDefinition = `{
	"type": "object",
	"required": ["name", "movies"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"movies": {"type": "array", "items": {"type": "integer", "minimum": 1}},
		"createdAt": {"type": "string"}
	}
}`

func CreateService(
	collectionRepo Repository,
	userRepo user.Repository,
	updateEvent events.Event[events.LibraryUpdateData],
) Service {
	return &collectionService{
		collectionRepo: collectionRepo,
		userRepo:       userRepo,
		updateEvent:    updateEvent,
		importSchema:   gojsonschema.NewStringLoader(importSchemaDefinition),
	}
}

func (s *collectionService) Get(ctx *gin.Context, authUser auth.AuthenticatedUser) ([]CollectionOut, error) {
	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return nil, err
	}

	collections, err := s.collectionRepo.GetByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	return lo.Map(collections, func(collection Collection, _ int) CollectionOut {
		return toOut(&collection)
	}), nil
}

func (s *collectionService) GetByUuid(ctx *gin.Context, collectionId string, authUser auth.AuthenticatedUser) (*CollectionOut, error) {
	collection, err := s.fetchOwned(ctx, collectionId, authUser)
	if err != nil {
		return nil, err
	}

	result := toOut(collection)
	return &result, nil
}

func (s *collectionService) Create(ctx *gin.Context, req CollectionIn, authUser auth.AuthenticatedUser) (*CollectionOut, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, utils.ErrCollectionNameEmpty
	}

	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return nil, err
	}

	collection := &Collection{
		UUID:        utils.GenerateUuid(),
		Name:        name,
		Description: trimmed(req.Description),
		IsPublic:    req.IsPublic != nil && *req.IsPublic,
		OwnerID:     owner.ID,
	}

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}

	s.dispatch(authUser, events.ActionAdded, collection.UUID, 0)

	result := toOut(collection)
	return &result, nil
}

func (s *collectionService) Update(ctx *gin.Context, req CollectionUpdateIn, collectionId string, authUser auth.AuthenticatedUser) (*CollectionOut, error) {
	collection, err := s.fetchOwned(ctx, collectionId, authUser)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, utils.ErrCollectionNameEmpty
		}
		collection.Name = name
	}
	if req.Description != nil {
		collection.Description = strings.TrimSpace(*req.Description)
	}
	if req.IsPublic != nil {
		collection.IsPublic = *req.IsPublic
	}
	collection.UpdatedAt = time.Now()

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		return nil, err
	}

	s.dispatch(authUser, events.ActionUpdated, collection.UUID, 0)

	result := toOut(collection)
	return &result, nil
}

func (s *collectionService) Delete(ctx *gin.Context, collectionId string, authUser auth.AuthenticatedUser) error {
	collection, err := s.fetchOwned(ctx, collectionId, authUser)
	if err != nil {
		return err
	}

	if err := s.collectionRepo.Delete(ctx, collection); err != nil {
		return err
	}

	s.dispatch(authUser, events.ActionRemoved, collection.UUID, 0)

	return nil
}

func (s *collectionService) AddMovie(ctx *gin.Context, collectionId string, movieId int64, authUser auth.AuthenticatedUser) error {
	collection, err := s.fetchOwned(ctx, collectionId, authUser)
	if err != nil {
		return err
	}

	if err := s.collectionRepo.AddMovie(ctx, collection, movieId); err != nil {
		return err
	}

	s.dispatch(authUser, events.ActionAdded, collection.UUID, movieId)

	return nil
}

func (s *collectionService) RemoveMovie(ctx *gin.Context, collectionId string, movieId int64, authUser auth.AuthenticatedUser) error {
	collection, err := s.fetchOwned(ctx, collectionId, authUser)
	if err != nil {
		return err
	}

	if err := s.collectionRepo.RemoveMovie(ctx, collection, movieId); err != nil {
		return err
	}

	s.dispatch(authUser, events.ActionRemoved, collection.UUID, movieId)

	return nil
}

func (s *collectionService) HasMovie(ctx *gin.Context, collectionId string, movieId int64, authUser auth.AuthenticatedUser) (bool, error) {
	collection, err := s.fetchOwned(ctx, collectionId, authUser)
	if err != nil {
		return false, err
	}

	return s.collectionRepo.HasMovie(ctx, collection, movieId)
}

func (s *collectionService) Export(ctx *gin.Context, collectionId string, authUser auth.AuthenticatedUser) (string, error) {
	collection, err := s.fetchOwned(ctx, collectionId, authUser)
	if err != nil {
		return "", err
	}

	document := exportDocument{
		Name:        collection.Name,
		Description: collection.Description,
		Movies: lo.Map(collection.Movies, func(movie CollectionMovie, _ int) int64 {
			return movie.MovieID
		}),
		CreatedAt: collection.CreatedAt.Format(time.RFC3339),
	}

	data, err := json.Marshal(document)
	if err != nil {
		return "", utils.ErrServer
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// Import Decodes a shared collection document and creates a new collection from it.
// Imports never merge into an existing collection; the name is suffixed so the copy
// is recognizable.
func (s *collectionService) Import(ctx *gin.Context, req ImportIn, authUser auth.AuthenticatedUser) (*CollectionOut, error) {
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, utils.ErrImportInvalid
	}

	validation, err := gojsonschema.Validate(s.importSchema, gojsonschema.NewBytesLoader(data))
	if err != nil || !validation.Valid() {
		return nil, utils.ErrImportInvalid
	}

	document := exportDocument{}
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, utils.ErrImportInvalid
	}

	created, err := s.Create(ctx, CollectionIn{
		Name:        document.Name + " (Imported)",
		Description: &document.Description,
	}, authUser)
	if err != nil {
		return nil, err
	}

	for _, movieId := range document.Movies {
		if err := s.AddMovie(ctx, created.ID, movieId, authUser); err != nil && !errors.Is(err, utils.ErrMovieInCollection) {
			return nil, err
		}
	}

	return s.GetByUuid(ctx, created.ID, authUser)
}

// fetchOwned The shared ownership guard: resolves the caller and fetches the collection
// filtered by id and owner. A collection that exists but belongs to someone else is
// indistinguishable from one that does not exist.
func (s *collectionService) fetchOwned(ctx *gin.Context, collectionId string, authUser auth.AuthenticatedUser) (*Collection, error) {
	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return nil, err
	}

	return s.collectionRepo.GetByUuid(ctx, collectionId, owner.ID)
}

func (s *collectionService) dispatch(authUser auth.AuthenticatedUser, action events.LibraryAction, collectionId string, movieId int64) {
	s.updateEvent.Dispatch(events.LibraryUpdateData{
		Scope:        events.ScopeCollections,
		Action:       action,
		UserId:       authUser.UserId,
		CollectionId: collectionId,
		MovieId:      movieId,
		Timestamp:    time.Now(),
	})
}

func toOut(collection *Collection) CollectionOut {
	movies := lo.Map(collection.Movies, func(movie CollectionMovie, _ int) int64 {
		return movie.MovieID
	})

	return CollectionOut{
		ID:          collection.UUID,
		Name:        collection.Name,
		Description: collection.Description,
		IsPublic:    collection.IsPublic,
		CreatedAt:   collection.CreatedAt,
		UpdatedAt:   collection.UpdatedAt,
		Movies:      movies,
		MovieCount:  len(movies),
	}
}

func trimmed(value *string) string {
	if value == nil {
		return ""
	}

	return strings.TrimSpace(*value)
}
