package favorite

import (
	"cinelogBackend/auth"
	"cinelogBackend/domain/user"
	"cinelogBackend/events"
	"cinelogBackend/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type (
	Service interface {
		Get(ctx *gin.Context, authUser auth.AuthenticatedUser) ([]int64, error)
		IsFavorite(ctx *gin.Context, movieId int64, authUser auth.AuthenticatedUser) (bool, error)
		Add(ctx *gin.Context, movieId int64, authUser auth.AuthenticatedUser) error
		Remove(ctx *gin.Context, movieId int64, authUser auth.AuthenticatedUser) error
		Toggle(ctx *gin.Context, movieId int64, authUser auth.AuthenticatedUser) (bool, error)
	}

	favoriteService struct {
		favoriteRepo Repository
		userRepo     user.Repository
		updateEvent  events.Event[events.LibraryUpdateData]
	}
)

func CreateService(
	favoriteRepo Repository,
	userRepo user.Repository,
	updateEvent events.Event[events.LibraryUpdateData],
) Service {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		updateEvent:  updateEvent,
	}
}

func (s *favoriteService) Get(ctx *gin.Context, authUser auth.AuthenticatedUser) ([]int64, error) {
	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return nil, err
	}

	return s.favoriteRepo.GetByOwner(ctx, owner.ID)
}

func (s *favoriteService) IsFavorite(ctx *gin.Context, movieId int64, authUser auth.AuthenticatedUser) (bool, error) {
	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return false, err
	}

	return s.favoriteRepo.Exists(ctx, owner.ID, movieId)
}

func (s *favoriteService) Add(ctx *gin.Context, movieId int64, authUser auth.AuthenticatedUser) error {
	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return err
	}

	err = s.favoriteRepo.Add(ctx, &UserFavorite{
		UUID:    utils.GenerateUuid(),
		OwnerID: owner.ID,
		MovieID: movieId,
	})
	if err != nil {
		return err
	}

	s.dispatch(authUser, events.ActionAdded, movieId)

	return nil
}

func (s *favoriteService) Remove(ctx *gin.Context, movieId int64, authUser auth.AuthenticatedUser) error {
	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return err
	}

	if err := s.favoriteRepo.Remove(ctx, owner.ID, movieId); err != nil {
		return err
	}

	s.dispatch(authUser, events.ActionRemoved, movieId)

	return nil
}

func (s *favoriteService) Toggle(ctx *gin.Context, movieId int64, authUser auth.AuthenticatedUser) (bool, error) {
	owner, err := s.userRepo.GetByUuid(ctx, authUser.UserId)
	if err != nil {
		return false, err
	}

	isFavorite, err := s.favoriteRepo.Toggle(ctx, &UserFavorite{
		UUID:    utils.GenerateUuid(),
		OwnerID: owner.ID,
		MovieID: movieId,
	})
	if err != nil {
		return false, err
	}

	if isFavorite {
		s.dispatch(authUser, events.ActionAdded, movieId)
	} else {
		s.dispatch(authUser, events.ActionRemoved, movieId)
	}

	return isFavorite, nil
}

func (s *favoriteService) dispatch(authUser auth.AuthenticatedUser, action events.LibraryAction, movieId int64) {
	s.updateEvent.Dispatch(events.LibraryUpdateData{
		Scope:     events.ScopeFavorites,
		Action:    action,
		UserId:    authUser.UserId,
		MovieId:   movieId,
		Timestamp: time.Now(),
	})
}
