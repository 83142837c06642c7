package utils

import "errors"

var ErrServer = errors.New("there was a problem processing the request")
var ErrDatabase = errors.New("the data store could not complete the operation")
var ErrValidation = errors.New("the data provided was invalid")
var ErrCollectionNameEmpty = errors.New("collection name is required")
var ErrMovieIdRequired = errors.New("movie id is required")
var ErrMovieIdInvalid = errors.New("invalid movie id")
var ErrImportInvalid = errors.New("the import data provided was invalid")
var ErrInvalidCredentials = errors.New("the credentials provided were invalid")
var ErrUnauthorized = errors.New("authentication is required")
var ErrUserNotFound = errors.New("user not found")
var ErrTokenInvalid = errors.New("the access token provided was invalid")
var ErrCollectionNotFound = errors.New("collection not found")
var ErrFavoriteNotFound = errors.New("favorite not found")
var ErrFavoriteExists = errors.New("movie already in favorites")
var ErrMovieInCollection = errors.New("movie already in collection")
var ErrOpenIDAuthDisabled = errors.New("openid authentication is disabled")
var ErrNativeAuthDisabled = errors.New("native authentication is disabled")
var ErrOpenIDError = errors.New("failed to authenticate with the openid provider")
var ErrFileStorage = errors.New("failed to access the file store")
var ErrRateLimitExceeded = errors.New("rate limit exceeded")
