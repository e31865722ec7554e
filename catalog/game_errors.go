package catalog

import "errors"

var ErrGameNotFound = errors.New("game not found")

var ErrInvalidGame = errors.New("invalid game")
