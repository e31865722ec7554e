package session

import "errors"

var ErrSessionNotFound = errors.New("session not found")

var ErrPlayerNotFound = errors.New("player not registered in session")

var ErrInvalidSession = errors.New("invalid session")

var ErrInvalidStatus = errors.New("invalid session status")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
