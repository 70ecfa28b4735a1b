package domain

import "errors"

// ErrProtocolNotFound is returned when a user's protocol cannot be found in the store.
var ErrProtocolNotFound = errors.New("protocol not found")
