// Package credstore is the durable key/value storage behind the auth
// session: the token and the serialized user profile. Both keys are written
// together on a successful authentication and removed together on cleanup.
package credstore

import (
	"context"
	"errors"
)

const (
	TokenKey = "sportMapToken"
	UserKey  = "sportMapUser"
)

var ErrNotFound = errors.New("credstore: key not found")

// Store is the minimal key/value contract every backend implements.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
