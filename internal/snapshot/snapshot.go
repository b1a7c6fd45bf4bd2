// Package snapshot keeps the last fetched collection per tab for a browser session.
// A snapshot lives until the session navigates to another tab or the TTL expires.
package snapshot

import (
	"context"
	"errors"
)

// ErrMissing is returned by Load when no snapshot exists for the session and collection.
var ErrMissing = errors.New("snapshot missing")

// Store saves and loads JSON-encodable collections keyed by session and collection name.
type Store interface {
	Save(ctx context.Context, session, collection string, value any) error
	Load(ctx context.Context, session, collection string, out any) error
	Reset(ctx context.Context, session string) error
	Close() error
}
