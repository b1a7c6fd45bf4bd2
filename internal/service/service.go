package service

import (
	"context"
	"errors"

	"github.com/Dan9191/custlysis-dashboard/internal/repository"
	"github.com/Dan9191/custlysis-dashboard/internal/snapshot"
	"github.com/sirupsen/logrus"
)

// Service handles the dashboard's view logic on top of the backend repository
type Service struct {
	repo  *repository.Repository
	store snapshot.Store
	log   *logrus.Logger
}

// NewService initializes a new service
func NewService(repo *repository.Repository, store snapshot.Store, log *logrus.Logger) *Service {
	return &Service{repo: repo, store: store, log: log}
}

// enter discards everything cached for the session. Called whenever a tab is (re)loaded.
func (s *Service) enter(ctx context.Context, session string) {
	if err := s.store.Reset(ctx, session); err != nil {
		s.log.WithError(err).WithField("session", session).Warn("Failed to reset snapshot")
	}
}

// remember stores a freshly fetched collection. Snapshot failures only cost a refetch later.
func (s *Service) remember(ctx context.Context, session, collection string, value any) {
	if err := s.store.Save(ctx, session, collection, value); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"session":    session,
			"collection": collection,
		}).Warn("Failed to save snapshot")
	}
}

// cached returns the session's snapshot of a collection, fetching and saving it when absent
func cached[T any](ctx context.Context, s *Service, session, collection string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var items []T
	err := s.store.Load(ctx, session, collection, &items)
	if err == nil {
		if items == nil {
			items = []T{}
		}
		return items, nil
	}
	if !errors.Is(err, snapshot.ErrMissing) {
		s.log.WithError(err).WithField("collection", collection).Warn("Failed to load snapshot")
	}

	items, err = fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, session, collection, items)
	return items, nil
}
