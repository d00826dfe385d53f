package services

import (
	"context"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/preference"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
)

// PreferenceService manages per-user preferences with lazy defaults
type PreferenceService struct {
	repo preference.Repository
	log  *logger.Logger
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(repo preference.Repository, log *logger.Logger) *PreferenceService {
	return &PreferenceService{repo: repo, log: log}
}

// Get returns a user's preferences, materializing the defaults on
// first read so later updates have a record to start from.
func (s *PreferenceService) Get(ctx context.Context, userID int64) (*preference.Preferences, error) {
	prefs, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = preference.Default(userID)
		if err := s.repo.Upsert(ctx, prefs); err != nil {
			return nil, err
		}
	}
	return prefs, nil
}

// Update replaces a user's preferences
func (s *PreferenceService) Update(ctx context.Context, prefs *preference.Preferences) (*preference.Preferences, error) {
	if err := s.repo.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
