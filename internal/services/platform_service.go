package services

import (
	"context"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/platform"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
)

// PlatformService manages the singleton platform settings
type PlatformService struct {
	repo platform.Repository
	log  *logger.Logger
}

// NewPlatformService creates a new platform service
func NewPlatformService(repo platform.Repository, log *logger.Logger) *PlatformService {
	return &PlatformService{repo: repo, log: log}
}

// Get retrieves the current settings
func (s *PlatformService) Get(ctx context.Context) (*platform.Settings, error) {
	return s.repo.Get(ctx)
}

// Update replaces the settings
func (s *PlatformService) Update(ctx context.Context, settings *platform.Settings) (*platform.Settings, error) {
	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, err
	}
	s.log.Info("platform settings updated")
	return settings, nil
}
