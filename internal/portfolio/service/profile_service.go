package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/cache"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/validator"
)

// ProfileService reads and upserts the single site profile.
type ProfileService struct {
	store repository.ProfileStore
	cache cache.Cache
	log   zerolog.Logger
}

func NewProfileService(store repository.ProfileStore, c cache.Cache, log zerolog.Logger) *ProfileService {
	if c == nil {
		c = cache.Noop{}
	}
	return &ProfileService{store: store, cache: c, log: log}
}

// Get returns the current profile or domain.ErrNotFound.
func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	return readThrough(ctx, s.cache, s.log, cache.ProfilePrefix, "current", func() (*domain.Profile, error) {
		return s.store.Latest(ctx)
	})
}

// Submit creates the profile on first use and overwrites it afterwards.
// Every optional field not supplied is cleared.
func (s *ProfileService) Submit(ctx context.Context, in domain.ProfileInput) (*domain.Profile, domain.SubmitStatus, error) {
	if err := validator.Profile(in); err != nil {
		return nil, "", err
	}

	p, status, err := s.store.Upsert(ctx, &domain.Profile{
		Name:        in.Name,
		Title:       in.Title,
		Bio:         in.Bio,
		AvatarURL:   domain.Nullable(in.AvatarURL),
		ResumeURL:   domain.Nullable(in.ResumeURL),
		GithubURL:   domain.Nullable(in.GithubURL),
		LinkedinURL: domain.Nullable(in.LinkedinURL),
		Email:       domain.Nullable(in.Email),
		Location:    domain.Nullable(in.Location),
	})
	if err != nil {
		return nil, "", err
	}

	invalidate(ctx, s.cache, s.log, cache.ProfilePrefix)
	return p, status, nil
}
