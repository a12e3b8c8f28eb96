package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/cache"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/validator"
)

// ExperienceService lists and creates work and education entries.
type ExperienceService struct {
	store repository.ExperienceStore
	cache cache.Cache
	log   zerolog.Logger
}

func NewExperienceService(store repository.ExperienceStore, c cache.Cache, log zerolog.Logger) *ExperienceService {
	if c == nil {
		c = cache.Noop{}
	}
	return &ExperienceService{store: store, cache: c, log: log}
}

// List returns entries by start date, latest first. A type outside work/education
// simply matches nothing and bypasses the cache.
func (s *ExperienceService) List(ctx context.Context, f domain.ExperienceFilter) ([]domain.Experience, error) {
	load := func() ([]domain.Experience, error) {
		return s.store.List(ctx, f)
	}
	switch {
	case f.Type == nil:
		return readThrough(ctx, s.cache, s.log, cache.ExperiencePrefix, "all", load)
	case *f.Type == domain.ExperienceWork, *f.Type == domain.ExperienceEducation:
		return readThrough(ctx, s.cache, s.log, cache.ExperiencePrefix, string(*f.Type), load)
	default:
		return load()
	}
}

// Submit validates and stores an entry. A missing endDate is stored as null (ongoing).
func (s *ExperienceService) Submit(ctx context.Context, in domain.ExperienceInput) (*domain.Experience, error) {
	if err := validator.Experience(in); err != nil {
		return nil, err
	}

	start, err := validator.ParseDate(in.StartDate)
	if err != nil {
		return nil, domain.InvalidDate("startDate", in.StartDate)
	}
	var end *time.Time
	if in.EndDate != "" {
		t, err := validator.ParseDate(in.EndDate)
		if err != nil {
			return nil, domain.InvalidDate("endDate", in.EndDate)
		}
		end = &t
	}

	e, err := s.store.Create(ctx, &domain.Experience{
		Title:       in.Title,
		Company:     domain.Nullable(in.Company),
		Institution: domain.Nullable(in.Institution),
		Description: in.Description,
		StartDate:   start,
		EndDate:     end,
		Type:        domain.ExperienceType(in.Type),
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, s.log, cache.ExperiencePrefix)
	return e, nil
}
