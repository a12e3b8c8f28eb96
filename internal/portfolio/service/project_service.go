package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/cache"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/techstack"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/validator"
)

// ProjectService lists and creates projects, converting techStack at the store boundary.
type ProjectService struct {
	store repository.ProjectStore
	cache cache.Cache
	log   zerolog.Logger
}

func NewProjectService(store repository.ProjectStore, c cache.Cache, log zerolog.Logger) *ProjectService {
	if c == nil {
		c = cache.Noop{}
	}
	return &ProjectService{store: store, cache: c, log: log}
}

// List returns projects newest first with techStack decoded.
func (s *ProjectService) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error) {
	variant := "all"
	if f.FeaturedOnly {
		variant = "featured"
	}
	return readThrough(ctx, s.cache, s.log, cache.ProjectsPrefix, variant, func() ([]domain.Project, error) {
		records, err := s.store.List(ctx, f)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Project, 0, len(records))
		for i := range records {
			p, err := fromRecord(&records[i])
			if err != nil {
				return nil, err
			}
			out = append(out, *p)
		}
		return out, nil
	})
}

// Submit validates and stores a project. The returned project carries techStack as a list.
func (s *ProjectService) Submit(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	if err := validator.Project(in); err != nil {
		return nil, err
	}

	encoded, err := techstack.Encode(in.TechStack)
	if err != nil {
		return nil, err
	}
	featured := false
	if in.Featured != nil {
		featured = *in.Featured
	}

	rec, err := s.store.Create(ctx, &domain.ProjectRecord{
		Title:       in.Title,
		Description: in.Description,
		TechStack:   encoded,
		GithubURL:   domain.Nullable(in.GithubURL),
		DemoURL:     domain.Nullable(in.DemoURL),
		ImageURL:    domain.Nullable(in.ImageURL),
		Featured:    featured,
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, s.log, cache.ProjectsPrefix)
	return fromRecord(rec)
}

func fromRecord(r *domain.ProjectRecord) (*domain.Project, error) {
	stack, err := techstack.Decode(r.TechStack)
	if err != nil {
		return nil, domain.StoreError("project "+r.ID, err)
	}
	return &domain.Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		TechStack:   stack,
		GithubURL:   r.GithubURL,
		DemoURL:     r.DemoURL,
		ImageURL:    r.ImageURL,
		Featured:    r.Featured,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}
