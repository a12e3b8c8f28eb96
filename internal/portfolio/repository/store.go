package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// ProfileStore persists the singleton profile.
type ProfileStore interface {
	// Latest returns the most recently created profile or domain.ErrNotFound.
	Latest(ctx context.Context) (*domain.Profile, error)
	// Upsert creates the profile if none exists, otherwise overwrites every field of the existing one.
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, domain.SubmitStatus, error)
}

// ProjectStore persists projects with their tech stack already encoded.
type ProjectStore interface {
	Create(ctx context.Context, r *domain.ProjectRecord) (*domain.ProjectRecord, error)
	// List returns projects newest first.
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.ProjectRecord, error)
}

// ExperienceStore persists work and education entries.
type ExperienceStore interface {
	Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error)
	// List returns entries by start date, latest first.
	List(ctx context.Context, f domain.ExperienceFilter) ([]domain.Experience, error)
}
