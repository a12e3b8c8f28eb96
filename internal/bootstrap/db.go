package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/memory"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/postgres"
)

// Stores is the storage backend selected by DB_DRIVER.
type Stores struct {
	Profiles    repository.ProfileStore
	Projects    repository.ProjectStore
	Experiences repository.ExperienceStore

	// DB is nil for the in-memory backend.
	DB *sql.DB
}

func (s *Stores) InMemory() bool { return s.DB == nil }

func (s *Stores) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func OpenStores(ctx context.Context, cfg *config.DatabaseConfig) (*Stores, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return MemoryStores(memory.New()), nil
	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("db migrate: %w", err)
		}
		return PostgresStores(db), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}
}

func PostgresStores(db *sql.DB) *Stores {
	return &Stores{
		Profiles:    repository.NewProfileRepository(db),
		Projects:    repository.NewProjectRepository(db),
		Experiences: repository.NewExperienceRepository(db),
		DB:          db,
	}
}

func MemoryStores(m *memory.Store) *Stores {
	return &Stores{
		Profiles:    m.Profiles(),
		Projects:    m.Projects(),
		Experiences: m.Experiences(),
	}
}
