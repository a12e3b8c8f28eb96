package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// ProjectRepository stores projects in Postgres.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, description, tech_stack, github_url, demo_url, image_url,
       featured, created_at, updated_at`

// Create inserts a project. ID, CreatedAt and UpdatedAt are assigned here.
func (r *ProjectRepository) Create(ctx context.Context, in *domain.ProjectRecord) (*domain.ProjectRecord, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}

	q := `
INSERT INTO projects (id, title, description, tech_stack, github_url, demo_url, image_url, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + projectColumns + `;
`
	var p domain.ProjectRecord
	var techStack sql.NullString
	err := r.db.QueryRowContext(ctx, q,
		id, in.Title, in.Description, in.TechStack,
		in.GithubURL, in.DemoURL, in.ImageURL, in.Featured,
	).Scan(projectDest(&p, &techStack)...)
	if err != nil {
		return nil, storeErr("create project", err)
	}
	p.TechStack = techStack.String
	return &p, nil
}

// List returns projects newest first, optionally only the featured ones.
func (r *ProjectRepository) List(ctx context.Context, f domain.ProjectFilter) ([]domain.ProjectRecord, error) {
	var b strings.Builder
	b.WriteString("\nSELECT " + projectColumns + "\nFROM projects\n")
	if f.FeaturedOnly {
		b.WriteString("WHERE featured = TRUE\n")
	}
	b.WriteString("ORDER BY created_at DESC, seq DESC;\n")

	rows, err := r.db.QueryContext(ctx, b.String())
	if err != nil {
		return nil, storeErr("list projects", err)
	}
	defer rows.Close()

	out := make([]domain.ProjectRecord, 0, 16)
	for rows.Next() {
		var p domain.ProjectRecord
		var techStack sql.NullString
		if err := rows.Scan(projectDest(&p, &techStack)...); err != nil {
			return nil, storeErr("scan project", err)
		}
		p.TechStack = techStack.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list projects", err)
	}
	return out, nil
}

func projectDest(p *domain.ProjectRecord, techStack *sql.NullString) []any {
	return []any{
		&p.ID, &p.Title, &p.Description, techStack,
		&p.GithubURL, &p.DemoURL, &p.ImageURL,
		&p.Featured, &p.CreatedAt, &p.UpdatedAt,
	}
}
