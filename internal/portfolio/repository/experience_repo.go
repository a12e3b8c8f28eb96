package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// ExperienceRepository stores work and education entries in Postgres.
type ExperienceRepository struct {
	db *sql.DB
}

func NewExperienceRepository(db *sql.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

const experienceColumns = `id, title, company, institution, description, start_date, end_date,
       type, created_at, updated_at`

// Create inserts an entry. ID, CreatedAt and UpdatedAt are assigned here.
func (r *ExperienceRepository) Create(ctx context.Context, in *domain.Experience) (*domain.Experience, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}

	q := `
INSERT INTO experiences (id, title, company, institution, description, start_date, end_date, type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + experienceColumns + `;
`
	row := r.db.QueryRowContext(ctx, q,
		id, in.Title, in.Company, in.Institution, in.Description,
		in.StartDate, in.EndDate, string(in.Type),
	)
	e, err := scanExperience(row)
	if err != nil {
		return nil, storeErr("create experience", err)
	}
	return e, nil
}

// List returns entries ordered by start date, latest first, optionally of one type.
func (r *ExperienceRepository) List(ctx context.Context, f domain.ExperienceFilter) ([]domain.Experience, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if f.Type != nil {
		q := `
SELECT ` + experienceColumns + `
FROM experiences
WHERE type = $1
ORDER BY start_date DESC, seq DESC;
`
		rows, err = r.db.QueryContext(ctx, q, string(*f.Type))
	} else {
		q := `
SELECT ` + experienceColumns + `
FROM experiences
ORDER BY start_date DESC, seq DESC;
`
		rows, err = r.db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, storeErr("list experiences", err)
	}
	defer rows.Close()

	out := make([]domain.Experience, 0, 16)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, storeErr("scan experience", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list experiences", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var (
		e   domain.Experience
		typ string
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Company, &e.Institution, &e.Description,
		&e.StartDate, &e.EndDate, &typ, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Type = domain.ExperienceType(typ)
	return &e, nil
}
