package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// ProfileRepository stores the profile in Postgres. The table's unique singleton column
// keeps it to one row, so Upsert is a single statement and cannot race into duplicates.
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, name, title, bio, avatar_url, resume_url, github_url, linkedin_url,
       email, location, created_at, updated_at`

// Latest returns the most recently created profile.
func (r *ProfileRepository) Latest(ctx context.Context) (*domain.Profile, error) {
	q := `
SELECT ` + profileColumns + `
FROM profiles
ORDER BY created_at DESC, seq DESC
LIMIT 1;
`
	var p domain.Profile
	err := r.db.QueryRowContext(ctx, q).Scan(profileDest(&p)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr("get profile", err)
	}
	return &p, nil
}

// Upsert inserts the profile or, when one exists, overwrites all of its fields.
// Optional fields left nil are written as NULL.
func (r *ProfileRepository) Upsert(ctx context.Context, in *domain.Profile) (*domain.Profile, domain.SubmitStatus, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}

	q := `
INSERT INTO profiles (id, name, title, bio, avatar_url, resume_url, github_url, linkedin_url, email, location)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (singleton) DO UPDATE SET
	name = EXCLUDED.name,
	title = EXCLUDED.title,
	bio = EXCLUDED.bio,
	avatar_url = EXCLUDED.avatar_url,
	resume_url = EXCLUDED.resume_url,
	github_url = EXCLUDED.github_url,
	linkedin_url = EXCLUDED.linkedin_url,
	email = EXCLUDED.email,
	location = EXCLUDED.location,
	updated_at = NOW()
RETURNING ` + profileColumns + `, (xmax = 0) AS inserted;
`
	var (
		p        domain.Profile
		inserted bool
	)
	dest := append(profileDest(&p), &inserted)
	err := r.db.QueryRowContext(ctx, q,
		id, in.Name, in.Title, in.Bio,
		in.AvatarURL, in.ResumeURL, in.GithubURL, in.LinkedinURL, in.Email, in.Location,
	).Scan(dest...)
	if err != nil {
		return nil, "", storeErr("upsert profile", err)
	}

	status := domain.StatusUpdated
	if inserted {
		status = domain.StatusCreated
	}
	return &p, status, nil
}

func profileDest(p *domain.Profile) []any {
	return []any{
		&p.ID, &p.Name, &p.Title, &p.Bio,
		&p.AvatarURL, &p.ResumeURL, &p.GithubURL, &p.LinkedinURL,
		&p.Email, &p.Location, &p.CreatedAt, &p.UpdatedAt,
	}
}
