// Package memory is a process-local store for development runs and tests.
// Data does not survive a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// Store holds all three record kinds behind one lock.
type Store struct {
	mu          sync.Mutex
	seq         int64
	now         func() time.Time
	profiles    []entry[domain.Profile]
	projects    []entry[domain.ProjectRecord]
	experiences []entry[domain.Experience]
}

// entry remembers insertion order so equal timestamps still sort deterministically.
type entry[T any] struct {
	seq int64
	rec T
}

func New() *Store {
	return &Store{now: func() time.Time { return time.Now().UTC() }}
}

// WithClock replaces the timestamp source. Used by tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Profiles() *Profiles       { return &Profiles{s: s} }
func (s *Store) Projects() *Projects       { return &Projects{s: s} }
func (s *Store) Experiences() *Experiences { return &Experiences{s: s} }

func (s *Store) next() int64 {
	s.seq++
	return s.seq
}

type Profiles struct{ s *Store }

func (p *Profiles) Latest(ctx context.Context) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.StoreError("get profile", err)
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	i := p.latestIndex()
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	out := p.s.profiles[i].rec
	return &out, nil
}

// Upsert checks and writes under the store lock, so concurrent first submissions cannot both create.
func (p *Profiles) Upsert(ctx context.Context, in *domain.Profile) (*domain.Profile, domain.SubmitStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", domain.StoreError("upsert profile", err)
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	now := p.s.now()
	if i := p.latestIndex(); i >= 0 {
		cur := &p.s.profiles[i].rec
		cur.Name = in.Name
		cur.Title = in.Title
		cur.Bio = in.Bio
		cur.AvatarURL = in.AvatarURL
		cur.ResumeURL = in.ResumeURL
		cur.GithubURL = in.GithubURL
		cur.LinkedinURL = in.LinkedinURL
		cur.Email = in.Email
		cur.Location = in.Location
		cur.UpdatedAt = now
		out := *cur
		return &out, domain.StatusUpdated, nil
	}

	rec := *in
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now
	p.s.profiles = append(p.s.profiles, entry[domain.Profile]{seq: p.s.next(), rec: rec})
	return &rec, domain.StatusCreated, nil
}

func (p *Profiles) latestIndex() int {
	best := -1
	for i, e := range p.s.profiles {
		if best < 0 || newer(e.rec.CreatedAt, e.seq, p.s.profiles[best].rec.CreatedAt, p.s.profiles[best].seq) {
			best = i
		}
	}
	return best
}

type Projects struct{ s *Store }

func (p *Projects) Create(ctx context.Context, in *domain.ProjectRecord) (*domain.ProjectRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.StoreError("create project", err)
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	rec := *in
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.TechStack == "" {
		rec.TechStack = "[]"
	}
	now := p.s.now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	p.s.projects = append(p.s.projects, entry[domain.ProjectRecord]{seq: p.s.next(), rec: rec})
	return &rec, nil
}

func (p *Projects) List(ctx context.Context, f domain.ProjectFilter) ([]domain.ProjectRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.StoreError("list projects", err)
	}
	p.s.mu.Lock()
	matched := make([]entry[domain.ProjectRecord], 0, len(p.s.projects))
	for _, e := range p.s.projects {
		if f.FeaturedOnly && !e.rec.Featured {
			continue
		}
		matched = append(matched, e)
	}
	p.s.mu.Unlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return newer(matched[i].rec.CreatedAt, matched[i].seq, matched[j].rec.CreatedAt, matched[j].seq)
	})
	out := make([]domain.ProjectRecord, len(matched))
	for i, e := range matched {
		out[i] = e.rec
	}
	return out, nil
}

type Experiences struct{ s *Store }

func (x *Experiences) Create(ctx context.Context, in *domain.Experience) (*domain.Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.StoreError("create experience", err)
	}
	x.s.mu.Lock()
	defer x.s.mu.Unlock()

	rec := *in
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	now := x.s.now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	x.s.experiences = append(x.s.experiences, entry[domain.Experience]{seq: x.s.next(), rec: rec})
	return &rec, nil
}

func (x *Experiences) List(ctx context.Context, f domain.ExperienceFilter) ([]domain.Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.StoreError("list experiences", err)
	}
	x.s.mu.Lock()
	matched := make([]entry[domain.Experience], 0, len(x.s.experiences))
	for _, e := range x.s.experiences {
		if f.Type != nil && e.rec.Type != *f.Type {
			continue
		}
		matched = append(matched, e)
	}
	x.s.mu.Unlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return newer(matched[i].rec.StartDate, matched[i].seq, matched[j].rec.StartDate, matched[j].seq)
	})
	out := make([]domain.Experience, len(matched))
	for i, e := range matched {
		out[i] = e.rec
	}
	return out, nil
}

func newer(a time.Time, aSeq int64, b time.Time, bSeq int64) bool {
	if a.Equal(b) {
		return aSeq > bSeq
	}
	return a.After(b)
}
