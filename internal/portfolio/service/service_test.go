package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/cache"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/memory"
)

func ticking() func() time.Time {
	cur := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}
}

// countingProfiles records how often the store was asked to write.
type countingProfiles struct {
	*memory.Profiles
	writes int
}

func (c *countingProfiles) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, domain.SubmitStatus, error) {
	c.writes++
	return c.Profiles.Upsert(ctx, p)
}

type countingProjects struct {
	*memory.Projects
	writes int
}

func (c *countingProjects) Create(ctx context.Context, r *domain.ProjectRecord) (*domain.ProjectRecord, error) {
	c.writes++
	return c.Projects.Create(ctx, r)
}

type countingExperiences struct {
	*memory.Experiences
	writes int
}

func (c *countingExperiences) Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error) {
	c.writes++
	return c.Experiences.Create(ctx, e)
}

// pausingProjects holds a List call after it has read the table, until released.
type pausingProjects struct {
	*memory.Projects
	pause   atomic.Bool
	loaded  chan struct{}
	release chan struct{}
}

func (p *pausingProjects) List(ctx context.Context, f domain.ProjectFilter) ([]domain.ProjectRecord, error) {
	recs, err := p.Projects.List(ctx, f)
	if p.pause.Load() {
		p.loaded <- struct{}{}
		<-p.release
	}
	return recs, err
}

type failingProjects struct{}

func (failingProjects) Create(context.Context, *domain.ProjectRecord) (*domain.ProjectRecord, error) {
	return nil, domain.StoreError("create project", errors.New("connection reset"))
}

func (failingProjects) List(context.Context, domain.ProjectFilter) ([]domain.ProjectRecord, error) {
	return nil, domain.StoreError("list projects", errors.New("connection reset"))
}

func TestProfileService(t *testing.T) {
	ctx := context.Background()
	store := &countingProfiles{Profiles: memory.New().Profiles()}
	svc := NewProfileService(store, nil, zerolog.Nop())

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	t.Run("missing field performs no write", func(t *testing.T) {
		_, _, err := svc.Submit(ctx, domain.ProfileInput{Name: "Ada", Title: "Eng"})
		assert.ErrorIs(t, err, domain.ErrMissingField)
		assert.Equal(t, 0, store.writes)
	})

	created, status, err := svc.Submit(ctx, domain.ProfileInput{
		Name: "Ada", Title: "Eng", Bio: "bio", Email: "ada@example.com", Location: "London",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, status)
	require.NotNil(t, created.Email)
	assert.Equal(t, "ada@example.com", *created.Email)
	assert.Nil(t, created.AvatarURL)

	updated, status, err := svc.Submit(ctx, domain.ProfileInput{Name: "Ada L.", Title: "Eng", Bio: "bio2"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUpdated, status)
	assert.Equal(t, created.ID, updated.ID)
	assert.Nil(t, updated.Email, "full overwrite clears omitted optional fields")
	assert.Nil(t, updated.Location)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", got.Name)
	assert.Equal(t, 2, store.writes)
}

func TestProjectService(t *testing.T) {
	ctx := context.Background()
	store := &countingProjects{Projects: memory.New().WithClock(ticking()).Projects()}
	svc := NewProjectService(store, nil, zerolog.Nop())

	t.Run("null tech stack rejected without write", func(t *testing.T) {
		_, err := svc.Submit(ctx, domain.ProjectInput{Title: "x", Description: "y"})
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "techStack", ve.Field)
		assert.Equal(t, 0, store.writes)
	})

	first, err := svc.Submit(ctx, domain.ProjectInput{Title: "one", Description: "d", TechStack: []string{"Go", "Postgres"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Postgres"}, first.TechStack)
	assert.False(t, first.Featured)
	assert.Nil(t, first.GithubURL)

	second, err := svc.Submit(ctx, domain.ProjectInput{Title: "two", Description: "d", TechStack: []string{}})
	require.NoError(t, err)
	assert.NotNil(t, second.TechStack)
	assert.Empty(t, second.TechStack)

	featured, err := svc.List(ctx, domain.ProjectFilter{FeaturedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, featured)

	all, err := svc.List(ctx, domain.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "two", all[0].Title)
	assert.Equal(t, "one", all[1].Title)
	assert.Equal(t, []string{"Go", "Postgres"}, all[1].TechStack)

	yes := true
	_, err = svc.Submit(ctx, domain.ProjectInput{Title: "three", Description: "d", TechStack: []string{"Rust"}, Featured: &yes})
	require.NoError(t, err)
	featured, err = svc.List(ctx, domain.ProjectFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "three", featured[0].Title)
}

func TestProjectService_CorruptTechStackIsStoreFailure(t *testing.T) {
	ctx := context.Background()
	mem := memory.New().Projects()
	_, err := mem.Create(ctx, &domain.ProjectRecord{Title: "bad", Description: "d", TechStack: "Go, React"})
	require.NoError(t, err)

	_, err = NewProjectService(mem, nil, zerolog.Nop()).List(ctx, domain.ProjectFilter{})
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestProjectService_StoreFailurePropagates(t *testing.T) {
	svc := NewProjectService(failingProjects{}, nil, zerolog.Nop())

	_, err := svc.List(context.Background(), domain.ProjectFilter{})
	assert.ErrorIs(t, err, domain.ErrStore)

	_, err = svc.Submit(context.Background(), domain.ProjectInput{Title: "t", Description: "d", TechStack: []string{}})
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestExperienceService(t *testing.T) {
	ctx := context.Background()
	store := &countingExperiences{Experiences: memory.New().Experiences()}
	svc := NewExperienceService(store, nil, zerolog.Nop())

	t.Run("invalid type creates nothing", func(t *testing.T) {
		_, err := svc.Submit(ctx, domain.ExperienceInput{Title: "Eng", Description: "x", StartDate: "2022-01", Type: "internship"})
		assert.ErrorIs(t, err, domain.ErrInvalidEnum)
		assert.Equal(t, 0, store.writes)
	})

	job, err := svc.Submit(ctx, domain.ExperienceInput{Title: "Eng", Company: "Acme", Description: "x", StartDate: "2022-01", Type: "work"})
	require.NoError(t, err)
	assert.Nil(t, job.EndDate, "no end date means ongoing")
	assert.Nil(t, job.Institution)
	assert.True(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC).Equal(job.StartDate))

	degree, err := svc.Submit(ctx, domain.ExperienceInput{
		Title: "BSc", Institution: "MIT", Description: "x", StartDate: "2015-09-01", EndDate: "2019-06-30", Type: "education",
	})
	require.NoError(t, err)
	require.NotNil(t, degree.EndDate)

	_, err = svc.Submit(ctx, domain.ExperienceInput{Title: "Intern", Company: "Init", Description: "x", StartDate: "2019-07", Type: "work"})
	require.NoError(t, err)

	all, err := svc.List(ctx, domain.ExperienceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Eng", "Intern", "BSc"}, []string{all[0].Title, all[1].Title, all[2].Title})

	edu := domain.ExperienceEducation
	onlyEdu, err := svc.List(ctx, domain.ExperienceFilter{Type: &edu})
	require.NoError(t, err)
	require.Len(t, onlyEdu, 1)
	assert.Equal(t, "BSc", onlyEdu[0].Title)

	other := domain.ExperienceType("volunteer")
	none, err := svc.List(ctx, domain.ExperienceFilter{Type: &other})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestServices_CacheInvalidatedOnSubmit(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	c := cache.NewRedis(client, time.Minute)
	store := memory.New().WithClock(ticking())
	projects := NewProjectService(store.Projects(), c, zerolog.Nop())
	profiles := NewProfileService(store.Profiles(), c, zerolog.Nop())

	_, err = projects.Submit(ctx, domain.ProjectInput{Title: "one", Description: "d", TechStack: []string{"Go"}})
	require.NoError(t, err)

	all, err := projects.List(ctx, domain.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, mr.Exists("portfolio:projects:1:all"))

	_, err = projects.Submit(ctx, domain.ProjectInput{Title: "two", Description: "d", TechStack: []string{"Go"}})
	require.NoError(t, err)
	gen, err := mr.Get("portfolio:projects:gen")
	require.NoError(t, err)
	assert.Equal(t, "2", gen, "each submit retires the cached listings")

	all, err = projects.List(ctx, domain.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []string{"Go"}, all[0].TechStack)

	_, _, err = profiles.Submit(ctx, domain.ProfileInput{Name: "Ada", Title: "Eng", Bio: "b"})
	require.NoError(t, err)
	p, err := profiles.Get(ctx)
	require.NoError(t, err)
	_, _, err = profiles.Submit(ctx, domain.ProfileInput{Name: "Grace", Title: "Eng", Bio: "b"})
	require.NoError(t, err)
	p2, err := profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "Grace", p2.Name)
}

func TestServices_CacheOutageDoesNotFailRequests(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	ctx := context.Background()
	svc := NewProjectService(memory.New().Projects(), cache.NewRedis(client, time.Minute), zerolog.Nop())

	_, err = svc.Submit(ctx, domain.ProjectInput{Title: "one", Description: "d", TechStack: []string{"Go"}})
	require.NoError(t, err)
	all, err := svc.List(ctx, domain.ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestServices_LateCacheFillDoesNotHideSubmit(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	store := &pausingProjects{
		Projects: memory.New().WithClock(ticking()).Projects(),
		loaded:   make(chan struct{}),
		release:  make(chan struct{}),
	}
	svc := NewProjectService(store, cache.NewRedis(client, time.Minute), zerolog.Nop())

	store.pause.Store(true)
	stale := make(chan []domain.Project, 1)
	go func() {
		items, err := svc.List(ctx, domain.ProjectFilter{})
		assert.NoError(t, err)
		stale <- items
	}()

	<-store.loaded
	store.pause.Store(false)
	_, err = svc.Submit(ctx, domain.ProjectInput{Title: "new", Description: "d", TechStack: []string{"Go"}})
	require.NoError(t, err)
	close(store.release)
	assert.Empty(t, <-stale, "the overlapping list read the table before the write")

	all, err := svc.List(ctx, domain.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Title)
}
