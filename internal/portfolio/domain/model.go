package domain

import "time"

// Profile is the owner's profile. At most one row is authoritative.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Bio         string    `json:"bio"`
	AvatarURL   *string   `json:"avatarUrl"`
	ResumeURL   *string   `json:"resumeUrl"`
	GithubURL   *string   `json:"githubUrl"`
	LinkedinURL *string   `json:"linkedinUrl"`
	Email       *string   `json:"email"`
	Location    *string   `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Project is a portfolio entry. TechStack is always a list at the API boundary.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"techStack"`
	GithubURL   *string   `json:"githubUrl"`
	DemoURL     *string   `json:"demoUrl"`
	ImageURL    *string   `json:"imageUrl"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectRecord is a project as persisted, with techStack still encoded.
type ProjectRecord struct {
	ID          string
	Title       string
	Description string
	TechStack   string
	GithubURL   *string
	DemoURL     *string
	ImageURL    *string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ExperienceType string

const (
	ExperienceWork      ExperienceType = "work"
	ExperienceEducation ExperienceType = "education"
)

// Experience is a work or education entry. A nil EndDate means ongoing.
type Experience struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Company     *string        `json:"company"`
	Institution *string        `json:"institution"`
	Description string         `json:"description"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     *time.Time     `json:"endDate"`
	Type        ExperienceType `json:"type"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// SubmitStatus tells whether a profile submission created or updated the row.
type SubmitStatus string

const (
	StatusCreated SubmitStatus = "created"
	StatusUpdated SubmitStatus = "updated"
)

type ProfileInput struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Bio         string `json:"bio" validate:"required"`
	AvatarURL   string `json:"avatarUrl"`
	ResumeURL   string `json:"resumeUrl"`
	GithubURL   string `json:"githubUrl"`
	LinkedinURL string `json:"linkedinUrl"`
	Email       string `json:"email"`
	Location    string `json:"location"`
}

type ProjectInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"techStack" validate:"required"`
	GithubURL   string   `json:"githubUrl"`
	DemoURL     string   `json:"demoUrl"`
	ImageURL    string   `json:"imageUrl"`
	Featured    *bool    `json:"featured"`
}

type ExperienceInput struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company"`
	Institution string `json:"institution"`
	Description string `json:"description" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	Type        string `json:"type" validate:"required,oneof=work education"`
}

type ProjectFilter struct {
	FeaturedOnly bool
}

type ExperienceFilter struct {
	Type *ExperienceType
}

// Nullable maps an empty string to nil.
func Nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
