package http

import (
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/service"
)

// Handler bundles the services behind the portfolio endpoints.
type Handler struct {
	profiles    *service.ProfileService
	projects    *service.ProjectService
	experiences *service.ExperienceService
}

func New(profiles *service.ProfileService, projects *service.ProjectService, experiences *service.ExperienceService) *Handler {
	return &Handler{profiles: profiles, projects: projects, experiences: experiences}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

type profileResponse struct {
	Message string          `json:"message"`
	Profile *domain.Profile `json:"profile"`
}

type projectResponse struct {
	Message string          `json:"message"`
	Project *domain.Project `json:"project"`
}

type experienceResponse struct {
	Message    string             `json:"message"`
	Experience *domain.Experience `json:"experience"`
}
