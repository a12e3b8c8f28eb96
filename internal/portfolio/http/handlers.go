package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// GetProfile returns the current profile.
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err, "fetching profile", "Profile not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

// SubmitProfile creates the profile, or overwrites it if one exists. Both answer 201.
func (h *Handler) SubmitProfile(c *gin.Context) {
	var in domain.ProfileInput
	if !bindJSON(c, &in) {
		return
	}

	p, status, err := h.profiles.Submit(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "saving profile", "")
		return
	}

	msg := "Profile created successfully"
	if status == domain.StatusUpdated {
		msg = "Profile updated successfully"
	}
	c.JSON(http.StatusCreated, profileResponse{Message: msg, Profile: p})
}

// ListProjects returns all projects, or only featured ones with ?featured=true.
func (h *Handler) ListProjects(c *gin.Context) {
	f := domain.ProjectFilter{FeaturedOnly: c.Query("featured") == "true"}

	items, err := h.projects.List(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err, "fetching projects", "")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var in domain.ProjectInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := h.projects.Submit(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "creating project", "")
		return
	}
	c.JSON(http.StatusCreated, projectResponse{Message: "Project created successfully", Project: p})
}

// ListExperience returns entries by start date, optionally one ?type= only.
func (h *Handler) ListExperience(c *gin.Context) {
	var f domain.ExperienceFilter
	if t := c.Query("type"); t != "" {
		typ := domain.ExperienceType(t)
		f.Type = &typ
	}

	items, err := h.experiences.List(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err, "fetching experiences", "")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateExperience(c *gin.Context) {
	var in domain.ExperienceInput
	if !bindJSON(c, &in) {
		return
	}

	e, err := h.experiences.Submit(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "creating experience", "")
		return
	}
	c.JSON(http.StatusCreated, experienceResponse{Message: "Experience created successfully", Experience: e})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body", Code: "InvalidBody"})
		return false
	}
	return true
}

// fail maps a service error onto a status code. Anything that is not a validation
// or not-found error is logged and reported as a generic 500.
func (h *Handler) fail(c *gin.Context, err error, op, notFoundMsg string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Error(), Code: ve.Rule, Field: ve.Field})
	case errors.Is(err, domain.ErrNotFound) && notFoundMsg != "":
		c.JSON(http.StatusNotFound, errorResponse{Error: notFoundMsg})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("error " + op)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}
