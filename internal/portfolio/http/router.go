package http

import "github.com/gin-gonic/gin"

// Register attaches the portfolio routes to the given router group.
func (h *Handler) Register(rg gin.IRoutes) {
	rg.GET("/profile", h.GetProfile)
	rg.POST("/profile", h.SubmitProfile)
	rg.GET("/projects", h.ListProjects)
	rg.POST("/projects", h.CreateProject)
	rg.GET("/experience", h.ListExperience)
	rg.POST("/experience", h.CreateExperience)
}
