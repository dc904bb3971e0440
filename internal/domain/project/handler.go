package project

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/response"
)

// Handler serves dev-project CRUD. The logic is plain enough that the
// handler talks to the repository directly.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /dev-projects, ordered by priority then most recent.
func (h *Handler) List(c *gin.Context) {
	projects, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to fetch projects")
		return
	}
	response.Success(c, http.StatusOK, projects)
}

// Get handles GET /dev-projects/:slug.
func (h *Handler) Get(c *gin.Context) {
	p, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to fetch project")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Create handles POST /dev-projects. Slug conflicts are a 409.
func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	exists, err := h.repo.Exists(c.Request.Context(), req.Slug)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to check project")
		return
	}
	if exists {
		response.Error(c, http.StatusConflict, "SLUG_TAKEN", ErrSlugTaken.Error())
		return
	}

	priority := 0
	if req.Priority != nil {
		priority = *req.Priority
	}
	p := &Project{
		Slug:               req.Slug,
		EnTitle:            req.EnTitle,
		EnShortDescription: req.EnShortDescription,
		FrTitle:            req.FrTitle,
		FrShortDescription: req.FrShortDescription,
		Techs:              req.Techs,
		Link:               req.Link,
		Date:               req.Date,
		Tags:               req.Tags,
		Priority:           priority,
	}
	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create project")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"slug":    p.Slug,
	})
}

// Update handles PUT /dev-projects/:slug; only provided fields change.
func (h *Handler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	p, err := h.repo.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to fetch project")
		return
	}

	applyUpdate(p, &req)

	if err := h.repo.Update(c.Request.Context(), p); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to update project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"slug":    slug,
	})
}

// Delete handles DELETE /dev-projects/:slug.
func (h *Handler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.repo.Delete(c.Request.Context(), slug); err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to delete project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Project deleted successfully",
		"slug":    slug,
	})
}

func applyUpdate(p *Project, req *UpdateProjectRequest) {
	if req.EnTitle != nil {
		p.EnTitle = *req.EnTitle
	}
	if req.EnShortDescription != nil {
		p.EnShortDescription = *req.EnShortDescription
	}
	if req.FrTitle != nil {
		p.FrTitle = *req.FrTitle
	}
	if req.FrShortDescription != nil {
		p.FrShortDescription = *req.FrShortDescription
	}
	if req.Techs != nil {
		p.Techs = *req.Techs
	}
	if req.Link != nil {
		p.Link = *req.Link
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.Priority != nil {
		p.Priority = *req.Priority
	}
}
