package handlers

import (
	"net/http"

	"github.com/charityfund/charity/internal/store"
	"github.com/charityfund/charity/internal/types"
	"github.com/gin-gonic/gin"
)

type ProjectProgressResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	GoalAmount     string `json:"goal_amount"`
	Raised         string `json:"raised"`
	Remaining      string `json:"remaining"`
	Donations      int    `json:"donations"`
	Volunteers     int    `json:"volunteers"`
	VolunteerHours int    `json:"volunteer_hours"`
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	projects, err := h.store.ListProjects(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindProject)
	if !ok {
		return
	}

	project, err := h.store.GetProject(ctx.Request.Context(), id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	var body types.ProjectRequest

	if !h.bind(ctx, &body) {
		return
	}

	in, err := body.ToInput()
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	project, err := h.store.CreateProject(ctx.Request.Context(), in)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "created", store.KindProject, project.ID)
	ctx.JSON(http.StatusCreated, project)
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindProject)
	if !ok {
		return
	}

	var body types.ProjectPatchRequest

	if !h.bind(ctx, &body) {
		return
	}

	patch, err := body.ToPatch()
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	project, err := h.store.UpdateProject(ctx.Request.Context(), id, patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "updated", store.KindProject, id)
	ctx.JSON(http.StatusOK, project)
}

// DeleteProject also removes the project's donations and volunteer links.
func (h *Handler) DeleteProject(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindProject)
	if !ok {
		return
	}

	if err := h.store.DeleteProject(ctx.Request.Context(), id); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "deleted", store.KindProject, id)
	ctx.Status(http.StatusNoContent)
}

func (h *Handler) ProjectProgress(ctx *gin.Context) {
	progress, err := h.store.ProjectProgress(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	response := make([]ProjectProgressResponse, 0, len(progress))

	for _, p := range progress {
		response = append(response, ProjectProgressResponse{
			ID:             p.ProjectID,
			Name:           p.Name,
			GoalAmount:     p.Goal.StringFixed(2),
			Raised:         p.Raised.StringFixed(2),
			Remaining:      p.Remaining().StringFixed(2),
			Donations:      p.Donations,
			Volunteers:     p.Volunteers,
			VolunteerHours: p.VolunteerHours,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
