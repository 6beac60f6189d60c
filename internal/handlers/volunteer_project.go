package handlers

import (
	"net/http"

	"github.com/charityfund/charity/internal/store"
	"github.com/charityfund/charity/internal/types"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListVolunteerProjects(ctx *gin.Context) {
	links, err := h.store.ListVolunteerProjects(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func (h *Handler) GetVolunteerProject(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindVolunteerProject)
	if !ok {
		return
	}

	link, err := h.store.GetVolunteerProject(ctx.Request.Context(), id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (h *Handler) CreateVolunteerProject(ctx *gin.Context) {
	var body types.VolunteerProjectRequest

	if !h.bind(ctx, &body) {
		return
	}

	link, err := h.store.CreateVolunteerProject(ctx.Request.Context(), body.ToInput())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "created", store.KindVolunteerProject, link.ID)
	ctx.JSON(http.StatusCreated, link)
}

func (h *Handler) UpdateVolunteerProject(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindVolunteerProject)
	if !ok {
		return
	}

	var body types.VolunteerProjectPatchRequest

	if !h.bind(ctx, &body) {
		return
	}

	link, err := h.store.UpdateVolunteerProject(ctx.Request.Context(), id, body.ToPatch())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "updated", store.KindVolunteerProject, id)
	ctx.JSON(http.StatusOK, link)
}

func (h *Handler) DeleteVolunteerProject(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindVolunteerProject)
	if !ok {
		return
	}

	if err := h.store.DeleteVolunteerProject(ctx.Request.Context(), id); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "deleted", store.KindVolunteerProject, id)
	ctx.Status(http.StatusNoContent)
}
