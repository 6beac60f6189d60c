package handlers

import (
	"net/http"

	"github.com/charityfund/charity/internal/store"
	"github.com/charityfund/charity/internal/types"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListVolunteers(ctx *gin.Context) {
	volunteers, err := h.store.ListVolunteers(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, volunteers)
}

func (h *Handler) GetVolunteer(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindVolunteer)
	if !ok {
		return
	}

	volunteer, err := h.store.GetVolunteer(ctx.Request.Context(), id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, volunteer)
}

func (h *Handler) CreateVolunteer(ctx *gin.Context) {
	var body types.ContactRequest

	if !h.bind(ctx, &body) {
		return
	}

	volunteer, err := h.store.CreateVolunteer(ctx.Request.Context(), body.ToInput())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "created", store.KindVolunteer, volunteer.ID)
	ctx.JSON(http.StatusCreated, volunteer)
}

func (h *Handler) UpdateVolunteer(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindVolunteer)
	if !ok {
		return
	}

	var body types.ContactPatchRequest

	if !h.bind(ctx, &body) {
		return
	}

	volunteer, err := h.store.UpdateVolunteer(ctx.Request.Context(), id, body.ToPatch())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "updated", store.KindVolunteer, id)
	ctx.JSON(http.StatusOK, volunteer)
}

func (h *Handler) DeleteVolunteer(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindVolunteer)
	if !ok {
		return
	}

	if err := h.store.DeleteVolunteer(ctx.Request.Context(), id); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "deleted", store.KindVolunteer, id)
	ctx.Status(http.StatusNoContent)
}
