package handlers

import (
	"net/http"

	"github.com/charityfund/charity/internal/store"
	"github.com/charityfund/charity/internal/types"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListDonors(ctx *gin.Context) {
	donors, err := h.store.ListDonors(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, donors)
}

func (h *Handler) GetDonor(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindDonor)
	if !ok {
		return
	}

	donor, err := h.store.GetDonor(ctx.Request.Context(), id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, donor)
}

func (h *Handler) CreateDonor(ctx *gin.Context) {
	var body types.ContactRequest

	if !h.bind(ctx, &body) {
		return
	}

	donor, err := h.store.CreateDonor(ctx.Request.Context(), body.ToInput())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "created", store.KindDonor, donor.ID)
	ctx.JSON(http.StatusCreated, donor)
}

func (h *Handler) UpdateDonor(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindDonor)
	if !ok {
		return
	}

	var body types.ContactPatchRequest

	if !h.bind(ctx, &body) {
		return
	}

	donor, err := h.store.UpdateDonor(ctx.Request.Context(), id, body.ToPatch())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "updated", store.KindDonor, id)
	ctx.JSON(http.StatusOK, donor)
}

// DeleteDonor also removes the donor's donations.
func (h *Handler) DeleteDonor(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindDonor)
	if !ok {
		return
	}

	if err := h.store.DeleteDonor(ctx.Request.Context(), id); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "deleted", store.KindDonor, id)
	ctx.Status(http.StatusNoContent)
}
