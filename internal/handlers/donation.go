package handlers

import (
	"net/http"

	"github.com/charityfund/charity/internal/store"
	"github.com/charityfund/charity/internal/types"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListDonations(ctx *gin.Context) {
	donations, err := h.store.ListDonations(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, donations)
}

func (h *Handler) GetDonation(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindDonation)
	if !ok {
		return
	}

	donation, err := h.store.GetDonation(ctx.Request.Context(), id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, donation)
}

func (h *Handler) CreateDonation(ctx *gin.Context) {
	var body types.DonationRequest

	if !h.bind(ctx, &body) {
		return
	}

	in, err := body.ToInput()
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	donation, err := h.store.CreateDonation(ctx.Request.Context(), in)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "created", store.KindDonation, donation.ID)
	ctx.JSON(http.StatusCreated, donation)
}

func (h *Handler) UpdateDonation(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindDonation)
	if !ok {
		return
	}

	var body types.DonationPatchRequest

	if !h.bind(ctx, &body) {
		return
	}

	patch, err := body.ToPatch()
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	donation, err := h.store.UpdateDonation(ctx.Request.Context(), id, patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "updated", store.KindDonation, id)
	ctx.JSON(http.StatusOK, donation)
}

func (h *Handler) DeleteDonation(ctx *gin.Context) {
	id, ok := h.id(ctx, store.KindDonation)
	if !ok {
		return
	}

	if err := h.store.DeleteDonation(ctx.Request.Context(), id); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.audit(ctx, "deleted", store.KindDonation, id)
	ctx.Status(http.StatusNoContent)
}

func (h *Handler) SumDonations(ctx *gin.Context) {
	total, err := h.store.SumDonations(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"total": total.StringFixed(2)})
}
