package handlers

import (
	"errors"
	"net/http"

	"github.com/charityfund/charity/internal/store"
	"github.com/charityfund/charity/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the JSON API over one record store.
type Handler struct {
	store  *store.Store
	logger *zap.Logger
}

func New(s *store.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: s, logger: logger.Named("api")}
}

// respondError maps store errors onto HTTP statuses. Anything outside the
// store taxonomy is logged and hidden behind a 500.
func (h *Handler) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrReferential):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// id parses :id, writing the error response itself when it fails.
func (h *Handler) id(ctx *gin.Context, kind store.Kind) (uint, bool) {
	id, err := utils.GetID(ctx, kind)
	if err != nil {
		h.respondError(ctx, err)
		return 0, false
	}
	return id, true
}

func (h *Handler) bind(ctx *gin.Context, body interface{}) bool {
	if err := ctx.ShouldBindJSON(body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return false
	}
	return true
}

func (h *Handler) audit(ctx *gin.Context, action string, kind store.Kind, id uint) {
	h.logger.Info(action,
		zap.String("operator", utils.GetOperatorSubject(ctx)),
		zap.String("kind", string(kind)),
		zap.Uint("id", id),
	)
}
