package utils

import (
	"github.com/charityfund/charity/internal/store"
	"github.com/gin-gonic/gin"
)

// GetID parses the :id route parameter. Failures are store validation errors
// naming kind.
func GetID(ctx *gin.Context, kind store.Kind) (uint, error) {
	return store.ParseID(string(kind)+" id", ctx.Param("id"))
}
