package middleware

import (
	"net/http"
	"strings"

	"github.com/charityfund/charity/internal/auth"
	"github.com/charityfund/charity/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a bearer token signed by issuer and records its
// subject as the current operator.
func AuthMiddleware(issuer *auth.Issuer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := issuer.VerifyJWT(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextOperatorKey, types.Operator{Subject: claims.Subject})
		ctx.Next()
	}
}
