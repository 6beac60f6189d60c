package utils

import (
	"fmt"

	"github.com/charityfund/charity/internal/types"
	"github.com/gin-gonic/gin"
)

// GetCurrentOperator returns the operator recorded by the auth middleware.
func GetCurrentOperator(ctx *gin.Context) (types.Operator, error) {
	operator, exists := ctx.Get(types.ContextOperatorKey)

	if !exists {
		return types.Operator{}, fmt.Errorf("Operator not authenticated")
	}

	authenticated, ok := operator.(types.Operator)

	if !ok {
		return types.Operator{}, fmt.Errorf("Invalid operator type in context")
	}

	return authenticated, nil
}

// GetOperatorSubject returns the current operator's subject, or "anonymous"
// when the API runs without auth.
func GetOperatorSubject(ctx *gin.Context) string {
	operator, err := GetCurrentOperator(ctx)
	if err != nil {
		return "anonymous"
	}
	return operator.Subject
}
