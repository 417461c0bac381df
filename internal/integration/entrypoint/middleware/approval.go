// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendlite/backend/internal/application/adapter"
	domainerror "github.com/spendlite/backend/internal/domain/error"
	"github.com/spendlite/backend/internal/integration/entrypoint/dto"
)

// ApprovalMiddleware gates API access for accounts that have not been
// approved yet. It runs after authentication: the token is valid, but the
// account stays locked out of the data endpoints until an operator flips
// the approved flag.
type ApprovalMiddleware struct {
	userRepo adapter.UserRepository
}

// NewApprovalMiddleware creates a new approval middleware instance.
func NewApprovalMiddleware(userRepo adapter.UserRepository) *ApprovalMiddleware {
	return &ApprovalMiddleware{
		userRepo: userRepo,
	}
}

// RequireApproved returns a Gin middleware handler that rejects unapproved accounts.
func (m *ApprovalMiddleware) RequireApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not authenticated",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			c.Abort()
			return
		}

		if !user.Approved {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Account is pending approval",
				Code:  string(domainerror.ErrCodePendingApproval),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
