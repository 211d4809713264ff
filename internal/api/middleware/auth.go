package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/model"
	apperrors "mom-portal/backend/pkg/errors"
	"mom-portal/backend/pkg/jwt"
	"mom-portal/backend/pkg/response"
)

// context keys read by the handlers
const (
	ctxUserID   = "user_id"
	ctxUserName = "name"
	ctxRole     = "role"
	ctxTokenJTI = "token_jti"
	ctxTokenExp = "token_exp"
)

// TokenChecker reports revoked token ids
type TokenChecker interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AccountLookup returns the current role of the token's account. NotFound and
// Forbidden errors mean the account is gone or deactivated.
type AccountLookup interface {
	ActiveRole(ctx context.Context, userID string) (string, error)
}

// JWTAuth validates the access token in Authorization: Bearer <token>.
// checker may be nil, in which case revocation is not enforced. accounts may be nil,
// in which case the role in the token is trusted until it expires.
func JWTAuth(jwtMgr *jwt.Manager, checker TokenChecker, accounts AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, "Token expired")
			} else {
				response.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		if claims.TokenType != jwt.TokenTypeAccess {
			response.Unauthorized(c, "Invalid token type")
			c.Abort()
			return
		}

		if checker != nil && claims.ID != "" {
			revoked, err := checker.IsBlacklisted(c.Request.Context(), claims.ID)
			// a failing Redis lets the token through
			if err == nil && revoked {
				response.Unauthorized(c, "Token has been revoked")
				c.Abort()
				return
			}
		}

		roleName := claims.Role
		if accounts != nil {
			current, err := accounts.ActiveRole(c.Request.Context(), claims.UserID)
			if err != nil {
				switch apperrors.KindOf(err) {
				case apperrors.KindNotFound, apperrors.KindForbidden:
					response.Unauthorized(c, apperrors.MessageOf(err))
				default:
					c.Error(err)
					response.InternalError(c)
				}
				c.Abort()
				return
			}
			roleName = current
		}

		// roles without a canonical form are stored as "" and fail every RoleAuth
		role, _ := model.NormalizeRole(roleName)

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserName, claims.Name)
		c.Set(ctxRole, string(role))
		c.Set(ctxTokenJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ctxTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RoleAuth allows the request when the caller holds one of allowed
func RoleAuth(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		for _, r := range allowed {
			if role == string(r) {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Access denied. Insufficient permissions.")
		c.Abort()
	}
}
