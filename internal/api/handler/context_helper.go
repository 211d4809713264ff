package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"mom-portal/backend/pkg/response"
)

// keys set by the JWTAuth middleware
const (
	ctxUserID   = "user_id"
	ctxUserName = "name"
	ctxRole     = "role"
	ctxTokenJTI = "token_jti"
	ctxTokenExp = "token_exp"
)

// MustGetUserID reads user_id set by JWTAuth.
// On failure a 401 is written and the caller should return.
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, ctxUserID)
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	s := c.GetString(key)
	if s == "" {
		response.Unauthorized(c, "Authentication required")
		return "", false
	}
	return s, true
}

// tokenIdentity jti and expiry of the bearer token, zero values when absent
func tokenIdentity(c *gin.Context) (string, time.Time) {
	return c.GetString(ctxTokenJTI), c.GetTime(ctxTokenExp)
}
