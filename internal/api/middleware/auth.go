package middleware

import (
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/redis"
	"SocialDash/internal/pkg/response"
	"SocialDash/internal/pkg/security"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 JWT（Bearer 或 token cookie），通过后注入 Principal
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			response.Fail(c, response.Unauthorized, "Unauthorized")
			c.Abort()
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Unauthorized")
			c.Abort()
			return
		}

		revoked, err := redis.Exists(c.Request.Context(), consts.TokenRevokedKey+signature)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "token revocation check failed", "err", err)
			response.Fail(c, response.InternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if revoked {
			response.Fail(c, response.Unauthorized, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Unauthorized")
			c.Abort()
			return
		}

		principal := security.Principal{
			UserID:    claims.UserID,
			Email:     claims.Email,
			Token:     tokenString,
			ExpiresAt: claims.ExpiresAt.Time,
		}
		c.Set(consts.PrincipalKey, principal)

		c.Next()
	}
}

// ExtractToken 优先读取 Authorization 头，其次读取 token cookie
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(consts.TokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// GetPrincipal 读取 AuthMiddleware 注入的当前用户
func GetPrincipal(c *gin.Context) (security.Principal, bool) {
	v, ok := c.Get(consts.PrincipalKey)
	if !ok {
		return security.Principal{}, false
	}
	principal, ok := v.(security.Principal)
	return principal, ok && principal.UserID != 0
}
