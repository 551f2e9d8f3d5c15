package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret         = []byte("socialdash-dev-secret")
	jwtExpirationTime = time.Hour * 24
	jwtIssuer         = "socialdash"
)

// Init 用配置覆盖默认的签名参数
func Init(secret string, expiration time.Duration, issuer string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if expiration > 0 {
		jwtExpirationTime = expiration
	}
	if issuer != "" {
		jwtIssuer = issuer
	}
}

// TokenTTL 返回签发 Token 的有效期
func TokenTTL() time.Duration {
	return jwtExpirationTime
}

// UserClaims 定义了 Token 中需要包含的业务信息
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Principal 当前请求已认证的用户，由中间件注入并显式传给各 service
type Principal struct {
	UserID uint64
	Email  string
	// Token 原始 JWT，登出时用于吊销
	Token     string
	ExpiresAt time.Time
}
