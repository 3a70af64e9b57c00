package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/config"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
)

const ContextIdentity = "identity"

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return authenticate(cfg, true)
}

// OptionalAuth resolves the identity when a token is sent. A missing
// header leaves the request anonymous; a bad token is still rejected.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return authenticate(cfg, false)
}

func authenticate(cfg *config.Config, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				httperr.Unauthorized(c, "missing_authorization_header", "Autenticação necessária.")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		identity, code := parseBearer(authHeader, cfg.JWTSecret)
		if code != "" {
			httperr.Unauthorized(c, code, "Token inválido.")
			c.Abort()
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

func parseBearer(authHeader, secret string) (*schedule.Identity, string) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, "invalid_authorization_header"
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, "invalid_token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "invalid_token_claims"
	}

	sub, _ := claims.GetSubject()
	id, err := uuid.Parse(sub)
	role, _ := claims["role"].(string)
	if err != nil || role == "" {
		return nil, "invalid_token_payload"
	}

	return &schedule.Identity{ID: id, Role: role}, ""
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil {
			httperr.Unauthorized(c, "missing_authorization_header", "Autenticação necessária.")
			c.Abort()
			return
		}

		for _, r := range roles {
			if strings.EqualFold(identity.Role, r) {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "forbidden", "Acesso negado.")
		c.Abort()
	}
}

// CurrentIdentity returns the caller resolved by the auth middleware, or
// nil for anonymous requests.
func CurrentIdentity(c *gin.Context) *schedule.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	identity, _ := v.(*schedule.Identity)
	return identity
}
