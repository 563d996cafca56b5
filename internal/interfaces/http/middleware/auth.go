package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/infrastructure/auth"
	"github.com/mosslight/storefront/internal/infrastructure/logger"
	"github.com/mosslight/storefront/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Auth context keys
const (
	CallerKey     = "auth_caller"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// RequireAuth creates middleware that rejects requests without a valid token.
// On success the verified caller is stored in the gin context.
func RequireAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validateBearer(c, jwtService)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		if !setCaller(c, claims) {
			abortUnauthorized(c, auth.ErrInvalidClaims)
			return
		}
		c.Next()
	}
}

// OptionalAuth creates middleware that extracts the caller if a valid token
// is present but lets anonymous requests through untouched.
func OptionalAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" || !strings.HasPrefix(authHeader, BearerPrefix) {
			c.Next()
			return
		}

		claims, err := validateBearer(c, jwtService)
		if err != nil {
			c.Next()
			return
		}

		_ = setCaller(c, claims)
		c.Next()
	}
}

// RequireAdmin creates middleware that rejects non-admin callers.
// Must be chained after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			abortUnauthorized(c, auth.ErrInvalidToken)
			return
		}
		if !caller.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Administrator access required"))
			return
		}
		c.Next()
	}
}

// GetCaller retrieves the verified caller from the gin context
func GetCaller(c *gin.Context) (authctx.Caller, bool) {
	value, exists := c.Get(CallerKey)
	if !exists {
		return authctx.Caller{}, false
	}
	caller, ok := value.(authctx.Caller)
	return caller, ok
}

// validateBearer extracts and validates the bearer token from the request
func validateBearer(c *gin.Context, jwtService *auth.JWTService) (*auth.Claims, error) {
	authHeader := c.GetHeader(AuthHeaderKey)
	if authHeader == "" {
		return nil, auth.ErrInvalidToken
	}
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		return nil, auth.ErrInvalidToken
	}

	tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
	if tokenString == "" {
		return nil, auth.ErrInvalidToken
	}

	return jwtService.Validate(tokenString)
}

// setCaller stores the caller in both the gin context and the request
// context, so handlers and the logger see the same identity.
func setCaller(c *gin.Context, claims *auth.Claims) bool {
	caller, err := claims.Caller()
	if err != nil {
		return false
	}
	c.Set(CallerKey, caller)

	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	ctx, _ = logger.WithUserID(ctx, log, caller.UserID.String())
	c.Request = c.Request.WithContext(ctx)
	return true
}

// abortUnauthorized writes a 401 with a code matching the validation failure
func abortUnauthorized(c *gin.Context, err error) {
	code := dto.ErrCodeUnauthorized
	message := "Authentication required"

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = "TOKEN_EXPIRED"
		message = "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		code = "TOKEN_NOT_VALID"
		message = "Token is not yet valid"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidClaims):
		code = "INVALID_TOKEN"
		message = "Invalid token"
	}

	if log := logger.FromContext(c.Request.Context()); log != nil {
		log.Debug("request authentication failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}
