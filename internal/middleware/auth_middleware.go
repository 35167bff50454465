package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/sujeet/alumnisphere/internal/app/auth"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/pkg/auth"
)

const principalContextKey = "principal"

// AuthMiddleware validates JWT tokens and places the resulting principal in
// the request context.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth rejects requests without a valid bearer token
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := m.resolvePrincipal(c)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		if principal == nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(principalContextKey, principal)
		c.Next()
	}
}

// OptionalJWTAuth resolves a principal when a token is present but lets
// anonymous requests through. Requests carrying an invalid token are still
// rejected rather than silently downgraded to anonymous.
func (m *AuthMiddleware) OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := m.resolvePrincipal(c)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		if principal != nil {
			c.Set(principalContextKey, principal)
		}
		c.Next()
	}
}

// RolesRequired rejects authenticated callers whose role is not in the
// allowed set. It must run after JWTAuth.
func (m *AuthMiddleware) RolesRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// resolvePrincipal extracts and validates the bearer token, returning nil
// when no Authorization header is present.
func (m *AuthMiddleware) resolvePrincipal(c *gin.Context) (*appauth.Principal, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return nil, err
	}

	claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		return nil, err
	}

	return appauth.PrincipalFromClaims(claims)
}

func abortUnauthorized(c *gin.Context, err error) {
	errorCode := dto.ErrorCodeInvalidToken
	message := "Authentication failed"
	if errors.Is(err, auth.ErrExpiredToken) {
		errorCode = dto.ErrorCodeExpiredToken
		message = "Token has expired"
	}

	errorDetail := dto.NewErrorDetail(errorCode, message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// GetPrincipal returns the authenticated principal from the request context,
// or nil for anonymous requests.
func GetPrincipal(c *gin.Context) *appauth.Principal {
	value, exists := c.Get(principalContextKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*appauth.Principal)
	if !ok {
		return nil
	}
	return principal
}
