package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/sujeet/alumnisphere/internal/app/auth"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/pkg/auth"
)

func testJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func tokenFor(t *testing.T, svc *auth.JWTService, user *models.User) string {
	t.Helper()
	accessToken, _, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	return accessToken
}

func authRouter(mw gin.HandlerFunc, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.GET("/protected", mw, handler)
	return router
}

func echoPrincipal(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": principal.UserID})
}

func TestJWTAuth(t *testing.T) {
	svc := testJWTService(t)
	mw := NewAuthMiddleware(svc)
	collegeID := int64(1)
	token := tokenFor(t, svc, &models.User{
		ID:        7,
		Email:     "jane@tech.edu",
		RoleType:  models.RoleAlumnus,
		CollegeID: &collegeID,
	})

	router := authRouter(mw.JWTAuth(), echoPrincipal)

	t.Run("valid token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"userId":7`)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("unknown role in token rejected", func(t *testing.T) {
		badToken := tokenFor(t, svc, &models.User{
			ID:        8,
			Email:     "odd@tech.edu",
			RoleType:  models.RoleType("WIZARD"),
			CollegeID: &collegeID,
		})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+badToken)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestOptionalJWTAuth(t *testing.T) {
	svc := testJWTService(t)
	mw := NewAuthMiddleware(svc)
	router := authRouter(mw.OptionalJWTAuth(), echoPrincipal)

	t.Run("anonymous allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "anonymous")
	})

	t.Run("invalid token still rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRolesRequired(t *testing.T) {
	svc := testJWTService(t)
	mw := NewAuthMiddleware(svc)
	collegeID := int64(1)

	router := gin.New()
	router.GET("/admin", mw.JWTAuth(), mw.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), echoPrincipal)

	t.Run("admin allowed", func(t *testing.T) {
		token := tokenFor(t, svc, &models.User{
			ID: 1, Email: "admin@tech.edu", RoleType: models.RoleAdmin, CollegeID: &collegeID,
		})
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("student forbidden", func(t *testing.T) {
		token := tokenFor(t, svc, &models.User{
			ID: 2, Email: "student@tech.edu", RoleType: models.RoleStudent, CollegeID: &collegeID,
		})
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestGetPrincipalTypeSafety(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	assert.Nil(t, GetPrincipal(c))

	c.Set(principalContextKey, "not a principal")
	assert.Nil(t, GetPrincipal(c))

	principal := &appauth.Principal{UserID: 5, Role: models.RoleStudent}
	c.Set(principalContextKey, principal)
	assert.Equal(t, principal, GetPrincipal(c))
}
