package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/sujeet/alumnisphere/internal/app/controllers"
	"github.com/sujeet/alumnisphere/internal/middleware"
	"github.com/sujeet/alumnisphere/internal/pkg/auth"
)

func registeredRoutes(t *testing.T) gin.RoutesInfo {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zerolog.Nop()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret"})
	authMW := middleware.NewAuthMiddleware(jwtService)

	c := &Controllers{
		Auth:     controllers.NewAuthController(nil, logger),
		College:  controllers.NewCollegeController(nil, nil, logger),
		User:     controllers.NewUserController(nil, nil, logger),
		Post:     controllers.NewPostController(nil, nil, logger),
		Event:    controllers.NewEventController(nil, logger),
		Donation: controllers.NewDonationController(nil, logger),
		Admin:    controllers.NewAdminController(nil, nil, logger),
	}

	router := gin.New()
	Register(router, c, authMW)
	return router.Routes()
}

func TestRegisterExposesAccountLifecycleRoutes(t *testing.T) {
	routes := registeredRoutes(t)

	want := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodPost, "/api/v1/auth/refresh"},
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodPost, "/api/v1/admin/users"},
		{http.MethodDelete, "/api/v1/admin/users/:id"},
	}

	for _, w := range want {
		found := false
		for _, r := range routes {
			if r.Method == w.method && r.Path == w.path {
				found = true
				break
			}
		}
		assert.True(t, found, "missing route %s %s", w.method, w.path)
	}
}
