package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
	pkgauth "github.com/sujeet/alumnisphere/internal/pkg/auth"
)

func int64Ptr(v int64) *int64 { return &v }

func student(id, collegeID int64) *Principal {
	return &Principal{UserID: id, Role: models.RoleStudent, CollegeID: int64Ptr(collegeID)}
}

func admin(id, collegeID int64) *Principal {
	return &Principal{UserID: id, Role: models.RoleAdmin, CollegeID: int64Ptr(collegeID)}
}

func superAdmin(id int64) *Principal {
	return &Principal{UserID: id, Role: models.RoleSuperAdmin}
}

func TestCanModifyPost(t *testing.T) {
	svc := NewAuthorizationService()
	post := &models.Post{ID: 10, CollegeID: 1, AuthorID: 7}

	tests := []struct {
		name      string
		principal *Principal
		wantErr   error
	}{
		{"author may modify", student(7, 1), nil},
		{"other student denied", student(8, 1), apperrors.ErrPermissionDenied},
		{"same-college admin allowed", admin(99, 1), nil},
		{"cross-college admin denied", admin(99, 2), apperrors.ErrPermissionDenied},
		{"super admin allowed", superAdmin(100), nil},
		{"anonymous unauthenticated", nil, apperrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CanModifyPost(tt.principal, post)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestCanDeleteComment(t *testing.T) {
	svc := NewAuthorizationService()
	post := &models.Post{ID: 10, CollegeID: 1, AuthorID: 5}
	comment := &models.Comment{ID: 3, PostID: 10, AuthorID: 7}

	tests := []struct {
		name      string
		principal *Principal
		wantErr   error
	}{
		{"comment author allowed", student(7, 1), nil},
		{"post author allowed", student(5, 1), nil},
		{"unrelated student denied", student(8, 1), apperrors.ErrPermissionDenied},
		{"same-college admin allowed", admin(99, 1), nil},
		{"cross-college admin denied", admin(99, 2), apperrors.ErrPermissionDenied},
		{"super admin allowed", superAdmin(100), nil},
		{"anonymous unauthenticated", nil, apperrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CanDeleteComment(tt.principal, comment, post)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestCanModifyEvent(t *testing.T) {
	svc := NewAuthorizationService()
	event := &models.Event{ID: 4, CollegeID: 2, CreatedBy: 11}

	assert.NoError(t, svc.CanModifyEvent(student(11, 2), event))
	assert.NoError(t, svc.CanModifyEvent(admin(50, 2), event))
	assert.NoError(t, svc.CanModifyEvent(superAdmin(1), event))

	err := svc.CanModifyEvent(student(12, 2), event)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	err = svc.CanModifyEvent(admin(50, 3), event)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestCanManageUser(t *testing.T) {
	svc := NewAuthorizationService()
	target := &models.User{ID: 20, CollegeID: int64Ptr(1), RoleType: models.RoleAlumnus}

	t.Run("same-college admin allowed", func(t *testing.T) {
		assert.NoError(t, svc.CanManageUser(admin(99, 1), target))
	})

	t.Run("cross-college admin denied", func(t *testing.T) {
		err := svc.CanManageUser(admin(99, 2), target)
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
	})

	t.Run("super admin crosses colleges", func(t *testing.T) {
		assert.NoError(t, svc.CanManageUser(superAdmin(1), target))
	})

	t.Run("non-admin denied", func(t *testing.T) {
		err := svc.CanManageUser(student(7, 1), target)
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
	})

	t.Run("admin cannot act on self", func(t *testing.T) {
		self := &models.User{ID: 99, CollegeID: int64Ptr(1), RoleType: models.RoleAdmin}
		err := svc.CanManageUser(admin(99, 1), self)
		assert.True(t, errors.Is(err, apperrors.ErrAdminSelfAction))
	})

	t.Run("anonymous unauthenticated", func(t *testing.T) {
		err := svc.CanManageUser(nil, target)
		assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	})
}

func TestCanCreateUser(t *testing.T) {
	svc := NewAuthorizationService()

	tests := []struct {
		name      string
		principal *Principal
		role      models.RoleType
		collegeID int64
		wantErr   error
	}{
		{"admin creates student in own college", admin(99, 1), models.RoleStudent, 1, nil},
		{"admin creates alumnus in own college", admin(99, 1), models.RoleAlumnus, 1, nil},
		{"admin creates admin in own college", admin(99, 1), models.RoleAdmin, 1, nil},
		{"admin denied cross-college", admin(99, 1), models.RoleStudent, 2, apperrors.ErrPermissionDenied},
		{"superadmin role never creatable", admin(99, 1), models.RoleSuperAdmin, 1, apperrors.ErrPermissionDenied},
		{"superadmin role never creatable even by superadmin", superAdmin(1), models.RoleSuperAdmin, 1, apperrors.ErrPermissionDenied},
		{"super admin creates anywhere", superAdmin(1), models.RoleStudent, 2, nil},
		{"non-admin denied", student(7, 1), models.RoleStudent, 1, apperrors.ErrPermissionDenied},
		{"anonymous unauthenticated", nil, models.RoleStudent, 1, apperrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CanCreateUser(tt.principal, tt.role, tt.collegeID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestValidateFollow(t *testing.T) {
	svc := NewAuthorizationService()

	assert.NoError(t, svc.ValidateFollow(student(7, 1), 8))

	err := svc.ValidateFollow(student(7, 1), 7)
	assert.True(t, errors.Is(err, apperrors.ErrSelfFollow))

	err = svc.ValidateFollow(nil, 8)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestPrincipalFromClaims(t *testing.T) {
	claims := &pkgauth.Claims{UserID: 42, Email: "jane@tech.edu", RoleType: "ALUMNUS", CollegeID: int64Ptr(3)}

	p, err := PrincipalFromClaims(claims)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), p.UserID)
	assert.Equal(t, models.RoleAlumnus, p.Role)
	assert.True(t, p.SameCollege(3))
	assert.False(t, p.IsAdmin())

	claims.RoleType = "OVERLORD"
	_, err = PrincipalFromClaims(claims)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
}
