package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
)

func TestParseRoleType(t *testing.T) {
	tests := []struct {
		input   string
		want    RoleType
		wantErr bool
	}{
		{"STUDENT", RoleStudent, false},
		{"ALUMNUS", RoleAlumnus, false},
		{"ADMIN", RoleAdmin, false},
		{"SUPERADMIN", RoleSuperAdmin, false},
		{"admin", "", true},
		{"", "", true},
		{"MODERATOR", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRoleType(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperAdmin.IsAdmin())
	assert.False(t, RoleStudent.IsAdmin())
	assert.False(t, RoleAlumnus.IsAdmin())
}

func TestParseUserStatus(t *testing.T) {
	got, err := ParseUserStatus("PENDING_VERIFICATION")
	assert.NoError(t, err)
	assert.Equal(t, UserStatusPendingVerification, got)

	_, err = ParseUserStatus("banned")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
}

func TestParseCollegeStatus(t *testing.T) {
	got, err := ParseCollegeStatus("APPROVED")
	assert.NoError(t, err)
	assert.Equal(t, CollegeStatusApproved, got)

	_, err = ParseCollegeStatus("approved")
	assert.Error(t, err)
}

func TestParseDonationStatus(t *testing.T) {
	got, err := ParseDonationStatus("SUCCESSFUL")
	assert.NoError(t, err)
	assert.Equal(t, DonationStatusSuccessful, got)

	_, err = ParseDonationStatus("PAID")
	assert.Error(t, err)
}
