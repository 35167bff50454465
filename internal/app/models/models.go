package models

import "github.com/sujeet/alumnisphere/internal/pkg/apperrors"

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleAlumnus    RoleType = "ALUMNUS"
	RoleAdmin      RoleType = "ADMIN"
	RoleSuperAdmin RoleType = "SUPERADMIN"
)

// ParseRoleType converts a string to a RoleType, rejecting unknown values.
// This is the single point where role strings enter the domain.
func ParseRoleType(s string) (RoleType, error) {
	switch RoleType(s) {
	case RoleStudent, RoleAlumnus, RoleAdmin, RoleSuperAdmin:
		return RoleType(s), nil
	default:
		return "", apperrors.NewInvalidArgumentError("unknown role: " + s)
	}
}

// IsAdmin reports whether the role carries admin authority
func (r RoleType) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// UserStatus defines the user account status
type UserStatus string

const (
	UserStatusActive              UserStatus = "ACTIVE"
	UserStatusInactive            UserStatus = "INACTIVE"
	UserStatusPendingVerification UserStatus = "PENDING_VERIFICATION"
)

// ParseUserStatus converts a string to a UserStatus, rejecting unknown values
func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(s) {
	case UserStatusActive, UserStatusInactive, UserStatusPendingVerification:
		return UserStatus(s), nil
	default:
		return "", apperrors.NewInvalidArgumentError("unknown user status: " + s)
	}
}

// CollegeStatus defines the registration status of a college
type CollegeStatus string

const (
	CollegeStatusPending  CollegeStatus = "PENDING"
	CollegeStatusApproved CollegeStatus = "APPROVED"
	CollegeStatusRejected CollegeStatus = "REJECTED"
)

// ParseCollegeStatus converts a string to a CollegeStatus, rejecting unknown values
func ParseCollegeStatus(s string) (CollegeStatus, error) {
	switch CollegeStatus(s) {
	case CollegeStatusPending, CollegeStatusApproved, CollegeStatusRejected:
		return CollegeStatus(s), nil
	default:
		return "", apperrors.NewInvalidArgumentError("unknown college status: " + s)
	}
}

// DonationStatus defines the payment lifecycle state of a donation
type DonationStatus string

const (
	DonationStatusCreated    DonationStatus = "CREATED"
	DonationStatusSuccessful DonationStatus = "SUCCESSFUL"
	DonationStatusFailed     DonationStatus = "FAILED"
)

// ParseDonationStatus converts a string to a DonationStatus, rejecting unknown values
func ParseDonationStatus(s string) (DonationStatus, error) {
	switch DonationStatus(s) {
	case DonationStatusCreated, DonationStatusSuccessful, DonationStatusFailed:
		return DonationStatus(s), nil
	default:
		return "", apperrors.NewInvalidArgumentError("unknown donation status: " + s)
	}
}
