package dto

import (
	"time"

	"github.com/sujeet/alumnisphere/internal/app/models"
)

// UserResponse represents a user in API responses
type UserResponse struct {
	ID                int64   `json:"id" example:"1"`
	CollegeID         *int64  `json:"collegeId,omitempty" example:"1"`
	Name              string  `json:"name" example:"Jane Doe"`
	Email             string  `json:"email" example:"jane@tech.edu"`
	Role              string  `json:"role" example:"ALUMNUS"`
	Status            string  `json:"status" example:"ACTIVE"`
	ProfileHeadline   *string `json:"profileHeadline,omitempty"`
	ProfileLocation   *string `json:"profileLocation,omitempty"`
	ProfileAbout      *string `json:"profileAbout,omitempty"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

// UserSummary is the compact user projection used inside lists and nested objects
type UserSummary struct {
	ID                int64   `json:"id" example:"1"`
	Name              string  `json:"name" example:"Jane Doe"`
	Email             string  `json:"email" example:"jane@tech.edu"`
	Role              string  `json:"role" example:"ALUMNUS"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

// UserProfileResponse is the full profile view with social-graph derived fields
type UserProfileResponse struct {
	UserResponse
	FollowersCount        int64     `json:"followersCount" example:"12"`
	FollowingCount        int64     `json:"followingCount" example:"8"`
	FollowedByCurrentUser bool      `json:"followedByCurrentUser" example:"false"`
	CreatedAt             time.Time `json:"createdAt"`
}

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	ProfileHeadline *string `json:"profileHeadline,omitempty" binding:"omitempty,max=200"`
	ProfileLocation *string `json:"profileLocation,omitempty" binding:"omitempty,max=100"`
	ProfileAbout    *string `json:"profileAbout,omitempty" binding:"omitempty,max=2000"`
}

// UpdateUserStatusRequest represents an admin status change request
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE PENDING_VERIFICATION"`
}

// AdminCreateUserRequest onboards a member into a college. CollegeID is only
// honored for superadmins; regular admins always create into their own
// college.
type AdminCreateUserRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email     string `json:"email" binding:"required,email" example:"jane@tech.edu"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=STUDENT ALUMNUS ADMIN" example:"ALUMNUS"`
	CollegeID *int64 `json:"collegeId,omitempty" binding:"omitempty,gt=0"`
}

// NewUserResponse maps a user entity to its API projection
func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:                user.ID,
		CollegeID:         user.CollegeID,
		Name:              user.Name,
		Email:             user.Email,
		Role:              string(user.RoleType),
		Status:            string(user.Status),
		ProfileHeadline:   user.ProfileHeadline,
		ProfileLocation:   user.ProfileLocation,
		ProfileAbout:      user.ProfileAbout,
		ProfilePictureURL: user.ProfilePictureURL,
	}
}

// NewUserSummary maps a user entity to its compact projection
func NewUserSummary(user *models.User) UserSummary {
	return UserSummary{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		Role:              string(user.RoleType),
		ProfilePictureURL: user.ProfilePictureURL,
	}
}

// NewUserProfileResponse builds the actor-relative profile view. followed is
// always false for anonymous callers.
func NewUserProfileResponse(user *models.User, followers, following int64, followed bool) *UserProfileResponse {
	if user == nil {
		return nil
	}
	return &UserProfileResponse{
		UserResponse:          *NewUserResponse(user),
		FollowersCount:        followers,
		FollowingCount:        following,
		FollowedByCurrentUser: followed,
		CreatedAt:             user.CreatedAt,
	}
}
