package dto

import (
	"github.com/sujeet/alumnisphere/internal/app/models"
)

// RegisterCollegeRequest registers a college together with its initial admin
// account. Both are created in one transaction.
type RegisterCollegeRequest struct {
	Name              string  `json:"name" binding:"required,min=2,max=200" example:"Tech University"`
	Address           *string `json:"address,omitempty" binding:"omitempty,max=500"`
	ContactPersonName *string `json:"contactPersonName,omitempty" binding:"omitempty,max=100"`
	ContactEmail      *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone      *string `json:"contactPhone,omitempty" binding:"omitempty,max=30"`
	AdminName         string  `json:"adminName" binding:"required,min=2,max=100" example:"Admin Person"`
	AdminEmail        string  `json:"adminEmail" binding:"required,email" example:"admin@tech.edu"`
	AdminPassword     string  `json:"adminPassword" binding:"required,min=8"`
}

// CollegeResponse represents a college in API responses
type CollegeResponse struct {
	ID                 int64   `json:"id" example:"1"`
	Name               string  `json:"name" example:"Tech University"`
	Address            *string `json:"address,omitempty"`
	ContactPersonName  *string `json:"contactPersonName,omitempty"`
	ContactEmail       *string `json:"contactEmail,omitempty"`
	ContactPhone       *string `json:"contactPhone,omitempty"`
	RegistrationStatus string  `json:"registrationStatus" example:"APPROVED"`
}

// RegisterCollegeResponse is returned after a successful registration
type RegisterCollegeResponse struct {
	College *CollegeResponse `json:"college"`
	Admin   *UserResponse    `json:"admin"`
}

// NewCollegeResponse maps a college entity to its API projection
func NewCollegeResponse(college *models.College) *CollegeResponse {
	if college == nil {
		return nil
	}
	return &CollegeResponse{
		ID:                 college.ID,
		Name:               college.Name,
		Address:            college.Address,
		ContactPersonName:  college.ContactPersonName,
		ContactEmail:       college.ContactEmail,
		ContactPhone:       college.ContactPhone,
		RegistrationStatus: string(college.RegistrationStatus),
	}
}
