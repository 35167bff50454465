package dto

import (
	"time"

	"github.com/sujeet/alumnisphere/internal/app/models"
)

// CreateDonationRequest starts a donation towards a college
type CreateDonationRequest struct {
	CollegeID int64   `json:"collegeId" binding:"required,gt=0" example:"1"`
	Amount    float64 `json:"amount" binding:"required,gt=0" example:"500.00"`
	Currency  string  `json:"currency" binding:"required,len=3" example:"INR"`
}

// ConfirmDonationRequest records the payment gateway outcome. The gateway
// identifiers are opaque pass-through values.
type ConfirmDonationRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
	OrderID   string `json:"orderId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=SUCCESSFUL FAILED"`
}

// DonationResponse represents a donation in API responses
type DonationResponse struct {
	ID        int64     `json:"id" example:"1"`
	CollegeID int64     `json:"collegeId" example:"1"`
	UserID    int64     `json:"userId" example:"7"`
	Amount    float64   `json:"amount" example:"500.00"`
	Currency  string    `json:"currency" example:"INR"`
	Status    string    `json:"status" example:"CREATED"`
	PaymentID *string   `json:"paymentId,omitempty"`
	OrderID   *string   `json:"orderId,omitempty"`
	DonatedAt time.Time `json:"donatedAt"`
}

// NewDonationResponse maps a donation entity to its API projection
func NewDonationResponse(donation *models.Donation) DonationResponse {
	return DonationResponse{
		ID:        donation.ID,
		CollegeID: donation.CollegeID,
		UserID:    donation.UserID,
		Amount:    donation.Amount,
		Currency:  donation.Currency,
		Status:    string(donation.Status),
		PaymentID: donation.PaymentID,
		OrderID:   donation.OrderID,
		DonatedAt: donation.DonatedAt,
	}
}
