package models

import (
	"time"
)

// Donation defines the donation model based on the 'donations' table.
// Payment gateway identifiers are opaque pass-through values.
type Donation struct {
	ID        int64          `json:"id" db:"id" example:"1"`
	UserID    int64          `json:"userId" db:"user_id" example:"7"`
	CollegeID int64          `json:"collegeId" db:"college_id" example:"1"`
	Amount    float64        `json:"amount" db:"amount" example:"500.00"`
	Currency  string         `json:"currency" db:"currency" example:"INR"`
	PaymentID *string        `json:"paymentId,omitempty" db:"payment_id"`
	OrderID   *string        `json:"orderId,omitempty" db:"order_id"`
	Signature *string        `json:"-" db:"signature"`
	Status    DonationStatus `json:"status" db:"status" example:"CREATED"`
	DonatedAt time.Time      `json:"donatedAt" db:"donated_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
}
