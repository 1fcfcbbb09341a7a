package booking

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

type Booking struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	CourtID         string    `json:"courtId"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Status          string    `json:"status"` // pending, confirmed, cancelled, completed
	TotalPrice      int       `json:"totalPrice"`
	DiscountCode    string    `json:"discountCode,omitempty"`
	DiscountApplied int       `json:"discountApplied"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentStatus   string    `json:"paymentStatus"` // pending, paid, refunded
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
