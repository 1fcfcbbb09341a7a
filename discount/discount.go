package discount

import "errors"

const (
	TypePercentage = "percentage"
	TypeFixed      = "fixed_amount"
)

type DiscountCode struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Description   string `json:"description"`
	DiscountType  string `json:"discountType"` // percentage, fixed_amount
	DiscountValue int    `json:"discountValue"`
	// MinAmount 0 means no minimum, MaxUses 0 means unlimited.
	MinAmount int `json:"minAmount"`
	MaxUses   int `json:"maxUses"`
	UsedCount int `json:"usedCount"`
	// Dates are YYYY-MM-DD; an empty ValidUntil never expires.
	ValidFrom  string `json:"validFrom"`
	ValidUntil string `json:"validUntil,omitempty"`
	// Lowercase English day names ("monday"); empty means every day.
	DayRestrictions []string `json:"dayRestrictions,omitempty"`
	// HH:MM bounds, inclusive; empty strings mean no time window.
	TimeStart string `json:"timeStart,omitempty"`
	TimeEnd   string `json:"timeEnd,omitempty"`
	Active    bool   `json:"active"`
}

var ErrCodeNotFound = errors.New("discount code not found")

var ErrCodeLimitReached = errors.New("discount code usage limit reached")

// RejectedError carries the user-facing reason a code failed validation.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}
