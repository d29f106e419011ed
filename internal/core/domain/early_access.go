package domain

import "time"

// EarlyAccessSignup is a pre-launch interest registration, keyed by mobile number.
type EarlyAccessSignup struct {
	SignupID     string    `json:"signupID"`
	FullName     string    `json:"fullName"`
	MobileNumber string    `json:"mobileNumber"`
	BusinessName string    `json:"businessName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
