package dto

// EarlyAccessRequest registers pre-launch interest. MobileNumber must be a
// ten-digit Indian mobile number.
type EarlyAccessRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
	BusinessName string `json:"businessName"`
}
