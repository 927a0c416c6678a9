// Package domain holds DTOs and ports for username lookups
package domain

import "tgage/internal/core/estimate"

// Region and likes are not exposed by Telegram; the fields stay for clients
const (
	UnknownRegion = "Unknown"

	NoteResolved = "This is an estimated creation date based on available data. Actual creation date may vary. This tool is not affiliated with Telegram."
	NoteFallback = "This is an estimated creation date based on username pattern due to limited data. Actual creation date may vary. This tool is not affiliated with Telegram."

	FailureSummary = "Failed to fetch user info from Telegram API"
)

// EstimationDetails carries the raw signals behind the estimate
type EstimationDetails struct {
	AllEstimates []estimate.WeightedEstimate `json:"all_estimates"`
	Note         string                      `json:"note" example:"This is an estimated creation date based on available data."`
}

// Profile is the flat lookup response
type Profile struct {
	Username          string             `json:"username" example:"durov"`
	Nickname          string             `json:"nickname" example:"Pavel Durov"`
	Avatar            string             `json:"avatar"`
	Followers         int                `json:"followers" example:"0"`
	TotalLikes        int                `json:"total_likes" example:"0"`
	Verified          bool               `json:"verified" example:"false"`
	Description       string             `json:"description"`
	Region            string             `json:"region" example:"Unknown"`
	UserID            string             `json:"user_id" example:"1006503122"`
	FirstName         string             `json:"first_name" example:"Pavel"`
	LastName          string             `json:"last_name" example:"Durov"`
	EstimatedDate     string             `json:"estimated_creation_date" example:"January 9, 2014"`
	EstimatedRange    estimate.DateRange `json:"estimated_creation_date_range"`
	AccountAge        string             `json:"account_age" example:"11 years and 6 months"`
	Confidence        estimate.Label     `json:"estimation_confidence" example:"high"`
	Method            string             `json:"estimation_method" example:"User ID Analysis"`
	Accuracy          string             `json:"accuracy_range" example:"±3 months"`
	EstimationDetails EstimationDetails  `json:"estimation_details"`

	// Resolved is false when the profile came from the username-only fallback
	Resolved bool `json:"-"`
}
