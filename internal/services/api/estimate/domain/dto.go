// Package domain holds DTOs for offline estimation
package domain

import (
	"context"
	"time"

	"tgage/internal/core/estimate"
)

// MaxBatch bounds a batch request
const MaxBatch = 100

// Query names the signals to estimate from; at least one is required
type Query struct {
	UserID   string `json:"user_id,omitempty" query:"user_id" validate:"omitempty,numeric_id,max=20" example:"1500000"`
	Username string `json:"username,omitempty" query:"username" validate:"omitempty,handle" example:"durov"`
}

// View is one estimate rendered for clients
type View struct {
	UserID        string                      `json:"user_id,omitempty" example:"1500000"`
	Username      string                      `json:"username,omitempty" example:"durov"`
	EstimatedAt   time.Time                   `json:"estimated_at" example:"2014-09-01T00:00:00Z"`
	EstimatedDate string                      `json:"estimated_creation_date" example:"September 1, 2014"`
	DateRange     estimate.DateRange          `json:"date_range"`
	AccountAge    string                      `json:"account_age" example:"10 years and 11 months"`
	Confidence    estimate.Label              `json:"confidence" example:"high"`
	Method        string                      `json:"method" example:"User ID Analysis"`
	Accuracy      string                      `json:"accuracy" example:"±3 months"`
	AllEstimates  []estimate.WeightedEstimate `json:"all_estimates"`
}

// BatchInput estimates several queries at once, answers keep the input order
type BatchInput struct {
	Items []Query `json:"items" validate:"required,min=1,max=100,dive"`
}

// BatchOutput holds one view per input item
type BatchOutput struct {
	Items []View `json:"items"`
}

// Anchor is one calibration point
type Anchor struct {
	ID   uint64 `json:"id" example:"1000000"`
	Date string `json:"date" example:"2014-01-01"`
	Note string `json:"note,omitempty"`
}

// Rule is one username shape, in evaluation order
type Rule struct {
	Name    string `json:"name" example:"default_handle"`
	Pattern string `json:"pattern" example:"^user\\d{7,9}$"`
	Era     string `json:"era" example:"2013-08-01"`
}

// Tables describes the calibration data in use
type Tables struct {
	Cutoff  string   `json:"cutoff" example:"2025-07-18"`
	Ceiling uint64   `json:"ceiling" example:"9007199254740991"`
	Anchors []Anchor `json:"anchors"`
	Rules   []Rule   `json:"rules"`
}

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Estimate(ctx context.Context, q Query) (View, error)
	Batch(ctx context.Context, in BatchInput) (BatchOutput, error)
	Tables(ctx context.Context) Tables
}
