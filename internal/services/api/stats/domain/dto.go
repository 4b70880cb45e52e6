// Package domain holds DTOs for stats http and service contracts
package domain

// Dates are ISO8601 days without timezone

// ByLangInput buckets recorded detections by language code
type ByLangInput struct {
	From string `json:"from" validate:"required,datetime=2006-01-02" example:"2025-08-01"`
	To   string `json:"to" validate:"required,datetime=2006-01-02" example:"2025-08-31"`
	Lang string `json:"lang,omitempty" validate:"omitempty,oneof=en es fr de it pt mul und" example:"es"`
}

// ByLangRow is one language bucket
type ByLangRow struct {
	Lang    string `json:"lang" example:"es"`
	Samples int64  `json:"samples" example:"42"`
}

// DailyInput buckets recorded detections by day and language code
type DailyInput struct {
	From string `json:"from" validate:"required,datetime=2006-01-02" example:"2025-08-01"`
	To   string `json:"to" validate:"required,datetime=2006-01-02" example:"2025-08-31"`
}

// DailyRow is one day and language bucket
type DailyRow struct {
	Day     string `json:"day" example:"2025-08-01"`
	Lang    string `json:"lang" example:"es"`
	Samples int64  `json:"samples" example:"7"`
}
