// Package domain holds DTOs for samples http and service contracts
package domain

// RecentInput is the input for fetching recorded samples
type RecentInput struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// Sample is one recorded detection
type Sample struct {
	ID        string `json:"id"`
	Handle    int64  `json:"handle"`
	Lang      string `json:"lang"`
	Script    string `json:"script,omitempty"`
	TextLen   int    `json:"text_len"`
	Snippet   string `json:"snippet"`
	CreatedAt string `json:"created_at"`
}
