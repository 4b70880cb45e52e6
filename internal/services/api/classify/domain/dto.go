// Package domain holds DTOs for classify http and service contracts
package domain

// DetectInput is the input for a single detection
// Text is a pointer so an absent field maps to und instead of a bind error
type DetectInput struct {
	Handle int64   `json:"handle,omitempty" example:"42"`
	Text   *string `json:"text,omitempty" example:"dijo que el coche es nuevo"`
}

// DetectOutput is a single detection result
type DetectOutput struct {
	Lang   string `json:"lang" example:"es"`
	Script string `json:"script,omitempty" example:"Latin"`
}

// BatchInput carries an ordered list of detections
type BatchInput struct {
	Items []DetectInput `json:"items" validate:"required,min=1,max=256"`
}

// BatchOutput mirrors BatchInput item order
type BatchOutput struct {
	Results []DetectOutput `json:"results"`
}

// InitInput carries the advisory warm-up hint
type InitInput struct {
	Hint *string `json:"hint,omitempty" example:"latin-keywords"`
}

// InitOutput reports the version returned by warm-up
type InitOutput struct {
	Version string `json:"version" example:"1.2.0"`
}

// ReleaseInput names the handle to release
type ReleaseInput struct {
	Handle int64 `json:"handle" example:"42"`
}

// ReleaseOutput acknowledges a release
type ReleaseOutput struct {
	Released bool `json:"released" example:"true"`
}

// VersionOutput reports the classifier contract version
type VersionOutput struct {
	Version string `json:"version" example:"1.2.0"`
}
