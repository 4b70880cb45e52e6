package net

import (
	"net/http"

	perr "langid/internal/platform/errors"
)

// Wire is the canonical HTTP reply body
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Error builds a wire reply from an error, mapping its platform code
func Error(reqID string, err error) Wire {
	status := HTTPStatus(err)
	w := Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
	}
	if err != nil {
		w.Error = err.Error()
		w.Code = perr.CodeOf(err)
	}
	return w
}
